package roster

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"reflect"
	"slices"
	"strings"
)

// Registry is an ordered, in-memory record container indexed by its key
// schema. Insertion order is preserved and is the canonical iteration
// order. Every write is checked against the uniqueness invariant of each
// non-identifier key before the store is touched.
type Registry[T any] struct {
	schema  Schema[T]
	records []T
	plurals map[string]int // Pluralized attribute name -> position in schema.Attrs.
	log     *slog.Logger
}

// options collects construction-time settings applied by Option values.
type options[T any] struct {
	logger  *slog.Logger
	records []T
}

// Option configures a Registry at construction.
type Option[T any] func(*options[T])

// WithLogger sets the structured event sink the registry emits debug
// events to on construction and mutation. Defaults to a discard logger.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = logger
	}
}

// WithRecords supplies the initial record set. Initial records pass
// through the same uniqueness check as Append, so a duplicate among
// them fails construction with a DuplicateKeyError.
func WithRecords[T any](records ...T) Option[T] {
	return func(o *options[T]) {
		o.records = append(o.records, records...)
	}
}

// New constructs a Registry from the given schema. Fails with a
// SchemaError for an invalid schema and a DuplicateKeyError for a
// conflict among initial records.
func New[T any](schema Schema[T], opts ...Option[T]) (*Registry[T], error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}

	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	r := &Registry[T]{
		schema:  schema,
		plurals: make(map[string]int, len(schema.Attrs)),
		log:     o.logger,
	}
	// The plural mapping is static per element type; a later attribute
	// wins when two singulars pluralize to the same name.
	for i, a := range schema.Attrs {
		r.plurals[Pluralize(a.Name)] = i
	}

	if err := r.Append(o.records...); err != nil {
		return nil, err
	}
	r.log.Debug("registry initialized", "type", typeName[T](), "records", len(r.records))
	return r, nil
}

// Append adds records in argument order. Each record is checked against
// every non-identifier key before it is written; on the first
// DuplicateKeyError the append stops and records already added remain
// in place.
func (r *Registry[T]) Append(records ...T) error {
	for _, rec := range records {
		if err := r.checkUnique(rec, -1); err != nil {
			return err
		}
		r.records = append(r.records, rec)
		r.log.Debug("appended record", "total", len(r.records))
	}
	return nil
}

// Get returns the single record addressed by key.
func (r *Registry[T]) Get(key Key) (T, error) {
	var zero T
	idx, err := r.resolveIndex(key)
	if err != nil {
		return zero, err
	}
	return r.records[idx], nil
}

// Fetch resolves each key independently and returns the matching
// records in resolved order, which need not be insertion order.
func (r *Registry[T]) Fetch(keys ...Key) ([]T, error) {
	indices, err := r.resolveIndices(keys)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = r.records[idx]
	}
	return out, nil
}

// Set replaces the single record addressed by key.
func (r *Registry[T]) Set(key Key, value T) error {
	return r.Replace([]Key{key}, []T{value})
}

// Replace overwrites the records addressed by keys with values,
// pairwise. Fails with a CountMismatchError when the resolved index
// count and value count differ. Each value is uniqueness-checked with
// its target index excluded before it is written; on a mid-batch
// failure, earlier overwrites remain applied.
func (r *Registry[T]) Replace(keys []Key, values []T) error {
	indices, err := r.resolveIndices(keys)
	if err != nil {
		return err
	}
	if len(indices) != len(values) {
		return &CountMismatchError{Keys: len(indices), Values: len(values)}
	}
	for i, idx := range indices {
		if err := r.checkUnique(values[i], idx); err != nil {
			return err
		}
		r.records[idx] = values[i]
		r.log.Debug("updated record", "index", idx)
	}
	return nil
}

// Delete removes the records addressed by keys. All keys are resolved
// up front, then the indices are removed in descending order so earlier
// removals never shift later targets. A duplicate resolved index is
// honored once per occurrence, each removal acting on the store as the
// previous one left it.
func (r *Registry[T]) Delete(keys ...Key) error {
	indices, err := r.resolveIndices(keys)
	if err != nil {
		return err
	}
	slices.SortFunc(indices, func(a, b int) int { return cmp.Compare(b, a) })
	for _, idx := range indices {
		if idx >= len(r.records) {
			return &IndexError{Index: idx, Len: len(r.records)}
		}
		r.records = slices.Delete(r.records, idx, idx+1)
		r.log.Debug("deleted record", "index", idx, "total", len(r.records))
	}
	return nil
}

// Clear removes all records. The key schema is untouched.
func (r *Registry[T]) Clear() {
	r.records = nil
	r.log.Debug("cleared records")
}

// Len returns the current record count.
func (r *Registry[T]) Len() int {
	return len(r.records)
}

// All returns a restartable iterator over the records in store order.
// The registry must not be mutated while iterating.
func (r *Registry[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, rec := range r.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Records returns a copy of the record sequence in store order. The
// live sequence is never exposed.
func (r *Registry[T]) Records() []T {
	return slices.Clone(r.records)
}

// String returns a one-line diagnostic summary: element type name,
// record count, and the configured key names in schema order.
func (r *Registry[T]) String() string {
	names := make([]string, len(r.schema.Keys))
	for i, cfg := range r.schema.Keys {
		names[i] = cfg.PropName
	}
	return fmt.Sprintf("Registry<%s>: %d records, keys: [%s]",
		typeName[T](), len(r.records), strings.Join(names, ", "))
}

// checkUnique verifies that candidate collides with no existing record
// under any non-identifier key. exclude is a record index to skip (the
// target of a replace), or -1. Runs before any store mutation.
func (r *Registry[T]) checkUnique(candidate T, exclude int) error {
	for _, cfg := range r.schema.Keys {
		if cfg.Kind == KindIdentifier {
			continue
		}
		val := cfg.Value(candidate)
		for i, existing := range r.records {
			if i == exclude {
				continue
			}
			if cfg.Value(existing) == val {
				r.log.Debug("duplicate key value", "key", cfg.PropName, "value", val)
				return &DuplicateKeyError{PropName: cfg.PropName, Value: val}
			}
		}
	}
	return nil
}

// typeName returns the element type's bare name for diagnostics,
// unwrapping pointers.
func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}
