package roster

import (
	"fmt"
	"regexp"
)

// KeyConfig declares one lookup key: an externally visible name, the
// record attribute it reads, the kind of lookup value it handles, and
// the extractor that reads the attribute off a record.
type KeyConfig[T any] struct {
	// PropName is the name used for this key in diagnostics and error
	// messages. Must be a valid, non-numeric bare identifier.
	PropName string

	// AttrName names the record attribute this key reads. It should
	// match the corresponding Attr declaration so keyed lookups and
	// projections agree on naming.
	AttrName string

	// Kind selects which Key values dispatch through this declaration.
	Kind Kind

	// Value extracts the keyed attribute from a record. The returned
	// value must be comparable and must match Kind: string for
	// KindString, int64 for KindInt64, uuid.UUID for KindIdentifier.
	Value func(T) any
}

// Attr declares one named attribute of the element type. The ordered
// attribute list is the element type's capability contract: it is
// enumerated once at construction and drives pluralized projections.
type Attr[T any] struct {
	// Name is the singular attribute name, e.g. "name". Must be a
	// valid, non-numeric bare identifier.
	Name string

	// Value extracts the attribute from a record.
	Value func(T) any
}

// Schema binds an element type's key declarations and attribute set.
// Immutable after the Registry is constructed.
type Schema[T any] struct {
	Keys  []KeyConfig[T]
	Attrs []Attr[T]
}

// identRE accepts bare identifiers: a leading letter or underscore
// followed by letters, digits, or underscores. Purely numeric names
// cannot match.
var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validIdentifier reports whether s is a valid bare identifier.
func validIdentifier(s string) bool {
	return identRE.MatchString(s)
}

// validate checks the schema. Pure: no side effects on failure or
// success. Returns a SchemaError naming the first offending declaration.
func (s Schema[T]) validate() error {
	seen := make(map[Kind]string, len(s.Keys))
	for _, cfg := range s.Keys {
		if !validIdentifier(cfg.PropName) {
			return &SchemaError{PropName: cfg.PropName, Reason: "prop name must be a valid non-numeric identifier"}
		}
		if !cfg.Kind.valid() {
			return &SchemaError{PropName: cfg.PropName, Reason: fmt.Sprintf("unknown key kind %d", int(cfg.Kind))}
		}
		if cfg.Value == nil {
			return &SchemaError{PropName: cfg.PropName, Reason: "missing value extractor"}
		}
		if cfg.Kind == KindIdentifier {
			continue
		}
		if prev, dup := seen[cfg.Kind]; dup {
			return &SchemaError{
				PropName: cfg.PropName,
				Reason:   fmt.Sprintf("kind %s already declared by %q", cfg.Kind, prev),
			}
		}
		seen[cfg.Kind] = cfg.PropName
	}

	for _, a := range s.Attrs {
		if !validIdentifier(a.Name) {
			return &SchemaError{PropName: a.Name, Reason: "attribute name must be a valid non-numeric identifier"}
		}
		if a.Value == nil {
			return &SchemaError{PropName: a.Name, Reason: "missing attribute extractor"}
		}
	}
	return nil
}
