package roster

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failure the package returns matches exactly one
// of these through errors.Is; the typed errors below carry the details.
var (
	ErrSchema            = errors.New("invalid key schema")
	ErrDuplicateKey      = errors.New("duplicate key value")
	ErrAmbiguousKey      = errors.New("ambiguous key value")
	ErrKeyNotFound       = errors.New("key not found")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrCountMismatch     = errors.New("key and value counts differ")
	ErrUnknownProjection = errors.New("unknown projection")
)

// SchemaError reports an invalid key schema. Returned only by New;
// fatal to that construction attempt.
type SchemaError struct {
	PropName string // The offending declaration's PropName (or attribute name).
	Reason   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid key schema: %q: %s", e.PropName, e.Reason)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// DuplicateKeyError reports a write that would give two records equal
// values under a non-identifier key. The offending record is not written.
type DuplicateKeyError struct {
	PropName string
	Value    any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for key %q: %v", e.PropName, e.Value)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// AmbiguousKeyError reports a value lookup that matched more than one
// record under the selected declaration. Reachable for identifier keys,
// which are exempt from the uniqueness invariant.
type AmbiguousKeyError struct {
	PropName string
	Value    any
}

func (e *AmbiguousKeyError) Error() string {
	return fmt.Sprintf("ambiguous value for key %q: %v matches multiple records", e.PropName, e.Value)
}

func (e *AmbiguousKeyError) Is(target error) bool {
	return target == ErrAmbiguousKey
}

// KeyNotFoundError reports a value lookup that matched no record.
type KeyNotFoundError struct {
	Key Key
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// IndexError reports a positional key outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// CountMismatchError reports a batched replace whose key and value
// counts differ.
type CountMismatchError struct {
	Keys   int
	Values int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%d keys but %d values", e.Keys, e.Values)
}

func (e *CountMismatchError) Is(target error) bool {
	return target == ErrCountMismatch
}

// ProjectionError reports a projection access under an unrecognized name.
type ProjectionError struct {
	Name string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("unknown projection %q", e.Name)
}

func (e *ProjectionError) Is(target error) bool {
	return target == ErrUnknownProjection
}
