package roster

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind tags a key declaration with the lookup value type it handles.
// A schema may hold at most one declaration per kind, except
// KindIdentifier, which may appear on any number of declarations.
type Kind int

const (
	// KindString declarations resolve String keys.
	KindString Kind = iota + 1

	// KindInt64 declarations resolve Int64 keys. Positional access uses
	// the distinct Index key, so integer-valued attributes never clash
	// with indices.
	KindInt64

	// KindIdentifier declarations resolve ID keys. Identifier keys hold
	// globally unique generated values, so they are exempt from both
	// the one-declaration-per-kind rule and the uniqueness invariant.
	// Callers relying on identifier lookup must guarantee uniqueness
	// themselves or be prepared for an AmbiguousKeyError.
	KindIdentifier
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindIdentifier:
		return "identifier"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// valid reports whether k is one of the declared kinds.
func (k Kind) valid() bool {
	return k >= KindString && k <= KindIdentifier
}

// Key addresses one record in a Registry. Exactly four types implement
// it: Index for positional access, and String, Int64, and ID for value
// lookups dispatched through the key schema by kind.
type Key interface {
	isKey()
}

// Index addresses a record by position in store order.
type Index int

// String looks a record up through the schema's KindString declaration.
type String string

// Int64 looks a record up through the schema's KindInt64 declaration.
type Int64 int64

// ID looks a record up through the first KindIdentifier declaration in
// schema order. Later identifier declarations are never consulted.
type ID uuid.UUID

func (Index) isKey()  {}
func (String) isKey() {}
func (Int64) isKey()  {}
func (ID) isKey()     {}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// NewID generates a fresh UUID v7 for use as an identifier attribute.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// keyKind returns the Kind a value key dispatches through, or zero for
// Index keys, which bypass the schema entirely.
func keyKind(k Key) Kind {
	switch k.(type) {
	case String:
		return KindString
	case Int64:
		return KindInt64
	case ID:
		return KindIdentifier
	default:
		return 0
	}
}

// keyValue returns the attribute value a key compares against. The
// returned type matches what extractors of the same kind must return:
// string, int64, or uuid.UUID.
func keyValue(k Key) any {
	switch v := k.(type) {
	case String:
		return string(v)
	case Int64:
		return int64(v)
	case ID:
		return uuid.UUID(v)
	default:
		return nil
	}
}
