// Package roster provides a generic, in-memory record container indexed
// by a declared multi-key schema. A Registry holds an ordered sequence
// of records of one element type and resolves lookups by position or by
// any declared key value, enforcing per-key uniqueness on every write.
// Pluralized projections expose one attribute across all records as an
// ordered column.
//
// A Registry performs no internal locking. Callers that share one
// across goroutines must serialize all access themselves; mutating a
// Registry while iterating it is undefined.
package roster
