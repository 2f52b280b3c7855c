package roster

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contact is the element type used across the package tests.
type contact struct {
	ID    uuid.UUID
	AltID uuid.UUID
	Name  string
	Note  string
}

// contactSchema declares two keys (unique names, exempt identifier ids)
// and the attribute set driving projections.
func contactSchema() Schema[contact] {
	return Schema[contact]{
		Keys: []KeyConfig[contact]{
			{PropName: "names", AttrName: "name", Kind: KindString, Value: func(c contact) any { return c.Name }},
			{PropName: "ids", AttrName: "id", Kind: KindIdentifier, Value: func(c contact) any { return c.ID }},
		},
		Attrs: []Attr[contact]{
			{Name: "id", Value: func(c contact) any { return c.ID }},
			{Name: "name", Value: func(c contact) any { return c.Name }},
			{Name: "note", Value: func(c contact) any { return c.Note }},
		},
	}
}

func newContact(name string) contact {
	return contact{ID: NewID(), Name: name}
}

func mustRegistry(t *testing.T, records ...contact) *Registry[contact] {
	t.Helper()
	reg, err := New(contactSchema(), WithRecords(records...))
	require.NoError(t, err)
	return reg
}

func TestAppendEnforcesUniqueness(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"))

	err := reg.Append(newContact("Alice"))

	assert.ErrorIs(t, err, ErrDuplicateKey)
	var derr *DuplicateKeyError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "names", derr.PropName)
	assert.Equal(t, "Alice", derr.Value)
	assert.Equal(t, 2, reg.Len(), "rejected record must not be stored")
}

func TestAppendBatchPartialEffect(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"))

	// Bob is accepted before the duplicate Alice stops the batch; Carol
	// is never reached.
	err := reg.Append(newContact("Bob"), newContact("Alice"), newContact("Carol"))

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 2, reg.Len())
	names, err := reg.Project("names")
	require.NoError(t, err)
	assert.Equal(t, []any{"Alice", "Bob"}, names)
}

func TestInitialRecordsAreValidated(t *testing.T) {
	_, err := New(contactSchema(), WithRecords(newContact("Alice"), newContact("Alice")))

	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestIdentifierKeysExemptFromUniqueness(t *testing.T) {
	shared := NewID()
	reg := mustRegistry(t)

	err := reg.Append(
		contact{ID: shared, Name: "Alice"},
		contact{ID: shared, Name: "Bob"},
	)
	require.NoError(t, err, "duplicate identifier values must be accepted")

	// The exemption shifts the burden to lookup time.
	_, err = reg.Get(ID(shared))
	assert.ErrorIs(t, err, ErrAmbiguousKey)
	var aerr *AmbiguousKeyError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "ids", aerr.PropName)
}

func TestGetRoundTrip(t *testing.T) {
	alice := newContact("Alice")
	reg := mustRegistry(t, alice, newContact("Bob"))

	byName, err := reg.Get(String("Alice"))
	require.NoError(t, err)
	assert.Equal(t, alice, byName)

	byID, err := reg.Get(ID(alice.ID))
	require.NoError(t, err)
	assert.Equal(t, alice, byID)

	byIndex, err := reg.Get(Index(0))
	require.NoError(t, err)
	assert.Equal(t, alice, byIndex)
}

func TestGetErrors(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"))

	tests := []struct {
		name    string
		key     Key
		wantErr error
	}{
		{name: "unknown name", key: String("Zoe"), wantErr: ErrKeyNotFound},
		{name: "unknown id", key: ID(NewID()), wantErr: ErrKeyNotFound},
		{name: "unhandled kind", key: Int64(7), wantErr: ErrKeyNotFound},
		{name: "negative index", key: Index(-1), wantErr: ErrIndexOutOfRange},
		{name: "index past end", key: Index(1), wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Get(tt.key)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchPreservesKeyOrder(t *testing.T) {
	alice := newContact("Alice")
	bob := newContact("Bob")
	carol := newContact("Carol")
	reg := mustRegistry(t, alice, bob, carol)

	got, err := reg.Fetch(String("Carol"), Index(0), ID(bob.ID))

	require.NoError(t, err)
	assert.Equal(t, []contact{carol, alice, bob}, got)
}

func TestSetExcludesTargetFromUniqueness(t *testing.T) {
	alice := newContact("Alice")
	reg := mustRegistry(t, alice, newContact("Bob"))

	// Overwriting Alice with a record reusing her name must not collide
	// with the record being replaced.
	updated := alice
	updated.Note = "updated"
	require.NoError(t, reg.Set(String("Alice"), updated))

	got, err := reg.Get(String("Alice"))
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Note)

	// Renaming Bob to Alice still collides with the real Alice.
	err = reg.Set(String("Bob"), newContact("Alice"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestReplaceCountMismatch(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"))

	err := reg.Replace([]Key{String("Alice"), String("Bob")}, []contact{newContact("Carol")})

	assert.ErrorIs(t, err, ErrCountMismatch)
	var cerr *CountMismatchError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 2, cerr.Keys)
	assert.Equal(t, 1, cerr.Values)

	names, err := reg.Project("names")
	require.NoError(t, err)
	assert.Equal(t, []any{"Alice", "Bob"}, names, "count mismatch must not mutate the store")
}

func TestReplaceBatch(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"))

	err := reg.Replace(
		[]Key{String("Alice"), String("Bob")},
		[]contact{newContact("Anna"), newContact("Bill")},
	)

	require.NoError(t, err)
	names, err := reg.Project("names")
	require.NoError(t, err)
	assert.Equal(t, []any{"Anna", "Bill"}, names, "replacement happens in place")
}

func TestReplaceBatchPartialEffect(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"), newContact("Carol"))

	// The first pair is written before the second collides with Carol;
	// Bob keeps his original record.
	err := reg.Replace(
		[]Key{String("Alice"), String("Bob")},
		[]contact{newContact("Anna"), newContact("Carol")},
	)

	assert.ErrorIs(t, err, ErrDuplicateKey)
	names, err := reg.Project("names")
	require.NoError(t, err)
	assert.Equal(t, []any{"Anna", "Bob", "Carol"}, names)
}

func TestDeleteBatchKeepsRelativeOrder(t *testing.T) {
	alice := newContact("Alice")
	bob := newContact("Bob")
	carol := newContact("Carol")
	dave := newContact("Dave")
	reg := mustRegistry(t, alice, bob, carol, dave)

	// Mixed key forms; resolved indices {3, 0} are removed descending.
	err := reg.Delete(ID(dave.ID), String("Alice"))

	require.NoError(t, err)
	assert.Equal(t, []contact{bob, carol}, reg.Records())
}

func TestDeleteByIndex(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"), newContact("Carol"))

	require.NoError(t, reg.Delete(Index(1)))

	names, err := reg.Project("names")
	require.NoError(t, err)
	assert.Equal(t, []any{"Alice", "Carol"}, names)
}

func TestDeleteDuplicateIndices(t *testing.T) {
	t.Run("each occurrence removes a record", func(t *testing.T) {
		reg := mustRegistry(t, newContact("Alice"), newContact("Bob"), newContact("Carol"), newContact("Dave"))

		// Index 2 is Carol on the first removal and Dave after the store
		// shifts down.
		err := reg.Delete(Index(2), Index(2))

		require.NoError(t, err)
		names, err := reg.Project("names")
		require.NoError(t, err)
		assert.Equal(t, []any{"Alice", "Bob"}, names)
	})

	t.Run("occurrence past the shrunken store fails", func(t *testing.T) {
		reg := mustRegistry(t, newContact("Alice"))

		err := reg.Delete(Index(0), Index(0))

		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		var ierr *IndexError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, 0, ierr.Index)
		assert.Equal(t, 0, ierr.Len)
		assert.Equal(t, 0, reg.Len(), "the first occurrence's removal stands")
	})
}

func TestClearKeepsSchema(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"))

	reg.Clear()

	assert.Equal(t, 0, reg.Len())
	require.NoError(t, reg.Append(newContact("Alice")), "schema survives Clear")
	_, err := reg.Get(String("Alice"))
	assert.NoError(t, err)
}

func TestAllIsRestartable(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"), newContact("Carol"))

	seq := reg.All()

	// First pass stops early; second pass starts over.
	var first []string
	for c := range seq {
		first = append(first, c.Name)
		if len(first) == 2 {
			break
		}
	}
	var second []string
	for c := range seq {
		second = append(second, c.Name)
	}

	assert.Equal(t, []string{"Alice", "Bob"}, first)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, second)
}

func TestRecordsReturnsCopy(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"))

	snapshot := reg.Records()
	snapshot[0].Name = "Mallory"

	got, err := reg.Get(Index(0))
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name, "mutating the snapshot must not touch the store")
}

func TestStringSummary(t *testing.T) {
	reg := mustRegistry(t, newContact("Alice"), newContact("Bob"))

	assert.Equal(t, "Registry<contact>: 2 records, keys: [names, ids]", fmt.Sprint(reg))
}

// TestLifecycleScenario walks the registry through a full append,
// lookup, reject, project, delete sequence.
func TestLifecycleScenario(t *testing.T) {
	u1, u2, u3 := NewID(), NewID(), NewID()
	reg, err := New(contactSchema(), WithRecords(
		contact{ID: u1, Name: "Alice"},
		contact{ID: u2, Name: "Bob"},
	))
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	got, err := reg.Get(String("Alice"))
	require.NoError(t, err)
	assert.Equal(t, u1, got.ID)

	err = reg.Append(contact{ID: u3, Name: "Alice"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	names, err := reg.Project("names")
	require.NoError(t, err)
	assert.Equal(t, []any{"Alice", "Bob"}, names)

	require.NoError(t, reg.Delete(ID(u1)))
	assert.Equal(t, 1, reg.Len())
	remaining, err := reg.Get(Index(0))
	require.NoError(t, err)
	assert.Equal(t, "Bob", remaining.Name)
}
