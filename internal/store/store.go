// Package store owns the in-memory table of student records.
//
// The store is an ordered sequence: insertion order is the canonical
// order and every mutation preserves it (delete shifts, never swaps).
// The unique-ID invariant is enforced here and only here; all mutation
// goes through the store.
package store

import (
	"github.com/gradekeep/gradekeep/internal/record"
)

// Store holds the ordered collection of records. It is exclusively
// owned by the single command-processing goroutine; a concurrent front
// end must serialize access externally.
type Store struct {
	records []record.Record
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Len reports the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// indexOf returns the position of id, or -1. Linear scan: the table is
// small and the contract does not require an index.
func (s *Store) indexOf(id int32) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// Insert appends a new record. Returns *DuplicateIDError and leaves
// the store untouched if the ID is already present.
func (s *Store) Insert(rec record.Record) error {
	if s.indexOf(rec.ID) != -1 {
		return &DuplicateIDError{ID: rec.ID}
	}
	rec.Name = record.ClampText(rec.Name)
	rec.Programme = record.ClampText(rec.Programme)
	s.records = append(s.records, rec)
	return nil
}

// Get looks up a record by ID and returns a copy. The second return
// reports whether the ID was found.
func (s *Store) Get(id int32) (record.Record, bool) {
	i := s.indexOf(id)
	if i == -1 {
		return record.Record{}, false
	}
	return s.records[i], true
}

// Patch describes a partial update. Nil fields keep their prior value.
type Patch struct {
	Name      *string
	Programme *string
	Mark      *float32
}

// Update overwrites only the supplied fields of the record with the
// given ID. The ID itself never changes. Returns *NotFoundError if the
// ID is absent; the patch applies atomically relative to other
// commands (the caller is single-threaded).
func (s *Store) Update(id int32, p Patch) error {
	i := s.indexOf(id)
	if i == -1 {
		return &NotFoundError{ID: id}
	}
	if p.Name != nil {
		s.records[i].Name = record.ClampText(*p.Name)
	}
	if p.Programme != nil {
		s.records[i].Programme = record.ClampText(*p.Programme)
	}
	if p.Mark != nil {
		s.records[i].Mark = *p.Mark
	}
	return nil
}

// Delete removes the record with the given ID and closes the gap:
// later records shift down one position, so the relative order of all
// survivors is unchanged.
func (s *Store) Delete(id int32) error {
	i := s.indexOf(id)
	if i == -1 {
		return &NotFoundError{ID: id}
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// Clear discards every record.
func (s *Store) Clear() {
	s.records = s.records[:0]
}

// ReplaceAll discards the current contents and installs recs as the
// new table, in the given order. Used by load.
func (s *Store) ReplaceAll(recs []record.Record) {
	s.records = make([]record.Record, len(recs))
	copy(s.records, recs)
}

// Snapshot returns a copy of the records in store order. Mutating the
// returned slice does not affect the store; sort, search and save all
// operate on snapshots.
func (s *Store) Snapshot() []record.Record {
	out := make([]record.Record, len(s.records))
	copy(out, s.records)
	return out
}
