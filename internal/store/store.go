package store

import (
	"errors"
	"fmt"

	"github.com/roach88/uidbench/internal/uid"
)

// DuplicateUIDError reports an attempt to insert a record whose UID is
// already present in the store.
//
// Re-insertion is rejected rather than overwritten: overwriting the
// index entry would leave an orphaned record in the sequence that
// Size still counts but Lookup can never reach.
type DuplicateUIDError struct {
	UID uid.UID
}

// Error implements the error interface.
func (e *DuplicateUIDError) Error() string {
	return fmt.Sprintf("duplicate uid %s: record already inserted", e.UID)
}

// IsDuplicateUID returns true if the error is a duplicate-insert rejection.
// Uses errors.As to handle wrapped errors.
func IsDuplicateUID(err error) bool {
	var de *DuplicateUIDError
	return errors.As(err, &de)
}

// Store is a hash-indexed collection of records.
//
// Invariants:
//   - every index entry refers to a live record in the sequence
//   - the index key set is exactly the set of inserted UIDs
//   - records are append-only; only Clear removes anything
type Store struct {
	records []Record
	index   map[uid.UID]int
}

// New creates an empty store.
func New() *Store {
	return &Store{index: make(map[uid.UID]int)}
}

// NewWithCapacity creates an empty store pre-sized for n records.
// Benchmark runs know their record count up front; pre-sizing keeps
// sequence growth and map rehashing out of the timed insert loop.
func NewWithCapacity(n int) *Store {
	return &Store{
		records: make([]Record, 0, n),
		index:   make(map[uid.UID]int, n),
	}
}

// Insert appends a record and indexes it by UID.
// Returns DuplicateUIDError if the UID is already present; the store
// is unchanged in that case.
func (s *Store) Insert(r Record) error {
	if _, exists := s.index[r.uid]; exists {
		return &DuplicateUIDError{UID: r.uid}
	}
	s.records = append(s.records, r)
	s.index[r.uid] = len(s.records) - 1
	return nil
}

// Lookup returns the record with the given UID.
// The second return value is false when no such record exists.
// The returned pointer stays valid until the next Insert or Clear.
func (s *Store) Lookup(id uid.UID) (*Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.records[i], true
}

// LookupString is Lookup for a string identifier.
// An invalid-length identifier can match nothing, so it reports
// not-found rather than an error.
func (s *Store) LookupString(id string) (*Record, bool) {
	u, err := uid.ParseString(id)
	if err != nil {
		return nil, false
	}
	return s.Lookup(u)
}

// Size returns the number of records in the store.
func (s *Store) Size() int {
	return len(s.records)
}

// Clear removes all records and index entries.
func (s *Store) Clear() {
	s.records = s.records[:0]
	clear(s.index)
}
