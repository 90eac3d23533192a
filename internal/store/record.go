package store

import (
	"fmt"

	"github.com/roach88/uidbench/internal/uid"
)

// Record associates a UID with an opaque payload.
// Records are immutable after construction.
type Record struct {
	uid     uid.UID
	payload string
}

// NewRecord constructs a record, validating the identifier length.
// Returns uid.InvalidLengthError (wrapped) when the identifier is not
// exactly uid.Size bytes.
func NewRecord(id string, payload string) (Record, error) {
	u, err := uid.ParseString(id)
	if err != nil {
		return Record{}, fmt.Errorf("new record: %w", err)
	}
	return Record{uid: u, payload: payload}, nil
}

// NewRecordUID constructs a record from an already-validated UID.
func NewRecordUID(u uid.UID, payload string) Record {
	return Record{uid: u, payload: payload}
}

// UID returns the record's identifier.
func (r Record) UID() uid.UID {
	return r.uid
}

// Payload returns the record's payload.
func (r Record) Payload() string {
	return r.payload
}
