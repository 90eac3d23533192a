package harness

import (
	"fmt"
	"io"

	"golang.org/x/text/message"

	"github.com/roach88/uidbench/internal/store"
)

// missUID is a literal identifier guaranteed absent from the demo set.
const missUID = "XXXXXXX"

// demoRecords are the fixed records the demo inserts, in order.
var demoRecords = []struct {
	uid     string
	payload string
}{
	{"ABCDEFG", "Тестовая запись 1"},
	{"HIJKLMN", "Тестовая запись 2"},
	{"OPQRSTU", "Тестовая запись 3"},
}

// Demo populates st with the three fixed records, performs one hit
// lookup and one guaranteed-miss lookup, and prints the outcomes.
//
// A record-construction error (which the fixed literals should never
// trigger) is returned unwrapped in meaning: callers let it propagate
// to the top level, where it maps to exit code 1.
func Demo(st *store.Store, w io.Writer, p *message.Printer) error {
	p.Fprintf(w, "=== DEMO ===\n")

	for _, d := range demoRecords {
		rec, err := store.NewRecord(d.uid, d.payload)
		if err != nil {
			return fmt.Errorf("demo record %q: %w", d.uid, err)
		}
		if err := st.Insert(rec); err != nil {
			return fmt.Errorf("demo insert %q: %w", d.uid, err)
		}
	}

	if rec, ok := st.LookupString(demoRecords[0].uid); ok {
		p.Fprintf(w, "Found record: UID=%s, payload=%s\n", rec.UID(), rec.Payload())
	}

	if _, ok := st.LookupString(missUID); !ok {
		p.Fprintf(w, "No record with UID=%s (expected)\n", missUID)
	}

	p.Fprintf(w, "Records in demo store: %d\n", st.Size())
	return nil
}
