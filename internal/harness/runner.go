package harness

import (
	"fmt"
	"io"

	"github.com/roach88/uidbench/internal/bench"
	"github.com/roach88/uidbench/internal/store"
)

// Result is the outcome of a scenario run.
type Result struct {
	// Scenario is the name of the executed scenario.
	Scenario string `json:"scenario"`

	// DemoSize is the demo store's record count, 0 when the demo was
	// skipped.
	DemoSize int `json:"demo_size,omitempty"`

	// Report is the benchmark report.
	Report bench.Report `json:"report"`
}

// Run executes a scenario: optional demo, then the benchmark, with all
// console output (progress and the results block) written to w.
//
// Nil clock and runIDs select the production defaults; tests pass
// deterministic implementations for golden comparison.
func Run(s *Scenario, w io.Writer, clock bench.Clock, runIDs bench.RunIDGenerator) (*Result, error) {
	p := bench.NewPrinter(s.Locale)
	res := &Result{Scenario: s.Name}

	if s.Demo {
		st := store.New()
		if err := Demo(st, w, p); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		res.DemoSize = st.Size()
	}

	driver := bench.New(s.Config(), clock, bench.NewConsoleReporter(w, p), runIDs)
	report, err := driver.Run()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	res.Report = report

	bench.RenderText(w, p, report)
	return res, nil
}
