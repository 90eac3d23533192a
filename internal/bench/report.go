package bench

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// linearProbeCost is the assumed constant cost of one key comparison
// in a hypothetical unindexed scan. The speedup figure derived from it
// is illustrative, not a measured comparison run.
const linearProbeCost = 100 * time.Nanosecond

// DefaultLocale is the locale used for report rendering when none is
// configured. Matches the payload language of the synthetic records.
const DefaultLocale = "ru-RU"

// Report is the outcome of a benchmark run.
type Report struct {
	RunID string `json:"run_id"`

	// StartedAt is the wall-clock start of the run.
	StartedAt time.Time `json:"started_at"`

	// Records is the number of records inserted into the store.
	Records int `json:"records"`

	// GenerateAttempts counts raw UID generations during population,
	// including any draws rejected as collisions.
	GenerateAttempts uint64 `json:"generate_attempts"`

	// Searches is the number of workload lookups executed.
	Searches int `json:"searches"`

	// Hits and Misses partition the workload; Hits+Misses == Searches.
	Hits   int `json:"hits"`
	Misses int `json:"misses"`

	// GenerateElapsed covers UID generation plus store insertion.
	GenerateElapsed time.Duration `json:"generate_elapsed"`

	// SearchElapsed covers the lookup loop only.
	SearchElapsed time.Duration `json:"search_elapsed"`
}

// SearchesPerSecond returns the measured lookup throughput.
// Returns 0 when no search time was recorded.
func (r Report) SearchesPerSecond() float64 {
	if r.SearchElapsed <= 0 {
		return 0
	}
	return float64(r.Searches) / r.SearchElapsed.Seconds()
}

// AvgSearchLatency returns the mean wall time per lookup.
func (r Report) AvgSearchLatency() time.Duration {
	if r.Searches == 0 {
		return 0
	}
	return r.SearchElapsed / time.Duration(r.Searches)
}

// LinearScanSpeedup estimates how much faster the indexed lookups were
// than an average-case linear scan of the store would have been,
// assuming linearProbeCost per key comparison.
func (r Report) LinearScanSpeedup() float64 {
	if r.SearchElapsed <= 0 {
		return 0
	}
	linear := float64(r.Records) / 2 * float64(r.Searches) * linearProbeCost.Seconds()
	return linear / r.SearchElapsed.Seconds()
}

// NewPrinter builds a locale-aware number printer for report output.
// An unparseable tag falls back to DefaultLocale rather than failing:
// locale selection affects rendering only, never correctness.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return message.NewPrinter(tag)
}

// RenderText writes the human-readable results block.
// Numbers are grouped per the printer's locale (ru-RU groups with
// spaces, matching the store's Russian payload text).
func RenderText(w io.Writer, p *message.Printer, r Report) {
	p.Fprintf(w, "=== BENCHMARK RESULTS ===\n")
	p.Fprintf(w, "Run ID: %s\n", r.RunID)
	p.Fprintf(w, "Totals:\n")
	p.Fprintf(w, "  Records in store:  %d\n", r.Records)
	p.Fprintf(w, "  Searches executed: %d\n", r.Searches)
	p.Fprintf(w, "  Records found:     %d\n", r.Hits)
	p.Fprintf(w, "  Records missing:   %d\n", r.Misses)
	p.Fprintf(w, "Performance:\n")
	p.Fprintf(w, "  Generation time:   %v\n", r.GenerateElapsed)
	p.Fprintf(w, "  Search time:       %v\n", r.SearchElapsed)
	p.Fprintf(w, "  Avg per lookup:    %v\n", r.AvgSearchLatency())
	p.Fprintf(w, "  Lookups/sec:       %d\n", int64(r.SearchesPerSecond()))
	p.Fprintf(w, "Efficiency:\n")
	p.Fprintf(w, "  Speedup vs linear scan: ~%d×\n", int64(r.LinearScanSpeedup()))
}
