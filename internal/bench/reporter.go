package bench

import (
	"io"
	"time"

	"golang.org/x/text/message"
)

// Stage identifies a phase of the benchmark for progress reporting.
type Stage string

const (
	// StageGenerate covers UID generation and store population.
	StageGenerate Stage = "generate"

	// StageWorkload covers search-key preparation and shuffling.
	StageWorkload Stage = "workload"

	// StageSearch covers workload lookup execution.
	StageSearch Stage = "search"
)

// Reporter receives progress events during a benchmark run.
//
// The driver calls Progress from inside its timed loops, so
// implementations should keep the per-call cost low. Implementations
// decide formatting and destination; the driver never writes to
// stdout itself.
type Reporter interface {
	// StageStarted announces a stage and its total item count.
	StageStarted(stage Stage, total int)

	// Progress reports cumulative completed items within a stage.
	Progress(stage Stage, done int)

	// StageFinished reports a stage's elapsed wall time.
	StageFinished(stage Stage, elapsed time.Duration)
}

// NopReporter discards all progress events. Used in tests and when
// timing runs without console noise.
type NopReporter struct{}

// StageStarted implements Reporter.
func (NopReporter) StageStarted(Stage, int) {}

// Progress implements Reporter.
func (NopReporter) Progress(Stage, int) {}

// StageFinished implements Reporter.
func (NopReporter) StageFinished(Stage, time.Duration) {}

// ConsoleReporter prints progress lines to a writer with locale-aware
// number formatting.
type ConsoleReporter struct {
	w io.Writer
	p *message.Printer
}

// NewConsoleReporter creates a console reporter. A nil printer uses
// the default locale.
func NewConsoleReporter(w io.Writer, p *message.Printer) *ConsoleReporter {
	if p == nil {
		p = NewPrinter(DefaultLocale)
	}
	return &ConsoleReporter{w: w, p: p}
}

// StageStarted implements Reporter.
func (c *ConsoleReporter) StageStarted(stage Stage, total int) {
	switch stage {
	case StageGenerate:
		c.p.Fprintf(c.w, "Generating %d records...\n", total)
	case StageWorkload:
		c.p.Fprintf(c.w, "Preparing %d search keys...\n", total)
	case StageSearch:
		c.p.Fprintf(c.w, "Searching %d keys...\n", total)
	}
}

// Progress implements Reporter.
func (c *ConsoleReporter) Progress(stage Stage, done int) {
	switch stage {
	case StageGenerate:
		c.p.Fprintf(c.w, "  records generated: %d\n", done)
	case StageSearch:
		c.p.Fprintf(c.w, "  lookups executed:  %d\n", done)
	}
}

// StageFinished implements Reporter.
func (c *ConsoleReporter) StageFinished(stage Stage, elapsed time.Duration) {
	switch stage {
	case StageGenerate:
		c.p.Fprintf(c.w, "Generation finished in %v\n", elapsed)
	case StageSearch:
		c.p.Fprintf(c.w, "Search finished in %v\n", elapsed)
	}
}
