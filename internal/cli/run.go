package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/uidbench/internal/bench"
	"github.com/roach88/uidbench/internal/harness"
	"github.com/roach88/uidbench/internal/results"
	"github.com/roach88/uidbench/internal/uid"
)

// benchParams carries the benchmark dimensions shared by the root,
// run, and bench commands. Zero values select the driver defaults.
type benchParams struct {
	Records  int
	Searches int
	HitRatio float64
	Seed     uint64
	History  string // history database path; empty disables recording
	Demo     bool   // run the demo before the benchmark
}

// addBenchFlags registers the benchmark dimension flags on cmd.
func addBenchFlags(cmd *cobra.Command, p *benchParams) {
	cmd.Flags().IntVarP(&p.Records, "records", "n", 0, "records to insert (default 100000)")
	cmd.Flags().IntVarP(&p.Searches, "searches", "m", 0, "lookups to execute (default 10000)")
	cmd.Flags().Float64Var(&p.HitRatio, "hit-ratio", 0, "fraction of lookups drawn from inserted keys (default 0.7)")
	cmd.Flags().Uint64Var(&p.Seed, "seed", 0, "PRNG seed for reproducible runs (0 = random)")
	cmd.Flags().StringVar(&p.History, "history", "", "path to a SQLite run-history database")
}

// NewRunCommand creates the run command: demo followed by benchmark.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	p := benchParams{Demo: true}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo followed by the benchmark",
		Long: `Run the demo (three fixed records, one hit and one miss lookup) and
then the benchmark with the configured dimensions.

Example:
  uidbench run
  uidbench run --records 50000 --searches 5000 --seed 42
  uidbench run --history ./runs.db --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeBench(rootOpts, cmd, p)
		},
	}

	addBenchFlags(cmd, &p)
	return cmd
}

// NewBenchCommand creates the bench command: benchmark only, no demo.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	var p benchParams

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the benchmark without the demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeBench(rootOpts, cmd, p)
		},
	}

	addBenchFlags(cmd, &p)
	return cmd
}

// executeBench runs demo and/or benchmark per the params and handles
// output formatting, history recording, and exit-code mapping.
func executeBench(opts *RootOptions, cmd *cobra.Command, p benchParams) error {
	scenario := &harness.Scenario{
		Name:     "cli",
		Records:  p.Records,
		Searches: p.Searches,
		HitRatio: p.HitRatio,
		Seed:     p.Seed,
		Locale:   opts.Locale,
		Demo:     p.Demo,
	}

	// JSON mode suppresses the progress/report text; stdout carries
	// exactly one JSON document.
	var textOut io.Writer = cmd.OutOrStdout()
	if opts.Format == "json" {
		textOut = io.Discard
	}

	slog.Debug("starting run",
		"records", p.Records, "searches", p.Searches,
		"hit_ratio", p.HitRatio, "seed", p.Seed, "demo", p.Demo)

	res, err := harness.Run(scenario, textOut, nil, nil)
	if err != nil {
		// The UID length invariant is the program's one fail-fast
		// error; everything else reaching here is bad parameters.
		if uid.IsInvalidLength(err) {
			return WrapExitError(ExitFailure, "run failed", err)
		}
		return WrapExitError(ExitCommandError, "run failed", err)
	}

	if p.History != "" {
		if err := recordRun(cmd, p.History, res.Report); err != nil {
			return err
		}
	}

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return f.Success(res)
}

// recordRun appends the report to the history database.
func recordRun(cmd *cobra.Command, path string, report bench.Report) error {
	h, err := results.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer func() {
		if closeErr := h.Close(); closeErr != nil {
			slog.Error("error closing history database", "error", closeErr)
		}
	}()

	if err := h.Append(cmd.Context(), report); err != nil {
		return WrapExitError(ExitCommandError, "failed to record run", err)
	}
	slog.Info("run recorded", "run_id", report.RunID, "db", path)
	return nil
}
