package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/uidbench/internal/bench"
	"github.com/roach88/uidbench/internal/results"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded benchmark runs",
		Long: `List benchmark runs recorded with --history, newest first.

Example:
  uidbench history --db ./runs.db
  uidbench history --db ./runs.db --limit 5 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the run-history database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	h, err := results.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer func() {
		if closeErr := h.Close(); closeErr != nil {
			slog.Error("error closing history database", "error", closeErr)
		}
	}()

	runs, err := h.List(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if opts.Format == "json" {
		f := &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		}
		return f.Success(runs)
	}

	p := bench.NewPrinter(opts.Locale)
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		p.Fprintf(out, "No recorded runs.\n")
		return nil
	}
	for _, r := range runs {
		p.Fprintf(out, "%s  %s  records=%d searches=%d hits=%d misses=%d search=%v (%d ops/sec)\n",
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.RunID,
			r.Records, r.Searches, r.Hits, r.Misses,
			r.SearchElapsed, int64(r.SearchesPerSecond()))
	}
	return nil
}
