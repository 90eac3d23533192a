package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/uidbench/internal/harness"
	"github.com/roach88/uidbench/internal/uid"
)

// ScenarioOptions holds flags for the scenario command.
type ScenarioOptions struct {
	*RootOptions
	History string
}

// NewScenarioCommand creates the scenario command.
func NewScenarioCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScenarioOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scenario <file>",
		Short: "Run a YAML scenario file",
		Long: `Run a benchmark scenario defined in a YAML file. The file is validated
against the scenario schema before execution.

Example:
  uidbench scenario ./scenarios/smoke.yaml
  uidbench scenario ./scenarios/large.yaml --history ./runs.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.History, "history", "", "path to a SQLite run-history database")
	return cmd
}

func runScenario(opts *ScenarioOptions, cmd *cobra.Command, path string) error {
	s, err := harness.LoadScenario(path)
	if err != nil {
		var se *harness.ScenarioError
		if errors.As(err, &se) {
			return WrapExitError(ExitCommandError, "invalid scenario", err)
		}
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	// Scenario files may pin their own locale; the flag is only a
	// fallback.
	if s.Locale == "" {
		s.Locale = opts.Locale
	}

	var textOut io.Writer = cmd.OutOrStdout()
	if opts.Format == "json" {
		textOut = io.Discard
	}

	slog.Debug("running scenario", "name", s.Name, "path", path)

	res, err := harness.Run(s, textOut, nil, nil)
	if err != nil {
		if uid.IsInvalidLength(err) {
			return WrapExitError(ExitFailure, "scenario failed", err)
		}
		return WrapExitError(ExitCommandError, "scenario failed", err)
	}

	if opts.History != "" {
		if err := recordRun(cmd, opts.History, res.Report); err != nil {
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
