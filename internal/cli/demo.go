package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/uidbench/internal/bench"
	"github.com/roach88/uidbench/internal/harness"
	"github.com/roach88/uidbench/internal/store"
)

// DemoResult is the JSON payload of the demo command.
type DemoResult struct {
	Records int `json:"records"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Insert three fixed records and perform a hit and a miss lookup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	var textOut io.Writer = cmd.OutOrStdout()
	if opts.Format == "json" {
		textOut = io.Discard
	}

	st := store.New()
	if err := harness.Demo(st, textOut, bench.NewPrinter(opts.Locale)); err != nil {
		return WrapExitError(ExitFailure, "demo failed", err)
	}

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return f.Success(DemoResult{Records: st.Size()})
}
