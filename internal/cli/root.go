// Package cli implements the morph command-line interface.
//
// The solve command lays out every root of a scene file and prints the
// resulting rects; preview draws them as boxes in the terminal. All
// commands accept --verbose (-v) for debug logging. The logger travels in
// the command context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the morph CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Command output goes to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "morph",
		Short:         "morph lays out stack and grid scenes",
		Long:          `morph loads a scene of styled nodes from TOML or YAML, solves the stack and grid layout of every root and prints or draws the resulting rectangles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newPreviewCmd())

	return root
}
