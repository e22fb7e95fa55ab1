package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/galois/internal/dot"
)

// DotOptions holds flags for the dot command.
type DotOptions struct {
	*RootOptions
	Output string
}

// NewDotCommand creates the dot command.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Emit the concept lattice as a GraphViz digraph",
		Long: `Emit the concept lattice of a context table in DOT format.

Example:
  galois dot sys.ctx | dot -Tsvg -o lattice.svg`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write DOT to this file instead of stdout")

	return cmd
}

func runDot(opts *DotOptions, path string, cmd *cobra.Command) error {
	r, err := loadContext(path)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("cannot create %s", opts.Output), err)
		}
		defer f.Close()
		w = f
	}
	if err := dot.Write(w, r); err != nil {
		return WrapExitError(ExitFailure, "DOT emission failed", err)
	}
	return nil
}
