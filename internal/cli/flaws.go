package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/galois/internal/fca"
	"github.com/roach88/galois/internal/miner"
)

// NewFlawsCommand creates the flaws command.
func NewFlawsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "flaws <file>",
		Short: "Mine rule violations (near-misses of frequent rules)",
		Long: `Mine violations: cover-edges of the lattice where a rule held by
--min-support objects is broken by a small set of exceptions.

A violation reports the exceptions, the rule they break, and the weaker
rule they do satisfy.

Example:
  galois flaws --min-support 2 --min-confidence 0.5 --max-diff 2 sys.ctx
  galois flaws --config thresholds.yaml --db lattice.db sys.ctx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlaws(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML threshold file")
	cmd.Flags().StringVar(&opts.Database, "db", "", "persist lattice and violations to this SQLite database")
	cmd.Flags().IntVar(&opts.MinSupport, "min-support", 1, "minimum objects per rule")
	cmd.Flags().Float64Var(&opts.MinConfidence, "min-confidence", 0.9, "minimum rule confidence")
	cmd.Flags().IntVar(&opts.MaxDiff, "max-diff", 1, "maximum attribute gap")

	return cmd
}

func runFlaws(opts *MineOptions, path string, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}
	r, err := loadContext(path)
	if err != nil {
		return err
	}
	violations, err := miner.Flaws(r, cfg)
	if err != nil {
		return WrapExitError(ExitFailure, "violation mining failed", err)
	}
	slog.Debug("violations mined", "count", len(violations),
		"min_support", cfg.MinSupport, "min_confidence", cfg.MinConfidence, "max_diff", cfg.MaxDiff)

	if opts.Database != "" {
		if err := persistViolations(opts.Database, path, r, violations); err != nil {
			return err
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if out.JSON() {
		payload, err := violationsJSON(violations)
		if err != nil {
			return WrapExitError(ExitFailure, "violation rendering failed", err)
		}
		return out.Success(payload)
	}
	return miner.WriteViolations(cmd.OutOrStdout(), violations)
}

// persistViolations saves the lattice and the mined violations together.
func persistViolations(dbPath, name string, r *fca.Context[string, string], violations []miner.Violation[string, string]) error {
	st, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	id, err := persistLattice(st, name, r)
	if err != nil {
		return err
	}

	rows, err := violationRows(violations)
	if err != nil {
		return WrapExitError(ExitFailure, "violation rendering failed", err)
	}
	if err := st.SaveViolations(context.Background(), id, rows); err != nil {
		return WrapExitError(ExitCommandError, "cannot persist violations", err)
	}
	slog.Debug("violations persisted", "db", dbPath, "lattice", id, "count", len(rows))
	return nil
}
