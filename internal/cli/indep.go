package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/galois/internal/fca"
	"github.com/roach88/galois/internal/miner"
)

// NewIndepCommand creates the indep command.
func NewIndepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "indep <file>",
		Short: "Mine independent feature groups (low-confidence edges)",
		Long: `Mine independent groups: cover-edges whose confidence is at most
--max-confidence, meaning the added attributes vary independently of the
rest. The weaker side must carry at least --min-width attributes.

Example:
  galois indep --min-support 2 --max-confidence 0.2 --min-width 2 sys.ctx
  galois indep --max-confidence 0.2 --db lattice.db sys.ctx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndep(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML threshold file")
	cmd.Flags().StringVar(&opts.Database, "db", "", "persist lattice and groups to this SQLite database")
	cmd.Flags().IntVar(&opts.MinSupport, "min-support", 1, "minimum objects per rule")
	cmd.Flags().Float64Var(&opts.MaxConfidence, "max-confidence", 0.1, "maximum edge confidence")
	cmd.Flags().IntVar(&opts.MinWidth, "min-width", 1, "minimum attributes on the weaker side")

	return cmd
}

func runIndep(opts *MineOptions, path string, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}
	r, err := loadContext(path)
	if err != nil {
		return err
	}
	groups, err := miner.IndepRules(r, cfg)
	if err != nil {
		return WrapExitError(ExitFailure, "independent-group mining failed", err)
	}
	slog.Debug("independent groups mined", "count", len(groups),
		"min_support", cfg.MinSupport, "max_confidence", cfg.MaxConfidence, "min_width", cfg.MinWidth)

	if opts.Database != "" {
		if err := persistIndepGroups(opts.Database, path, r, groups); err != nil {
			return err
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if out.JSON() {
		payload, err := violationsJSON(groups)
		if err != nil {
			return WrapExitError(ExitFailure, "group rendering failed", err)
		}
		return out.Success(payload)
	}
	return miner.WriteViolations(cmd.OutOrStdout(), groups)
}

// persistIndepGroups saves the lattice and the mined groups together.
func persistIndepGroups(dbPath, name string, r *fca.Context[string, string], groups []miner.Violation[string, string]) error {
	st, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	id, err := persistLattice(st, name, r)
	if err != nil {
		return err
	}

	rows, err := violationRows(groups)
	if err != nil {
		return WrapExitError(ExitFailure, "group rendering failed", err)
	}
	if err := st.SaveIndepGroups(context.Background(), id, rows); err != nil {
		return WrapExitError(ExitCommandError, "cannot persist groups", err)
	}
	slog.Debug("independent groups persisted", "db", dbPath, "lattice", id, "count", len(rows))
	return nil
}
