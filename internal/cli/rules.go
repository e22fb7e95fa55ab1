package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/galois/internal/fca"
	"github.com/roach88/galois/internal/miner"
	"github.com/roach88/galois/internal/store"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rules <file>",
		Short: "Mine frequent attribute sets",
		Long: `Mine association rules: attribute sets carried by at least
--min-support objects, with at least --min-rhs attributes.

Example:
  galois rules --min-support 3 --min-rhs 2 sys.ctx
  galois rules --min-support 3 --db lattice.db sys.ctx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML threshold file")
	cmd.Flags().StringVar(&opts.Database, "db", "", "persist lattice and rules to this SQLite database")
	cmd.Flags().IntVar(&opts.MinSupport, "min-support", 1, "minimum objects per rule")
	cmd.Flags().IntVar(&opts.MinRHS, "min-rhs", 1, "minimum attributes per rule")

	return cmd
}

func runRules(opts *MineOptions, path string, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}
	r, err := loadContext(path)
	if err != nil {
		return err
	}
	rules, err := miner.Rules(r, cfg)
	if err != nil {
		return WrapExitError(ExitFailure, "rule mining failed", err)
	}
	slog.Debug("rules mined", "count", len(rules), "min_support", cfg.MinSupport, "min_rhs", cfg.MinRHS)

	if opts.Database != "" {
		if err := persistRules(opts.Database, path, r, rules); err != nil {
			return err
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if out.JSON() {
		type ruleJSON struct {
			Support int      `json:"support"`
			Objects []string `json:"objects"`
			Attrs   []string `json:"attrs"`
		}
		payload := make([]ruleJSON, len(rules))
		for i, rule := range rules {
			payload[i] = ruleJSON{
				Support: rule.Support.Count(),
				Objects: rule.Support.Members(),
				Attrs:   rule.RHS.Members(),
			}
		}
		return out.Success(payload)
	}
	return miner.WriteRules(cmd.OutOrStdout(), rules)
}

// persistRules saves the lattice and the mined rules together.
func persistRules(dbPath, name string, r *fca.Context[string, string], rules []miner.Rule[string, string]) error {
	st, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	id, err := persistLattice(st, name, r)
	if err != nil {
		return err
	}

	rows := make([]store.RuleRow, len(rules))
	for i, rule := range rules {
		rows[i] = store.RuleRow{
			Seq:     i,
			Support: rule.Support.Count(),
			Objects: joinMembers(rule.Support),
			Attrs:   joinMembers(rule.RHS),
		}
	}
	if err := st.SaveRules(context.Background(), id, rows); err != nil {
		return WrapExitError(ExitCommandError, "cannot persist rules", err)
	}
	slog.Debug("rules persisted", "db", dbPath, "lattice", id, "count", len(rows))
	return nil
}
