package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/galois/internal/miner"
	"github.com/roach88/galois/internal/store"
)

// MineOptions holds the flags shared by the mining commands. Each
// command registers only the thresholds it consumes.
type MineOptions struct {
	*RootOptions
	ConfigPath    string
	Database      string
	MinSupport    int
	MinConfidence float64
	MaxDiff       int
	MinRHS        int
	MaxConfidence float64
	MinWidth      int
}

// resolveConfig builds the effective thresholds: defaults, then the
// config file, then any explicitly set flags.
func resolveConfig(opts *MineOptions, cmd *cobra.Command) (miner.Config, error) {
	cfg := miner.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = LoadConfig(opts.ConfigPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("min-support") {
		cfg.MinSupport = opts.MinSupport
	}
	if flags.Changed("min-confidence") {
		cfg.MinConfidence = opts.MinConfidence
	}
	if flags.Changed("max-diff") {
		cfg.MaxDiff = opts.MaxDiff
	}
	if flags.Changed("min-rhs") {
		cfg.MinRHS = opts.MinRHS
	}
	if flags.Changed("max-confidence") {
		cfg.MaxConfidence = opts.MaxConfidence
	}
	if flags.Changed("min-width") {
		cfg.MinWidth = opts.MinWidth
	}
	if err := cfg.Validate(); err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid thresholds", err)
	}
	return cfg, nil
}

// violationJSON is the JSON shape of one violation.
type violationJSON struct {
	Confidence float64  `json:"confidence"`
	Support    int      `json:"support"`
	Gap        int      `json:"gap"`
	Exceptions []string `json:"exceptions"`
	RuleAttrs  []string `json:"rule_attrs"`
	FlawAttrs  []string `json:"flaw_attrs"`
}

func violationsJSON(vs []miner.Violation[string, string]) ([]violationJSON, error) {
	out := make([]violationJSON, len(vs))
	for i, v := range vs {
		exc, err := v.Exceptions()
		if err != nil {
			return nil, err
		}
		out[i] = violationJSON{
			Confidence: v.Confidence(),
			Support:    v.Rule.Support.Count(),
			Gap:        v.Gap(),
			Exceptions: exc.Members(),
			RuleAttrs:  v.Rule.RHS.Members(),
			FlawAttrs:  v.Flaw.RHS.Members(),
		}
	}
	return out, nil
}

// violationRows flattens miner edge records into store rows.
func violationRows(vs []miner.Violation[string, string]) ([]store.ViolationRow, error) {
	rows := make([]store.ViolationRow, len(vs))
	for i, v := range vs {
		exc, err := v.Exceptions()
		if err != nil {
			return nil, err
		}
		rows[i] = store.ViolationRow{
			Seq:        i,
			Confidence: v.Confidence(),
			Support:    v.Rule.Support.Count(),
			Gap:        v.Gap(),
			FlawCount:  exc.Count(),
			Exceptions: joinMembers(exc),
			RuleAttrs:  joinMembers(v.Rule.RHS),
			FlawAttrs:  joinMembers(v.Flaw.RHS),
		}
	}
	return rows, nil
}
