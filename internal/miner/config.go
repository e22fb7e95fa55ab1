package miner

import "fmt"

// Config carries the mining thresholds. Zero values are not valid;
// start from DefaultConfig and override.
type Config struct {
	// MinSupport prunes concepts with fewer objects. ≥ 1.
	MinSupport int `yaml:"min_support"`
	// MinConfidence is the lower bound on |O_rule| / |O_flaw| for
	// violation reporting. In [0, 1].
	MinConfidence float64 `yaml:"min_confidence"`
	// MaxDiff is the upper bound on the attribute gap of a reported
	// violation. ≥ 0.
	MaxDiff int `yaml:"max_diff"`
	// MinRHS is the minimum attribute count of an emitted rule. ≥ 1.
	MinRHS int `yaml:"min_rhs"`
	// MaxConfidence is the upper bound on edge confidence in
	// independent-group mode. In [0, 1].
	MaxConfidence float64 `yaml:"max_confidence"`
	// MinWidth is the minimum attribute count of the weaker concept in
	// independent-group mode. ≥ 1.
	MinWidth int `yaml:"min_width"`
}

// DefaultConfig returns the thresholds used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MinSupport:    1,
		MinConfidence: 0.9,
		MaxDiff:       1,
		MinRHS:        1,
		MaxConfidence: 0.1,
		MinWidth:      1,
	}
}

// ConfigError reports an out-of-range threshold.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("miner: invalid %s: %s", e.Field, e.Msg)
}

// Validate checks every threshold's range.
func (c Config) Validate() error {
	if c.MinSupport < 1 {
		return &ConfigError{Field: "min_support", Msg: fmt.Sprintf("%d < 1", c.MinSupport)}
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return &ConfigError{Field: "min_confidence", Msg: fmt.Sprintf("%g outside [0, 1]", c.MinConfidence)}
	}
	if c.MaxDiff < 0 {
		return &ConfigError{Field: "max_diff", Msg: fmt.Sprintf("%d < 0", c.MaxDiff)}
	}
	if c.MinRHS < 1 {
		return &ConfigError{Field: "min_rhs", Msg: fmt.Sprintf("%d < 1", c.MinRHS)}
	}
	if c.MaxConfidence < 0 || c.MaxConfidence > 1 {
		return &ConfigError{Field: "max_confidence", Msg: fmt.Sprintf("%g outside [0, 1]", c.MaxConfidence)}
	}
	if c.MinWidth < 1 {
		return &ConfigError{Field: "min_width", Msg: fmt.Sprintf("%d < 1", c.MinWidth)}
	}
	return nil
}
