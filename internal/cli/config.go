package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/galois/internal/miner"
)

// configSchema constrains a threshold file. Every field is optional;
// present fields must be in range. Validation happens by unifying the
// decoded YAML with this definition.
const configSchema = `
#Config: {
	min_support?:    int & >=1
	min_confidence?: number & >=0 & <=1
	max_diff?:       int & >=0
	min_rhs?:        int & >=1
	max_confidence?: number & >=0 & <=1
	min_width?:      int & >=1
}
`

// fileConfig mirrors the YAML threshold file; pointers distinguish
// absent fields from zero values.
type fileConfig struct {
	MinSupport    *int     `yaml:"min_support"`
	MinConfidence *float64 `yaml:"min_confidence"`
	MaxDiff       *int     `yaml:"max_diff"`
	MinRHS        *int     `yaml:"min_rhs"`
	MaxConfidence *float64 `yaml:"max_confidence"`
	MinWidth      *int     `yaml:"min_width"`
}

// LoadConfig reads a YAML threshold file, validates it against the CUE
// schema, and applies it over the defaults.
func LoadConfig(path string) (miner.Config, error) {
	cfg := miner.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, fmt.Sprintf("cannot read config %s", path), err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, WrapExitError(ExitCommandError, fmt.Sprintf("invalid YAML in %s", path), err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	cuectx := cuecontext.New()
	schema := cuectx.CompileString(configSchema).LookupPath(cue.ParsePath("#Config"))
	if schema.Err() != nil {
		return cfg, fmt.Errorf("compile config schema: %w", schema.Err())
	}
	unified := schema.Unify(cuectx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cfg, WrapExitError(ExitCommandError, fmt.Sprintf("invalid config %s", path), err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, WrapExitError(ExitCommandError, fmt.Sprintf("invalid config %s", path), err)
	}
	if fc.MinSupport != nil {
		cfg.MinSupport = *fc.MinSupport
	}
	if fc.MinConfidence != nil {
		cfg.MinConfidence = *fc.MinConfidence
	}
	if fc.MaxDiff != nil {
		cfg.MaxDiff = *fc.MaxDiff
	}
	if fc.MinRHS != nil {
		cfg.MinRHS = *fc.MinRHS
	}
	if fc.MaxConfidence != nil {
		cfg.MaxConfidence = *fc.MaxConfidence
	}
	if fc.MinWidth != nil {
		cfg.MinWidth = *fc.MinWidth
	}
	return cfg, nil
}
