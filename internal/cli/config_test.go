package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesOverDefaults(t *testing.T) {
	path := writeFile(t, "thresholds.yaml", "min_support: 3\nmin_confidence: 0.75\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinSupport)
	assert.Equal(t, 0.75, cfg.MinConfidence)
	// Untouched fields keep their defaults.
	assert.Equal(t, 1, cfg.MaxDiff)
	assert.Equal(t, 1, cfg.MinRHS)
}

func TestLoadConfigEmptyFileIsDefaults(t *testing.T) {
	path := writeFile(t, "thresholds.yaml", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MinSupport)
}

func TestLoadConfigRejectsOutOfRange(t *testing.T) {
	for name, content := range map[string]string{
		"zero support":   "min_support: 0\n",
		"confidence > 1": "min_confidence: 1.5\n",
		"negative diff":  "max_diff: -2\n",
		"zero width":     "min_width: 0\n",
		"wrong type":     "min_support: lots\n",
		"unknown field":  "min_supprot: 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "thresholds.yaml", content)
			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/does/not/exist.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFlawsUsesConfigFileWithFlagOverride(t *testing.T) {
	ctxPath := writeFile(t, "sys.ctx", sysCallsTable)
	cfgPath := writeFile(t, "thresholds.yaml",
		"min_support: 2\nmin_confidence: 0.5\nmax_diff: 2\n")

	fromFile, err := runCLI(t, "flaws", ctxPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, fromFile, "violation (confidence 0.50 support 2 gap 1 flaws 2)")

	// An explicit flag beats the file.
	tightened, err := runCLI(t, "flaws", ctxPath, "--config", cfgPath,
		"--min-confidence", "0.9")
	require.NoError(t, err)
	assert.NotContains(t, tightened, "confidence 0.50")
}
