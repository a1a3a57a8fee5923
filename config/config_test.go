package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Presets, 5)
	assert.Equal(t, 100000, cfg.Trials)
	assert.Equal(t, "info", cfg.LogLevel)

	preset, ok := cfg.Preset("4x4")
	assert.True(t, ok)
	assert.Equal(t, 4, preset.Rows)
	assert.Equal(t, 4, preset.Cols)

	// Labels are vertical x horizontal: "3x4" is 4 rows by 3 cols.
	preset, ok = cfg.Preset("3x4")
	assert.True(t, ok)
	assert.Equal(t, 4, preset.Rows)
	assert.Equal(t, 3, preset.Cols)

	_, ok = cfg.Preset("9x9")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairsim.yaml")
	content := `
trials: 500
seed: 42
workers: 2
log_level: debug
presets:
  - name: tiny
    rows: 2
    cols: 2
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 500, cfg.Trials)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Len(t, cfg.Presets, 1)
	assert.Equal(t, BoardPreset{Name: "tiny", Rows: 2, Cols: 2}, cfg.Presets[0])
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("trials: [not an int"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRIALS", "250")
	t.Setenv("SEED", "77")
	t.Setenv("WORKERS", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VERBOSE", "true")

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, 250, cfg.Trials)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestEnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("TRIALS", "lots")

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, 100000, cfg.Trials)
}

func TestValidateRejectsOddPreset(t *testing.T) {
	cfg := Defaults()
	cfg.Presets = append(cfg.Presets, BoardPreset{Name: "3x3", Rows: 3, Cols: 3})
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadTrials(t *testing.T) {
	cfg := Defaults()
	cfg.Trials = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNoPresets(t *testing.T) {
	cfg := Defaults()
	cfg.Presets = nil
	assert.ErrorIs(t, cfg.Validate(), ErrNoPresets)
}
