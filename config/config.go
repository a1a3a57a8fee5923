// Package config holds the simulator's configuration: board-size presets,
// trial count and reporting options. Values come from defaults, an optional
// YAML file and environment variable overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "pairsim.yaml"

// ErrNoPresets is returned by Validate when no board presets are configured.
var ErrNoPresets = errors.New("no board presets configured")

// BoardPreset names one board size. The label is what users pass on the
// command line (e.g. "4x4").
type BoardPreset struct {
	Name string `yaml:"name"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
}

// Config holds all configurable simulator parameters.
type Config struct {
	// Presets lists the board sizes a batch run iterates over, in order.
	Presets []BoardPreset `yaml:"presets"`

	// Trials is the number of games simulated per board size.
	Trials int `yaml:"trials"`

	// Seed is the master random seed; 0 means derive one from the clock.
	Seed int64 `yaml:"seed"`

	// Workers bounds batch parallelism; 0 means one worker per CPU.
	Workers int `yaml:"workers"`

	// LogLevel sets log verbosity: "info" (default) or "debug". Unknown
	// values fall back to info.
	LogLevel string `yaml:"log_level"`

	// Verbose enables per-turn narrative output (shorthand for a debug
	// LogLevel). Purely a reporting concern; it never changes simulation
	// outcomes.
	Verbose bool `yaml:"verbose"`
}

// Defaults returns a Config with the standard board sizes. Labels are
// vertical x horizontal, dimensions are (rows, cols).
func Defaults() *Config {
	return &Config{
		Presets: []BoardPreset{
			{Name: "3x4", Rows: 4, Cols: 3},
			{Name: "4x4", Rows: 4, Cols: 4},
			{Name: "4x5", Rows: 5, Cols: 4},
			{Name: "5x6", Rows: 6, Cols: 5},
			{Name: "6x6", Rows: 6, Cols: 6},
		},
		Trials:   100000,
		Seed:     0,
		Workers:  0,
		LogLevel: "info",
		Verbose:  false,
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment variable overrides. An explicit path must exist and parse; the
// default file is used only when present.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("read config: %w", err)
	}

	overrideInt(&cfg.Trials, "TRIALS")
	overrideInt64(&cfg.Seed, "SEED")
	overrideInt(&cfg.Workers, "WORKERS")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	overrideBool(&cfg.Verbose, "VERBOSE")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a simulation run.
func (c *Config) Validate() error {
	if len(c.Presets) == 0 {
		return ErrNoPresets
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	for _, p := range c.Presets {
		if p.Rows <= 0 || p.Cols <= 0 {
			return fmt.Errorf("preset %q: invalid dimensions %dx%d", p.Name, p.Rows, p.Cols)
		}
		if p.Rows*p.Cols%2 != 0 {
			return fmt.Errorf("preset %q: %dx%d board has an odd cell count", p.Name, p.Rows, p.Cols)
		}
	}
	return nil
}

// Preset looks up a board preset by label.
func (c *Config) Preset(name string) (BoardPreset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return BoardPreset{}, false
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			slog.Warn("ignoring invalid env override", "tag", "config", "key", envKey, "value", val)
		}
	}
}

func overrideInt64(field *int64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			*field = n
		} else {
			slog.Warn("ignoring invalid env override", "tag", "config", "key", envKey, "value", val)
		}
	}
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func overrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*field = b
		} else {
			slog.Warn("ignoring invalid env override", "tag", "config", "key", envKey, "value", val)
		}
	}
}
