// Package config provides unified configuration loading for the connectome
// tools. It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config contains all connectome tool settings.
type Config struct {
	// Ingest contains settings for reading the connectivity table.
	Ingest IngestConfig `json:"ingest" yaml:"ingest"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Simulation contains the LIF simulation defaults.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
}

// IngestConfig configures the tabular row source.
type IngestConfig struct {
	// Delimiter is the field separator, a single character. Default: ",".
	Delimiter string `json:"delimiter" yaml:"delimiter"`

	// Header indicates the input begins with one header row to skip.
	Header bool `json:"header" yaml:"header"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "trace" logs every ingested row.
	Level string `json:"level" yaml:"level"`
}

// SimulationConfig configures the LIF simulation defaults. See
// internal/simulation for parameter semantics.
type SimulationConfig struct {
	Steps          int     `json:"steps" yaml:"steps"`
	RestPotential  float64 `json:"rest_potential" yaml:"rest_potential"`
	Threshold      float64 `json:"threshold" yaml:"threshold"`
	ResetPotential float64 `json:"reset_potential" yaml:"reset_potential"`
	LeakRate       float64 `json:"leak_rate" yaml:"leak_rate"`
	GapCoupling    float64 `json:"gap_coupling" yaml:"gap_coupling"`
	SynapticGain   float64 `json:"synaptic_gain" yaml:"synaptic_gain"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Ingest: IngestConfig{
			Delimiter: ",",
			Header:    true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Simulation: SimulationConfig{
			Steps:          10,
			RestPotential:  0,
			Threshold:      1,
			ResetPotential: 0,
			LeakRate:       0.1,
			GapCoupling:    0.2,
			SynapticGain:   1,
		},
	}
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ~/.connectome/config.yaml -> environment.
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".connectome", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file, layered over
// the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Ingest.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Ingest.Delimiter)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.Simulation.Steps < 0 {
		return fmt.Errorf("simulation steps must be non-negative, got %d", c.Simulation.Steps)
	}
	if c.Simulation.LeakRate < 0 || c.Simulation.LeakRate > 1 {
		return fmt.Errorf("leak_rate must be between 0 and 1, got %f", c.Simulation.LeakRate)
	}
	if c.Simulation.ResetPotential >= c.Simulation.Threshold {
		return fmt.Errorf("reset_potential (%f) must be below threshold (%f)",
			c.Simulation.ResetPotential, c.Simulation.Threshold)
	}

	return nil
}

// DelimiterRune returns the configured delimiter as a rune. Call Validate
// first; an invalid delimiter falls back to ','.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Ingest.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("CONNECTOME_DELIMITER"); v != "" {
		config.Ingest.Delimiter = v
	}

	if v := os.Getenv("CONNECTOME_HEADER"); v != "" {
		config.Ingest.Header = v == "true" || v == "1"
	}

	if v := os.Getenv("CONNECTOME_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("CONNECTOME_SIM_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Steps = n
		}
	}

	if v := os.Getenv("CONNECTOME_SIM_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Simulation.Threshold = f
		}
	}
}
