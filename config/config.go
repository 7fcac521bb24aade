// Package config holds the runtime configuration of an enumeration run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one run. Values come from defaults, an optional YAML
// file, and CLI flags, in that order of precedence (flags win).
type Config struct {
	Regions              []string `yaml:"regions"`
	IncludeResourceTypes []string `yaml:"include_resource_types"`
	ExcludeResourceTypes []string `yaml:"exclude_resource_types"`
	OnlyCounts           bool     `yaml:"only_counts"`
	ShowStats            bool     `yaml:"show_stats"`
	Profile              string   `yaml:"profile"`
	Workers              int      `yaml:"workers"`
	OutputDir            string   `yaml:"output_dir"`

	IncludeDefaultResources bool   `yaml:"include_default_resources"`
	ExclusionsFile          string `yaml:"exclusions_file"`

	HistoryDB   string `yaml:"history_db"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IncludeResourceTypes: []string{"*"},
		Workers:              16,
		OutputDir:            "results",
		HistoryDB:            "results/history.db",
	}
}

// Load reads configuration from a YAML file, applied over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate ensures the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}
