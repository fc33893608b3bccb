// Package config loads optional CLI defaults from a logsift.yaml file.
// Explicit command-line flags always win over config values; the scanner
// core itself never reads configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable CLI defaults.
type Config struct {
	Pattern         string `yaml:"pattern"           json:"pattern,omitempty"`
	Recurse         bool   `yaml:"recurse"           json:"recurse,omitempty"`
	UseCreationDate bool   `yaml:"use_creation_date" json:"use_creation_date,omitempty"`
	Sort            bool   `yaml:"sort"              json:"sort,omitempty"`
	Jobs            int    `yaml:"jobs"              json:"jobs,omitempty"`
	Format          string `yaml:"format"            json:"format,omitempty"`
	LogLevel        string `yaml:"log_level"         json:"log_level,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Pattern:  "*",
		Format:   "text",
		LogLevel: "warn",
	}
}

// Load reads and validates a YAML config file. Missing keys keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values without touching the filesystem.
func (c Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be non-negative, got %d", c.Jobs)
	}
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", c.Format)
	}
	return nil
}
