// Package config provides configuration loading and management for mapstats.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mapstats/pkg/stats"
	"mapstats/pkg/units"
)

// Config represents the configuration of a statistic loaded from YAML
type Config struct {
	// Statistic capability flags
	Statistic struct {
		// NeedHeader is false for statistics that never read the header
		NeedHeader bool `yaml:"needHeader"`

		// NoData is true for statistics that never read the data array
		NoData bool `yaml:"noData"`
	} `yaml:"statistic"`

	// Distance to the source as "<value> <unit>", e.g. "250 pc". Empty
	// leaves the distance unset.
	Distance string `yaml:"distance"`

	// Output parameters
	Output struct {
		// Verbose logs input resolution to stderr
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Statistic.NeedHeader = true
	cfg.Statistic.NoData = false

	cfg.Output.Verbose = false

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}

// Options converts the capability and output settings into base options.
func (c *Config) Options() []stats.Option {
	var opts []stats.Option
	if !c.Statistic.NeedHeader {
		opts = append(opts, stats.WithoutHeader())
	}
	if c.Statistic.NoData {
		opts = append(opts, stats.WithoutData())
	}

	out := io.Discard
	if c.Output.Verbose {
		out = os.Stderr
	}
	opts = append(opts, stats.WithLogger(log.New(out, "mapstats: ", log.LstdFlags)))

	return opts
}

// NewBase builds a statistic base from the configuration, setting the
// distance when one is configured. Extra options are applied last.
func (c *Config) NewBase(extra ...stats.Option) (*stats.Base, error) {
	b := stats.NewBase(append(c.Options(), extra...)...)

	if strings.TrimSpace(c.Distance) == "" {
		return b, nil
	}

	dist, err := units.Parse(c.Distance)
	if err != nil {
		return nil, fmt.Errorf("invalid distance %q: %w", c.Distance, err)
	}
	if err := b.SetDistance(dist); err != nil {
		return nil, fmt.Errorf("invalid distance %q: %w", c.Distance, err)
	}

	return b, nil
}
