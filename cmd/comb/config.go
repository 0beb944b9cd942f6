package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the CLI configuration, loadable from a TOML file.
type Config struct {
	Format string     `toml:"format"`
	Color  bool       `toml:"color"`
	Call   CallConfig `toml:"call"`
}

// CallConfig holds settings specific to the call grammar.
type CallConfig struct {
	MaxArgs int `toml:"max_args"`
}

// DefaultConfig returns the configuration used when no file is
// given.
func DefaultConfig() *Config {
	return &Config{Format: "tree", Color: true}
}

// LoadConfig reads a TOML configuration file, with defaults filled
// in for anything left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the CLI can't act on.
func (c *Config) Validate() error {
	switch c.Format {
	case "tree", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	if c.Call.MaxArgs < 0 {
		return fmt.Errorf("call.max_args can't be negative: %d", c.Call.MaxArgs)
	}
	return nil
}
