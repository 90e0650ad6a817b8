// Package config loads the lexgen CLI's optional TOML configuration file,
// adapted from dekarrin-tunaq/internal/tqw's toml.Unmarshal usage and
// server/config.go's typed-config-struct shape.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds user-configurable defaults for the lexgen CLI.
type Config struct {
	// OutputFormat is the default --output value (text|json).
	OutputFormat string `toml:"output_format"`

	// NoColor disables ANSI color in text output by default.
	NoColor bool `toml:"no_color"`

	// DotOutDir is the directory diagnostic Graphviz dumps are written to
	// when no explicit path is given.
	DotOutDir string `toml:"dot_out_dir"`
}

// Default returns the built-in configuration used when no file is found.
func Default() *Config {
	return &Config{
		OutputFormat: "text",
		NoColor:      false,
		DotOutDir:    ".",
	}
}

// Load reads and parses the TOML file at path into a Config seeded with
// Default() values, so an absent field in the file keeps its default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path if it is non-empty and exists; otherwise it
// returns Default(). A non-empty path that cannot be read or parsed is
// still an error — silently falling back would hide a user typo.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
