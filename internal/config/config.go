// Package config loads the optional YAML configuration for the
// interactive shell.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the shell settings. Every field has a usable zero-ish
// default; a missing config file is not an error.
type Config struct {
	// Prompt is the label printed before each command line.
	Prompt string `yaml:"prompt"`

	// Password gates the shell when non-empty. The original system
	// shipped with a fixed password; here it is opt-in configuration.
	Password string `yaml:"password"`

	// MaxAttempts bounds password retries before the shell refuses to
	// start.
	MaxAttempts int `yaml:"max_attempts"`

	// Database is the TSV file opened automatically at startup.
	Database string `yaml:"database"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Prompt:      "gradekeep",
		MaxAttempts: 3,
	}
}

// Load reads a YAML config from path. An empty path or a missing file
// yields Default(); a present but unreadable or invalid file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = Default().MaxAttempts
	}
	return cfg, nil
}
