// Package config provides configuration loading and validation for the
// resume builder.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the builder configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or can
// be provided via CLI flags.
type Config struct {
	StorageDir        string `json:"storage_dir,omitempty"`         // Directory holding the persisted resume document
	Port              int    `json:"port,omitempty"`                // HTTP server port
	ExportTimeoutSecs int    `json:"export_timeout_secs,omitempty"` // Timeout for a single PDF export run
}

// Defaults returns the built-in configuration. The storage directory
// lives under the user's home; when that cannot be resolved it falls back
// to a relative directory.
func Defaults() Config {
	dir := ".resume-builder"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".resume-builder")
	}
	return Config{
		StorageDir:        dir,
		Port:              8080,
		ExportTimeoutSecs: 60,
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ExportTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'export_timeout_secs' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ExportTimeoutSecs == 0 {
		result.ExportTimeoutSecs = defaults.ExportTimeoutSecs
	}
	return result
}
