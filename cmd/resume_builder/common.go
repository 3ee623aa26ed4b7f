package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/store"
)

// loadConfig resolves configuration in precedence order: flags, then the
// optional JSON config file, then environment variables, then defaults.
func loadConfig() (config.Config, error) {
	cfg := config.Config{StorageDir: storageDir}

	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	env := config.Config{StorageDir: os.Getenv("RESUME_STORAGE_DIR")}
	if portStr := os.Getenv("RESUME_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid RESUME_PORT %q: %w", portStr, err)
		}
		env.Port = port
	}
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore opens the document store over the configured storage
// directory and loads any persisted resume.
func openStore(cfg config.Config) (*store.Store, bool, error) {
	backend, err := store.NewFileBackend(cfg.StorageDir)
	if err != nil {
		return nil, false, err
	}
	st := store.New(backend)
	found := st.Load()
	return st, found, nil
}
