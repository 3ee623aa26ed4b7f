package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.NotEmpty(t, cfg.StorageDir)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 60, cfg.ExportTimeoutSecs)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `{"storage_dir": "/tmp/resumes", "port": 9090, "export_timeout_secs": 30}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/resumes", cfg.StorageDir)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 30, cfg.ExportTimeoutSecs)
}

func TestLoad_PartialFile(t *testing.T) {
	path := writeConfigFile(t, `{"port": 3000}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Empty(t, cfg.StorageDir)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: 8080, ExportTimeoutSecs: 60}
	assert.NoError(t, cfg.Validate())

	cfg = Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 8080, ExportTimeoutSecs: -5}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()

	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, defaults.StorageDir, merged.StorageDir)
	assert.Equal(t, defaults.ExportTimeoutSecs, merged.ExportTimeoutSecs)

	cfg = Config{}
	merged = cfg.MergeWithDefaults(defaults)
	assert.Equal(t, defaults, merged)

	cfg = Config{StorageDir: "/data", Port: 1234, ExportTimeoutSecs: 10}
	merged = cfg.MergeWithDefaults(defaults)
	assert.Equal(t, cfg, merged)
}
