package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "bolt"
	cfg.Storage.DataDir = "/var/lib/budgetwave"
	cfg.Logging.Level = "debug"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Storage, got.Storage)
	assert.Equal(t, cfg.Logging, got.Logging)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, ".", cfg.Storage.DataDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("storage: [broken"), 0o644))
	_, err = LoadOrDefault(path)
	assert.Error(t, err)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: bolt\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, ".", cfg.Storage.DataDir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "backend: file")
	assert.Contains(t, contents, "data_dir:")
	assert.Contains(t, contents, "level: info")
	assert.Contains(t, contents, "format: console")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvBackend:  "bolt",
		EnvDataDir:  "/tmp/bw",
		EnvLogLevel: "warn",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/bw", cfg.Storage.DataDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset variables leave the field alone")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	const key = "BUDGETWAVE_TEST_DOTENV"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "from-file", os.Getenv(key))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(t.TempDir()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Storage.Backend = "sqlite" }},
		{"level", func(c *Config) { c.Logging.Level = "trace" }},
		{"format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
