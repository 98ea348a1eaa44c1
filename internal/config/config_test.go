package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"input": "colleges.csv",
		"output": "enriched.csv",
		"requests_per_minute": 20,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "colleges.csv", cfg.Input)
	assert.Equal(t, "enriched.csv", cfg.Output)
	assert.Equal(t, 20, cfg.RequestsPerMinute)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate_NonPositiveRate(t *testing.T) {
	cfg := &Config{RequestsPerMinute: 0}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requests_per_minute")
}

func TestValidate_MissingInput(t *testing.T) {
	cfg := &Config{
		Input:             filepath.Join(t.TempDir(), "absent.csv"),
		RequestsPerMinute: 10,
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Output: "custom.csv"}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "us_universities.csv", merged.Input)
	assert.Equal(t, "custom.csv", merged.Output)
	assert.Equal(t, 10, merged.RequestsPerMinute)
}

func TestResolveAPIKey_Explicit(t *testing.T) {
	cfg := &Config{APIKey: "explicit-key"}
	key, err := cfg.ResolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "explicit-key", key)
}

func TestResolveAPIKey_FromKeyFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "gemini-key.txt")
	require.NoError(t, os.WriteFile(keyFile, []byte("  file-key\n"), 0600))

	cfg := &Config{KeyFile: keyFile}
	key, err := cfg.ResolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "file-key", key)
}

func TestResolveAPIKey_FallsBackToEnv(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "env-key")

	cfg := &Config{KeyFile: filepath.Join(t.TempDir(), "absent-key.txt")}
	key, err := cfg.ResolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestResolveAPIKey_MissingIsFatal(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")

	cfg := &Config{}
	key, err := cfg.ResolveAPIKey()
	assert.Empty(t, key)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key not found")
}
