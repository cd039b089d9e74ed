package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"jobs": "jobs.json",
		"api_key": "test-key",
		"use_llm": true,
		"verbose": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "jobs.json", cfg.Jobs)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.UseLLM)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
}

func TestFromEnv_DoesNotOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{APIKey: "file-key"}
	cfg.FromEnv()

	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestValidate_UseLLMNeedsKey(t *testing.T) {
	cfg := &Config{UseLLM: true}
	assert.Error(t, cfg.Validate())

	cfg.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingJobsFile(t *testing.T) {
	cfg := &Config{Jobs: filepath.Join(t.TempDir(), "nope.json")}
	assert.Error(t, cfg.Validate())
}
