package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")
	t.Setenv("TOKEN_CHECK_INTERVAL", "30s")
	t.Setenv("HTTP_TIMEOUT", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.TokenCheckInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout, "bare numbers are seconds")
	assert.Equal(t, "development", cfg.Environment)
	assert.NotEmpty(t, cfg.SessionFile)
}

func TestLoadRequiresAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	os.Unsetenv("API_BASE_URL")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_base_url: https://api.example.com/v1
image_base_url: https://img.example.com
token_check_interval: 2m
environment: production
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, "https://img.example.com", cfg.ImageBaseURL)
	assert.Equal(t, 2*time.Minute, cfg.TokenCheckInterval)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadFileValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
