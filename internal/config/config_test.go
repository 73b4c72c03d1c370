package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 16, cfg.Generator.DefaultLength)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9090
  request_timeout: 2s
generator:
  default_length: 24
rate_limit:
  backend: redis
  redis_url: redis://localhost:6379/0
  window: 30s
cors:
  allowed_origins:
    - https://example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 24, cfg.Generator.DefaultLength)
	assert.Equal(t, "redis", cfg.RateLimit.Backend)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PASSCHECK_PORT", "7070")
	t.Setenv("PASSCHECK_GENERATOR_DEFAULT_LENGTH", "32")
	t.Setenv("PASSCHECK_CORS_ALLOWED_ORIGINS", "https://a.test,https://b.test")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 32, cfg.Generator.DefaultLength)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	t.Setenv("PASSCHECK_GENERATOR_DEFAULT_LENGTH", "3")
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestValidateRedisBackendNeedsURL(t *testing.T) {
	t.Setenv("PASSCHECK_RATE_LIMIT_BACKEND", "redis")
	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "redis_url")
}
