package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_DIR", "DEFAULT_USER", "STORAGE_BACKEND", "REDIS_HOST", "RATE_LIMIT", "RATE_WINDOW", "CACHE_TTL", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "default", cfg.DefaultUser)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DB_USER", "life")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "sync")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_WINDOW", "10s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://life:pw@db:5433/sync?sslmode=disable", cfg.PostgresDSN())
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.RateWindow)
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("DEFAULT_USER", "")
	os.Unsetenv("DEFAULT_USER")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DEFAULT_USER=maria\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "maria", cfg.DefaultUser)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Unknown backend", "STORAGE_BACKEND", "mongo"},
		{"Bad rate limit", "RATE_LIMIT", "many"},
		{"Zero rate limit", "RATE_LIMIT", "0"},
		{"Bad window", "RATE_WINDOW", "soon"},
		{"Bad ttl", "CACHE_TTL", "-1m"},
		{"Bad redis db", "REDIS_DB", "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
