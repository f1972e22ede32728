package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MemoryBackendNeedsNoURLs(t *testing.T) {
	cfg := &Config{DocstoreBackend: BackendMemory}
	assert.NoError(t, validate(cfg))
}

func TestValidate_PostgresRequiresDatabaseURL(t *testing.T) {
	cfg := &Config{DocstoreBackend: BackendPostgres}
	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	cfg.DatabaseURL = "postgres://localhost/journal"
	assert.NoError(t, validate(cfg))
}

func TestValidate_RedisRequiresRedisURL(t *testing.T) {
	cfg := &Config{DocstoreBackend: BackendRedis}
	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_URL")

	cfg.RedisURL = "redis://localhost:6379"
	assert.NoError(t, validate(cfg))
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{DocstoreBackend: "mongo"}
	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCSTORE_BACKEND")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DOCSTORE_BACKEND", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, BackendMemory, cfg.DocstoreBackend)
}
