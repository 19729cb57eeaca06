package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "matcher")
	t.Setenv("HTTP_PORT", "5001")
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "matcher", cfg.App.AppName)
	assert.Equal(t, "5001", cfg.App.HTTPPort)
	assert.Equal(t, 600*time.Second, cfg.Match.CacheTTL)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_NAME", "matcher")
	t.Setenv("HTTP_PORT", ":8080")
	t.Setenv("MATCH_WORKERS", "3")
	t.Setenv("REDIS_TTL", "60")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_CONNECT_TIMEOUT", "2s")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Match.Workers)
	assert.Equal(t, time.Minute, cfg.Match.CacheTTL)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Database.ConnectTimeout)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")

	_, err := LoadDatabase()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "DB_HOST, DB_NAME")

	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "skills")
	t.Setenv("APP_NAME", "")

	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, int32(10), cfg.PoolMaxConns)
}
