package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // registers restore on cleanup
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "PORT", "DATABASE_PATH", "JWT_SECRET", "TOKEN_VALIDITY_HOURS", "APP_ENV")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./zemedic.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidity)
	assert.Equal(t, "development", cfg.Environment)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t, "PORT", "DATABASE_PATH", "JWT_SECRET", "TOKEN_VALIDITY_HOURS", "APP_ENV")
	t.Setenv("PORT", "9191")
	t.Setenv("DATABASE_PATH", "/tmp/medical.db")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY_HOURS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.ServerPort)
	assert.Equal(t, "/tmp/medical.db", cfg.DatabasePath)
	assert.Equal(t, []byte("env-secret"), cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenValidity)
}

func TestLoadInvalidPort(t *testing.T) {
	clearEnv(t, "DATABASE_PATH", "JWT_SECRET", "TOKEN_VALIDITY_HOURS", "APP_ENV")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	clearEnv(t, "PORT", "DATABASE_PATH", "JWT_SECRET", "TOKEN_VALIDITY_HOURS")
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "prod-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("prod-secret"), cfg.JWTSecret)
}
