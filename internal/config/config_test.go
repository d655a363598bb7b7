package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DSN", "SERVER_PORT", "SESSION_SECRET", "PUBLIC_DIR", "ADMIN_EMAIL", "ADMIN_PASSWORD", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "web/public", cfg.PublicDir)
	assert.Equal(t, "admin@learnpath.local", cfg.AdminEmail)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SecretDefaulted)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "super-secret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "super-secret", cfg.SessionSecret)
	assert.False(t, cfg.SecretDefaulted)
	assert.Equal(t, "debug", cfg.LogLevel)
}
