package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("ROLE_RESOLVE_ATTEMPTS", "5")
	t.Setenv("ROLE_RESOLVE_BACKOFF", "50ms")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 42, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Roles.ResolveAttempts)
	assert.Equal(t, "50ms", cfg.Roles.ResolveBackoff)
	// Untouched fields keep their defaults.
	assert.Equal(t, "eduportal", cfg.Database.DBName)
	assert.Equal(t, "5m", cfg.Cache.ListTTL)
}

func TestLoadConfigReadsYAMLFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"8181\"\nroles:\n  resolve_backoff: 100ms\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8181", cfg.Server.Port)
	assert.Equal(t, "100ms", cfg.Roles.ResolveBackoff)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "JWT secret")
	})

	t.Run("bad backoff duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("ROLE_RESOLVE_BACKOFF", "soon")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "backoff")
	})

	t.Run("non-numeric env int", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("DB_MAX_OPEN_CONNS", "many")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "DB_MAX_OPEN_CONNS")
	})
}
