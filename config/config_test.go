package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_DefaultsWithEnvSecret(t *testing.T) {
	t.Setenv("SMARTTASKS_AUTH_SECRET", testSecret)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 120*time.Minute, cfg.Auth.TokenLifetime)
	assert.Equal(t, "smarttasks", cfg.Auth.Issuer)
	assert.Equal(t, "@every 1h", cfg.Scheduler.Spec)
	assert.Empty(t, cfg.Firebase.ProjectID)
}

func TestLoad_YAMLFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
database:
  driver: sqlite
  dsn: "file::memory:"
auth:
  secret: "` + testSecret + `"
  token_lifetime: 30m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SMARTTASKS_LOG_FORMAT", "console")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenLifetime)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("SMARTTASKS_AUTH_SECRET", testSecret)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"},
		Auth:     AuthConfig{Secret: testSecret, TokenLifetime: time.Minute},
	}
	require.NoError(t, valid.Validate())

	t.Run("UnknownDriver", func(t *testing.T) {
		c := valid
		c.Database.Driver = "postgres"
		assert.ErrorContains(t, c.Validate(), "unsupported database driver")
	})

	t.Run("ShortSecret", func(t *testing.T) {
		c := valid
		c.Auth.Secret = "short"
		assert.ErrorContains(t, c.Validate(), "auth secret")
	})

	t.Run("EmptyDSN", func(t *testing.T) {
		c := valid
		c.Database.DSN = ""
		assert.ErrorContains(t, c.Validate(), "dsn")
	})

	t.Run("ZeroLifetime", func(t *testing.T) {
		c := valid
		c.Auth.TokenLifetime = 0
		assert.ErrorContains(t, c.Validate(), "lifetime")
	})
}
