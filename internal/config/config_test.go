package config

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears the variables for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "DB_NAME", "LOG_LEVEL", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "courtchart.db", cfg.DBName)
	assert.Equal(t, log.InfoLevel, cfg.Level())
	assert.Empty(t, cfg.Turso.PrimaryURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "club.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TURSO_PRIMARY_URL", "libsql://club.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DBName:   "club.db",
		Port:     "9090",
		LogLevel: "debug",
		Turso:    TursoConfig{PrimaryURL: "libsql://club.turso.io", AuthToken: "secret"},
	}, cfg)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadRequiresTursoToken(t *testing.T) {
	t.Setenv("TURSO_PRIMARY_URL", "libsql://club.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}
