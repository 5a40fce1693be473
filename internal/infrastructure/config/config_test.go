package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CORS_ENABLED", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "./data", cfg.DBPath)
	assert.True(t, cfg.CORSEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":4000", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", "/tmp/finch-test")
	t.Setenv("CORS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/finch-test", cfg.DBPath)
	assert.False(t, cfg.CORSEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	t.Run("Valid configuration", func(t *testing.T) {
		cfg := &Config{Port: "4000", DBPath: t.TempDir(), LogLevel: "info"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Creates the database directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		cfg := &Config{Port: "4000", DBPath: dir}

		assert.NoError(t, cfg.Validate())
		assert.DirExists(t, dir)
	})

	t.Run("Non-numeric port", func(t *testing.T) {
		cfg := &Config{Port: "http", DBPath: t.TempDir()}
		err := cfg.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid port")
	})

	t.Run("Port out of range", func(t *testing.T) {
		cfg := &Config{Port: "70000", DBPath: t.TempDir()}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Empty database path", func(t *testing.T) {
		cfg := &Config{Port: "4000", DBPath: ""}
		err := cfg.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database path")
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FINCH_TEST_BOOL", "")
	assert.True(t, getEnvBool("FINCH_TEST_BOOL", true))

	t.Setenv("FINCH_TEST_BOOL", "0")
	assert.False(t, getEnvBool("FINCH_TEST_BOOL", true))

	t.Setenv("FINCH_TEST_BOOL", "garbage")
	assert.True(t, getEnvBool("FINCH_TEST_BOOL", true), "unparseable values fall back")
}
