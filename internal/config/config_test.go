package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the remaining fields fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 5, conf.Game.MoveRetries)
		assert.Equal(t, 24*time.Hour, conf.Game.RecordTTL)
		assert.True(t, conf.Game.BotEnabled)
		assert.False(t, conf.Postgres.Enabled())
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		path := writeConfig(t, `
redis:
  host: cache
  port: "6380"
postgres:
  dsn: postgres://user:pass@db:5432/connectfour?sslmode=disable
game:
  move-retries: 3
  record-ttl: 1h
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.True(t, conf.Postgres.Enabled())
		assert.Equal(t, 3, conf.Game.MoveRetries)
		assert.Equal(t, time.Hour, conf.Game.RecordTTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"7000\"\n")
		t.Setenv("HTTP_PORT", "7001")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7001", conf.HTTPPort)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
	})
}
