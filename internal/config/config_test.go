package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Applies defaults when no file exists", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: every default is in place
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 2, conf.Game.MinPlayers)
		assert.Equal(t, 80*time.Second, conf.Game.RoundDuration)
		assert.Equal(t, 80, conf.Game.RoundSeconds())
		assert.Equal(t, 1, conf.Game.RecentWords)
		assert.Equal(t, WordsSourceBuiltin, conf.Words.Source)
		assert.False(t, conf.Redis.Enabled)
	})

	t.Run("Reads values from the yaml file", func(t *testing.T) {
		// Given: a config file overriding some keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := []byte("log-level: debug\ngame:\n  min-players: 3\n  round-duration: 30s\nredis:\n  host: cache\n")
		require.NoError(t, os.WriteFile(path, content, 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: overrides win and the rest keeps defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 3, conf.Game.MinPlayers)
		assert.Equal(t, 30, conf.Game.RoundSeconds())
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 100, conf.Game.CorrectGuessAward)
	})

	t.Run("Rejects a single player game", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  min-players: 1\n"), 0o600))

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Rejects redis words without redis", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("words:\n  source: redis\n"), 0o600))

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
