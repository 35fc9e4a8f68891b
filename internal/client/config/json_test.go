package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	t.Run("no file requested leaves config alone", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-a", "x"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("overlays only present keys", func(t *testing.T) {
		path := writeTempJSON(t, `{"server_base_url":"https://json.example","request_timeout":"20s"}`)
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "https://json.example", cfg.ServerBaseURL)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "fieldkeeper.db", cfg.DatabasePath)
	})

	t.Run("integer nanoseconds", func(t *testing.T) {
		path := writeTempJSON(t, `{"request_timeout":3000000000}`)
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", path}))
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeTempJSON(t, `{ this is not valid json`)
		require.Error(t, parseJSON(defaults(), []string{"-c", path}))
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeTempJSON(t, `{"request_timeout":"soon"}`)
		require.Error(t, parseJSON(defaults(), []string{"-c", path}))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJSON(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, `{"server_base_url":"https://json.example","log_level":"warn"}`)

	cfg, err := LoadConfig([]string{"-c", path, "-a", "https://flag.example"})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example", cfg.ServerBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}
