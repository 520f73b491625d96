package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "power4.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("overrides the defaults", func(t *testing.T) {
		path := writeConfig(t, `
strategy: pooled-cached
depth: 7
workers: 8
heartbeat: 2s
render: true
log_level: debug
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Config{
			Strategy:  "pooled-cached",
			Depth:     7,
			Workers:   8,
			Heartbeat: 2 * time.Second,
			Render:    true,
			LogLevel:  "debug",
		}, cfg)
	})

	t.Run("keeps defaults for missing keys", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "depth: 3\n"))
		require.NoError(t, err)

		want := DefaultConfig()
		want.Depth = 3
		require.Equal(t, want, cfg)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depth: -2\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)

		_, err = Load(writeConfig(t, "workers: 0\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("fails on malformed YAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depth: [1, 2\n"))
		require.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, DEFAULT_DEPTH, cfg.Depth)
	require.Equal(t, DEFAULT_WORKERS, cfg.Workers)
}
