// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwgraphics/MotionComparator-sub002/internal/config"
)

var keys = []string{
	"WARP_START", "WARP_END", "WARP_MAX_FRAME_RATE", "WARP_WINDOW",
	"LOG_LEVEL", "LOG_FORMAT", "WARP_METRICS_FILE",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WARP_START", "1.5")
	t.Setenv("WARP_END", "4")
	t.Setenv("WARP_MAX_FRAME_RATE", "30")
	t.Setenv("WARP_WINDOW", "12")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WARP_METRICS_FILE", "/tmp/warp.prom")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Start:        1.5,
		End:          4,
		MaxFrameRate: 30,
		Window:       12,
		LogLevel:     "debug",
		LogFormat:    "json",
		MetricsFile:  "/tmp/warp.prom",
	}, cfg)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("WARP_END", "8")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WARP_END=3\nWARP_WINDOW=5\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.End, "environment wins over the file")
	assert.Equal(t, 5, cfg.Window)
}

func TestLoad_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	cases := map[string]map[string]string{
		"end before start": {"WARP_START": "5", "WARP_END": "2"},
		"zero frame rate":  {"WARP_MAX_FRAME_RATE": "0"},
		"window below -1":  {"WARP_WINDOW": "-2"},
		"unknown level":    {"LOG_LEVEL": "loud"},
		"unknown format":   {"LOG_FORMAT": "xml"},
		"not a number":     {"WARP_END": "ten"},
		"not an integer":   {"WARP_WINDOW": "1.5"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := config.Load(missing)
			assert.Error(t, err)
		})
	}
}
