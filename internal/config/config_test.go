package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ROUNDTIMER_UI", "ROUNDTIMER_STORE", "ROUNDTIMER_CONFIG_DIR",
		"ROUNDTIMER_TICK_INTERVAL", "ROUNDTIMER_PREPARE", "ROUNDTIMER_LOG_LEVEL",
		"ROUNDTIMER_THEME",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, UIDesktop, cfg.UI)
	assert.Equal(t, StoreYAML, cfg.Store)
	assert.Empty(t, cfg.ConfigDir)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 10*time.Second, cfg.Prepare)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "default", cfg.Theme)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ROUNDTIMER_UI", "TUI")
	t.Setenv("ROUNDTIMER_STORE", "sqlite")
	t.Setenv("ROUNDTIMER_CONFIG_DIR", "/tmp/rt")
	t.Setenv("ROUNDTIMER_TICK_INTERVAL", "50ms")
	t.Setenv("ROUNDTIMER_PREPARE", "5")
	t.Setenv("ROUNDTIMER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, UITerminal, cfg.UI)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/rt", cfg.ConfigDir)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 5*time.Second, cfg.Prepare)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"ROUNDTIMER_UI":            "web",
		"ROUNDTIMER_STORE":         "postgres",
		"ROUNDTIMER_TICK_INTERVAL": "-1s",
		"ROUNDTIMER_LOG_LEVEL":     "loud",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMisalignedTickInterval(t *testing.T) {
	for _, value := range []string{"300ms", "250ms", "30ms", "1s"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("ROUNDTIMER_TICK_INTERVAL", value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadAcceptsAlignedTickInterval(t *testing.T) {
	for _, value := range []string{"100ms", "50ms", "20ms", "10ms"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("ROUNDTIMER_TICK_INTERVAL", value)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, value, cfg.TickInterval.String())
		})
	}
}
