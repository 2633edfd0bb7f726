// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"roundtimer/internal/core/cue"
	"roundtimer/internal/core/model"
)

// AppName names the config directory, the single-instance lock and logs.
const AppName = "RoundTimer"

// UI modes.
const (
	UIDesktop  = "gui"
	UITerminal = "tui"
)

// Settings store backends.
const (
	StoreYAML   = "yaml"
	StoreSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	UI        string
	Store     string
	ConfigDir string // Empty means the OS config directory.

	TickInterval time.Duration
	Prepare      time.Duration

	LogLevel string
	Theme    string // Terminal theme name.
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	cfg := Config{
		UI:           strings.ToLower(envStr("ROUNDTIMER_UI", UIDesktop)),
		Store:        strings.ToLower(envStr("ROUNDTIMER_STORE", StoreYAML)),
		ConfigDir:    envStr("ROUNDTIMER_CONFIG_DIR", ""),
		TickInterval: envDuration("ROUNDTIMER_TICK_INTERVAL", 100*time.Millisecond),
		Prepare:      envDuration("ROUNDTIMER_PREPARE", model.DefaultPrepare),
		LogLevel:     strings.ToLower(envStr("ROUNDTIMER_LOG_LEVEL", "info")),
		Theme:        strings.ToLower(envStr("ROUNDTIMER_THEME", "default")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option values.
func (c Config) Validate() error {
	if c.UI != UIDesktop && c.UI != UITerminal {
		return fmt.Errorf("config: ROUNDTIMER_UI must be %q or %q, got %q", UIDesktop, UITerminal, c.UI)
	}
	if c.Store != StoreYAML && c.Store != StoreSQLite {
		return fmt.Errorf("config: ROUNDTIMER_STORE must be %q or %q, got %q", StoreYAML, StoreSQLite, c.Store)
	}
	if err := validateTickInterval(c.TickInterval); err != nil {
		return err
	}
	if c.Prepare < 0 {
		return fmt.Errorf("config: ROUNDTIMER_PREPARE must not be negative")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("config: unknown ROUNDTIMER_LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

// validateTickInterval keeps every short-tick mark reachable: the interval
// must divide a second and fit inside the tolerance window.
func validateTickInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("config: ROUNDTIMER_TICK_INTERVAL must be positive")
	}
	if time.Second%interval != 0 {
		return fmt.Errorf("config: ROUNDTIMER_TICK_INTERVAL %s must divide 1s", interval)
	}
	if window := 2 * cue.DefaultPolicy().Tolerance; interval > window {
		return fmt.Errorf("config: ROUNDTIMER_TICK_INTERVAL %s must not exceed %s", interval, window)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(value string) (slog.Level, bool) {
	switch value {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Bare integers are seconds.
	if n := envInt(key, -1); n >= 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}
