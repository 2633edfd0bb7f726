package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"roundtimer/internal/config"
	"roundtimer/internal/core/intervals"
	"roundtimer/internal/core/model"
	"roundtimer/internal/platform"
	"roundtimer/internal/sound"
	"roundtimer/internal/storage"

	"github.com/joho/godotenv"
)

const logFileName = "roundtimer.log"

// environment holds the collaborators shared by both front ends.
type environment struct {
	cfg      config.Config
	logger   *slog.Logger
	engine   *intervals.Engine
	settings *storage.Controller
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		slog.Error("roundtimer stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	guard, err := platform.AcquireSingleInstance(config.AppName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	appDir, err := platform.NewService(cfg.ConfigDir).AppDir(config.AppName)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, appDir)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, yamlStore, err := openStore(ctx, cfg, appDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close settings store", "error", err)
		}
	}()

	settings := storage.NewController(store, logger.With("component", "settings"))
	current := settings.Current()

	player := sound.NewPlayer(platform.NewAudioBackend(), sound.Options{
		Logger:         logger.With("component", "sound"),
		Muted:          current.Muted,
		AnnounceRounds: current.AnnounceRounds,
	})
	settings.OnApply(func(updated model.Settings) {
		player.SetMuted(updated.Muted)
		player.SetAnnounceRounds(updated.AnnounceRounds)
	})

	engine := intervals.New(player, intervals.Config{
		TickInterval: cfg.TickInterval,
		Logger:       logger.With("component", "engine"),
	})
	defer engine.Close()

	if yamlStore != nil {
		go func() {
			if err := storage.Watch(ctx, yamlStore, logger, settings.Reload); err != nil {
				logger.Warn("settings watcher stopped", "error", err)
			}
		}()
	}

	env := &environment{
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
		settings: settings,
	}
	logger.Info("roundtimer starting", "ui", cfg.UI, "store", cfg.Store, "dir", appDir)

	if cfg.UI == config.UITerminal {
		return runTerminal(ctx, env)
	}
	return runDesktop(ctx, env)
}

// start begins a session with the current settings.
func (env *environment) start(ctx context.Context) error {
	intervalConfig := env.settings.Current().IntervalConfig(env.cfg.Prepare)
	if err := env.engine.Start(ctx, intervalConfig); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// newLogger writes to stderr, or to a file in appDir when the terminal UI
// owns the screen.
func newLogger(cfg config.Config, appDir string) (*slog.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.UI == config.UITerminal {
		file, err := os.OpenFile(filepath.Join(appDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closeLog = func() { _ = file.Close() }
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(handler), closeLog, nil
}

// openStore returns the configured settings store. The YAML store is also
// returned on its own so it can be watched.
func openStore(ctx context.Context, cfg config.Config, appDir string) (storage.Store, *storage.YAMLStore, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		store, err := storage.OpenSQLite(ctx, filepath.Join(appDir, storage.DBFileName))
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.StoreYAML:
		store := storage.NewYAMLStore(appDir)
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown settings store %q", cfg.Store)
	}
}
