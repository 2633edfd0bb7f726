package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"roundtimer/internal/core/model"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the YAML settings whenever the file changes on disk and
// passes the result to onChange. It blocks until ctx is done.
func Watch(ctx context.Context, store *YAMLStore, logger *slog.Logger, onChange func(model.Settings)) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(store.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	// The directory is watched because Save replaces the file by rename.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(store.Path())
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			settings, err := store.Load()
			if err != nil {
				logger.Warn("reload settings", "path", target, "error", err)
				continue
			}
			onChange(settings)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watcher", "error", err)
		}
	}
}
