package storage

import (
	"fmt"
	"log/slog"
	"sync"

	"roundtimer/internal/core/model"
)

// Controller owns the current settings on top of a Store.
type Controller struct {
	mu       sync.Mutex
	store    Store
	logger   *slog.Logger
	current  model.Settings
	apply    []func(model.Settings)
	external []func(model.Settings)
}

// NewController loads the stored settings. A failed load is logged and
// the controller starts from defaults.
func NewController(store Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	settings, err := store.Load()
	if err != nil {
		logger.Warn("load settings, using defaults", "error", err)
		settings = model.DefaultSettings()
	}
	return &Controller{
		store:   store,
		logger:  logger,
		current: settings,
	}
}

// Current returns the active settings.
func (c *Controller) Current() model.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// OnApply registers fn to run on every settings change.
func (c *Controller) OnApply(fn func(model.Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply = append(c.apply, fn)
}

// OnExternalChange registers fn to run when the settings were changed
// outside the application.
func (c *Controller) OnExternalChange(fn func(model.Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.external = append(c.external, fn)
}

// Save validates, persists and applies settings.
func (c *Controller) Save(settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := c.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	c.set(settings, false)
	return nil
}

// Reload applies settings read back from the store.
func (c *Controller) Reload(settings model.Settings) {
	if settings.Validate() != nil {
		c.logger.Warn("ignore invalid settings", "settings", settings)
		return
	}
	c.set(settings, true)
}

func (c *Controller) set(settings model.Settings, external bool) {
	c.mu.Lock()
	if settings == c.current && external {
		c.mu.Unlock()
		return
	}
	c.current = settings
	handlers := append([]func(model.Settings){}, c.apply...)
	if external {
		handlers = append(handlers, c.external...)
	}
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(settings)
	}
}
