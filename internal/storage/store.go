// Package storage persists timer settings.
package storage

import "roundtimer/internal/core/model"

// Store loads and saves settings. Load returns defaults alongside any
// error so callers can keep running on a broken store.
type Store interface {
	Load() (model.Settings, error)
	Save(settings model.Settings) error
	Close() error
}
