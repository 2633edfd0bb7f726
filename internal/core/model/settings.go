package model

import (
	"fmt"
	"time"
)

// Settings defines the user preferences that survive restarts.
type Settings struct {
	Rounds         int
	WorkSeconds    int
	RestSeconds    int
	Muted          bool
	AnnounceRounds bool
}

// DefaultSettings returns the settings used on first launch or when the
// stored copy cannot be read.
func DefaultSettings() Settings {
	return Settings{
		Rounds:         3,
		WorkSeconds:    30,
		RestSeconds:    30,
		Muted:          false,
		AnnounceRounds: true,
	}
}

// Validate rejects negative values.
func (settings Settings) Validate() error {
	if settings.Rounds < 0 {
		return fmt.Errorf("settings: rounds must not be negative, got %d", settings.Rounds)
	}
	if settings.WorkSeconds < 0 {
		return fmt.Errorf("settings: work seconds must not be negative, got %d", settings.WorkSeconds)
	}
	if settings.RestSeconds < 0 {
		return fmt.Errorf("settings: rest seconds must not be negative, got %d", settings.RestSeconds)
	}
	return nil
}

// IntervalConfig converts settings to an IntervalConfig.
func (settings Settings) IntervalConfig(prepare time.Duration) IntervalConfig {
	return IntervalConfig{
		Rounds:  settings.Rounds,
		Prepare: prepare,
		Work:    time.Duration(settings.WorkSeconds) * time.Second,
		Rest:    time.Duration(settings.RestSeconds) * time.Second,
	}
}
