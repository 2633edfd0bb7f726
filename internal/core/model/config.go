package model

import (
	"errors"
	"fmt"
	"time"
)

// DefaultPrepare is the fixed countdown played before the first round.
const DefaultPrepare = 10 * time.Second

// ErrNegativeDuration is returned when a phase duration is below zero.
var ErrNegativeDuration = errors.New("negative duration")

// IntervalConfig contains runtime settings for the interval state machine.
type IntervalConfig struct {
	Rounds  int
	Prepare time.Duration
	Work    time.Duration
	Rest    time.Duration
}

// Validate checks that all values are non-negative.
func (config IntervalConfig) Validate() error {
	if config.Rounds < 0 {
		return fmt.Errorf("rounds %d: must not be negative", config.Rounds)
	}
	if config.Prepare < 0 {
		return fmt.Errorf("prepare %s: %w", config.Prepare, ErrNegativeDuration)
	}
	if config.Work < 0 {
		return fmt.Errorf("work %s: %w", config.Work, ErrNegativeDuration)
	}
	if config.Rest < 0 {
		return fmt.Errorf("rest %s: %w", config.Rest, ErrNegativeDuration)
	}
	return nil
}

// Duration returns the configured length of a phase.
func (config IntervalConfig) Duration(phase Phase) time.Duration {
	switch phase {
	case PhasePrepare:
		return config.Prepare
	case PhaseWork:
		return config.Work
	case PhaseRest:
		return config.Rest
	default:
		return 0
	}
}
