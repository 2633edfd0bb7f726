package animation

import (
	"time"

	"roundtimer/internal/core/cue"
)

// DefaultConfig flashes once per countdown tick and longer on transitions.
func DefaultConfig() Config {
	return Config{
		FlashOn:  120 * time.Millisecond,
		FlashOff: 80 * time.Millisecond,
		Pulses: map[cue.Kind]int{
			cue.ShortTick:     1,
			cue.PhaseChange:   2,
			cue.RoundBoundary: 2,
			cue.SessionEnd:    4,
		},
	}
}
