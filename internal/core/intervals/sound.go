package intervals

import (
	"context"

	"roundtimer/internal/core/cue"
)

//go:generate mockgen -source=sound.go -destination=mock_sound_test.go -package=intervals

// SoundOutput plays cues for one session. Calls must return quickly; the
// engine invokes them from its tick loop.
type SoundOutput interface {
	PlayCue(kind cue.Kind) error
	AnnounceRound(round int) error
	Release() error
}

// SoundProvider hands out a SoundOutput at the start of every session.
type SoundProvider interface {
	Acquire(ctx context.Context) (SoundOutput, error)
}
