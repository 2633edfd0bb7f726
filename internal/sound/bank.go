package sound

import (
	"errors"
	"fmt"
	"time"

	"roundtimer/internal/core/cue"
)

// ErrUnknownCue is returned for a cue kind without a whistle. It signals a
// programming error in the caller.
var ErrUnknownCue = errors.New("unknown cue")

var (
	shortWhistle = Whistle{
		Name:     "short_whistle",
		Duration: 150 * time.Millisecond,
		Pitch:    2900,
		Warble:   35,
		Volume:   0.6,
	}
	singleWhistle = Whistle{
		Name:     "single_whistle",
		Duration: 550 * time.Millisecond,
		Pitch:    2700,
		Warble:   30,
		Volume:   0.8,
	}
	longWhistle = Whistle{
		Name:     "long_whistle",
		Duration: 1600 * time.Millisecond,
		Pitch:    2600,
		Warble:   28,
		Volume:   0.9,
	}
)

// WhistleFor returns the whistle played for a cue.
func WhistleFor(kind cue.Kind) (Whistle, error) {
	if !kind.Valid() {
		return Whistle{}, fmt.Errorf("%w: %d", ErrUnknownCue, int(kind))
	}
	switch kind {
	case cue.ShortTick:
		return shortWhistle, nil
	case cue.SessionEnd:
		return longWhistle, nil
	default:
		return singleWhistle, nil
	}
}

func whistles() []Whistle {
	return []Whistle{shortWhistle, singleWhistle, longWhistle}
}

// Announcement returns the text spoken when a round starts.
func Announcement(round int) string {
	return fmt.Sprintf("Round %d", round)
}
