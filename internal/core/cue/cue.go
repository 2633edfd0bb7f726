// Package cue defines audible signals and decides when countdown ticks fire.
package cue

import "roundtimer/internal/core/model"

// Kind identifies a cue sent to the sound collaborator.
type Kind int

const (
	ShortTick Kind = iota
	PhaseChange
	RoundBoundary
	SessionEnd
)

// String returns the cue name used in logs.
func (kind Kind) String() string {
	switch kind {
	case ShortTick:
		return "short_tick"
	case PhaseChange:
		return "phase_change"
	case RoundBoundary:
		return "round_boundary"
	case SessionEnd:
		return "session_end"
	default:
		return "unknown"
	}
}

// Valid reports whether kind is one of the declared cues.
func (kind Kind) Valid() bool {
	return kind >= ShortTick && kind <= SessionEnd
}

// Event is a cue emitted by the state machine. Round is the round the
// session is in after the cue; for RoundBoundary it is the round being
// announced.
type Event struct {
	Kind  Kind
	Phase model.Phase
	Round int
}
