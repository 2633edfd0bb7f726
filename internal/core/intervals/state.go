package intervals

import (
	"math"
	"time"

	"roundtimer/internal/core/model"
)

// RunState is the observable state of a session.
type RunState struct {
	Phase       model.Phase
	Round       int
	TotalRounds int
	Remaining   time.Duration
	Running     bool
}

// RemainingSeconds returns the remaining time rounded to whole seconds.
func (state RunState) RemainingSeconds() int {
	if state.Remaining <= 0 {
		return 0
	}
	return int(math.Round(state.Remaining.Seconds()))
}

// Idle reports whether no session is active.
func (state RunState) Idle() bool {
	return state.Phase == model.PhaseIdle || !state.Running
}

func idleState() RunState {
	return RunState{Phase: model.PhaseIdle}
}
