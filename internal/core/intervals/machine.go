// Package intervals runs the prepare, work and rest countdown.
package intervals

import (
	"errors"
	"fmt"
	"time"

	"roundtimer/internal/core/cue"
	"roundtimer/internal/core/model"
)

// ErrNoRounds is returned when a session is started with zero rounds.
var ErrNoRounds = errors.New("no rounds configured")

// Machine sequences the phases of a session. It has no clock of its own:
// callers advance it by the elapsed time of each tick.
type Machine struct {
	config  model.IntervalConfig
	policy  cue.Policy
	state   RunState
	tracker *cue.Tracker
}

// NewMachine creates an idle machine.
func NewMachine(policy cue.Policy) *Machine {
	return &Machine{policy: policy, state: idleState()}
}

// Start begins a session in the prepare phase. A running session is
// replaced.
func (machine *Machine) Start(config model.IntervalConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if config.Rounds == 0 {
		return fmt.Errorf("start session: %w", ErrNoRounds)
	}
	machine.config = config
	machine.state = RunState{
		Round:       1,
		TotalRounds: config.Rounds,
		Running:     true,
	}
	machine.enter(model.PhasePrepare)
	return nil
}

// Stop ends the session. It reports whether a session was running.
func (machine *Machine) Stop() bool {
	wasRunning := machine.state.Running
	machine.state = idleState()
	machine.tracker = nil
	return wasRunning
}

// State returns a copy of the current state.
func (machine *Machine) State() RunState {
	return machine.state
}

// Advance moves the countdown forward and returns the cues that fired.
// At most one phase completes per call.
func (machine *Machine) Advance(delta time.Duration) []cue.Event {
	if !machine.state.Running {
		return nil
	}

	machine.state.Remaining -= delta
	if machine.state.Remaining > 0 {
		if machine.tracker.Check(machine.state.Remaining) {
			return []cue.Event{machine.event(cue.ShortTick)}
		}
		return nil
	}
	machine.state.Remaining = 0
	return machine.completePhase()
}

func (machine *Machine) completePhase() []cue.Event {
	switch machine.state.Phase {
	case model.PhasePrepare:
		machine.enter(model.PhaseWork)
		return []cue.Event{machine.event(cue.PhaseChange)}
	case model.PhaseWork:
		machine.enter(model.PhaseRest)
		return []cue.Event{machine.event(cue.PhaseChange)}
	case model.PhaseRest:
		if machine.state.Round >= machine.config.Rounds {
			ended := machine.event(cue.SessionEnd)
			machine.Stop()
			return []cue.Event{ended}
		}
		machine.state.Round++
		machine.enter(model.PhaseWork)
		return []cue.Event{machine.event(cue.RoundBoundary)}
	default:
		return nil
	}
}

func (machine *Machine) enter(phase model.Phase) {
	duration := machine.config.Duration(phase)
	machine.state.Phase = phase
	machine.state.Remaining = duration
	machine.tracker = cue.NewTracker(machine.policy, duration)
}

func (machine *Machine) event(kind cue.Kind) cue.Event {
	return cue.Event{
		Kind:  kind,
		Phase: machine.state.Phase,
		Round: machine.state.Round,
	}
}
