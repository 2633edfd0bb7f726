package cue

import "time"

// Policy describes when short ticks fire inside a phase.
type Policy struct {
	// MinPhase disables short ticks for phases not longer than this.
	MinPhase  time.Duration
	Marks     []time.Duration
	Tolerance time.Duration
}

// DefaultPolicy fires at 3, 2 and 1 seconds remaining with a ±50ms window,
// for phases longer than 5 seconds.
func DefaultPolicy() Policy {
	return Policy{
		MinPhase:  5 * time.Second,
		Marks:     []time.Duration{3 * time.Second, 2 * time.Second, time.Second},
		Tolerance: 50 * time.Millisecond,
	}
}

// Tracker remembers which marks already fired for one phase.
type Tracker struct {
	policy  Policy
	enabled bool
	fired   []bool
}

// NewTracker starts tracking a phase of the given duration.
func NewTracker(policy Policy, phase time.Duration) *Tracker {
	return &Tracker{
		policy:  policy,
		enabled: phase > policy.MinPhase,
		fired:   make([]bool, len(policy.Marks)),
	}
}

// Check reports whether a short tick fires at the given remaining time.
// Each mark fires at most once.
func (tracker *Tracker) Check(remaining time.Duration) bool {
	if tracker == nil || !tracker.enabled {
		return false
	}
	for index, mark := range tracker.policy.Marks {
		if tracker.fired[index] {
			continue
		}
		if remaining >= mark-tracker.policy.Tolerance && remaining <= mark+tracker.policy.Tolerance {
			tracker.fired[index] = true
			return true
		}
	}
	return false
}
