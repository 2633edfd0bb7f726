package model

// Phase is one step of the countdown sequence.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePrepare Phase = "prepare"
	PhaseWork    Phase = "work"
	PhaseRest    Phase = "rest"
)

// Title returns the label shown to the user.
func (phase Phase) Title() string {
	switch phase {
	case PhasePrepare:
		return "Prepare"
	case PhaseWork:
		return "Work"
	case PhaseRest:
		return "Rest"
	default:
		return "Ready"
	}
}
