package engine

// Phase identifies where the round state machine currently is. Exactly one
// round is live at a time; terminal phases automatically re-enter Betting
// after a short hold.
//
// Cashing out does not get its own phase: the simulation keeps running after
// a cash-out, so "running" remains the single source of truth for whether the
// tick advances state, and the one-shot cash-out guard is tracked separately
// on the round.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for renderer geometry, pre-first-round
	PhaseBetting               // Betting window open, stake configurable
	PhaseRunning               // Obstacle simulation active
	PhaseCrashed               // Hazard contact ended the round, no survival
	PhaseLifeboat              // Hazard contact survived via the lifeboat draw
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBetting:
		return "betting"
	case PhaseRunning:
		return "running"
	case PhaseCrashed:
		return "crashed"
	case PhaseLifeboat:
		return "lifeboat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a round.
func (p Phase) Terminal() bool {
	return p == PhaseCrashed || p == PhaseLifeboat
}
