package icedrift

import (
	"math"
	"math/rand"

	"github.com/nordvik/icedrift/internal/config"
	"github.com/nordvik/icedrift/internal/engine"
)

// SequencerState tracks the multiplier planning position within a round.
// It is owned by the game and reset to (1, 1) at the start of every round;
// the field reads the planned value when spawning.
type SequencerState struct {
	NextIndex   int     // 1-based index of the next draw within the round
	LastPlanned float64 // Most recent planned multiplier
}

// NewSequencerState returns the state every round starts from.
func NewSequencerState() SequencerState {
	return SequencerState{NextIndex: 1, LastPlanned: 1}
}

// PlanNext produces the next planned multiplier for the round. Pure and
// deterministic up to the injected rng.
//
// By 1-based draw index i:
//   - i = 1: uniform in [FirstMin, FirstMax].
//   - 2 <= i <= EarlyCount: uniform increment in [EarlyIncrementMin,
//     EarlyIncrementMax], capped at EarlyCap. If 2-decimal rounding would
//     collapse the step, a minimum increment is forced so the sequence
//     keeps climbing until it pins at the cap.
//   - i > EarlyCount: uniform increment in [LateIncrementMin,
//     LateIncrementMax], uncapped. This is the heavy tail for long survival.
//
// Values are rounded to 2 decimal places at generation time so stored and
// displayed multipliers are identical, which keeps payout arithmetic exact.
func PlanNext(st SequencerState, rules config.MultiplierConfig, rng *rand.Rand) (float64, SequencerState) {
	var next float64

	switch {
	case st.NextIndex <= 1:
		next = engine.Round2(rules.FirstMin + rng.Float64()*(rules.FirstMax-rules.FirstMin))

	case st.NextIndex <= rules.EarlyCount:
		inc := rules.EarlyIncrementMin + rng.Float64()*(rules.EarlyIncrementMax-rules.EarlyIncrementMin)
		next = engine.Round2(math.Min(rules.EarlyCap, st.LastPlanned+inc))
		if next <= st.LastPlanned {
			next = engine.Round2(math.Min(rules.EarlyCap, st.LastPlanned+rules.EarlyIncrementMin))
		}

	default:
		inc := rules.LateIncrementMin + rng.Float64()*(rules.LateIncrementMax-rules.LateIncrementMin)
		next = engine.Round2(st.LastPlanned + inc)
	}

	return next, SequencerState{NextIndex: st.NextIndex + 1, LastPlanned: next}
}
