package icedrift

import "github.com/nordvik/icedrift/internal/engine"

// ObstacleView is the renderer-visible slice of an obstacle. The hazard
// flag is deliberately absent: safe floes and icebergs must stay
// indistinguishable until contact resolves.
type ObstacleView struct {
	ID         int64
	WorldX     float64
	ScreenX    float64
	Width      float64
	Multiplier float64
	Resolving  bool
}

// Snapshot captures the complete observable game state for rendering,
// determinism testing, and replay.
type Snapshot struct {
	Phase      engine.Phase
	Clock      float64
	Scroll     float64
	Speed      float64
	Multiplier float64
	SafeHits   int
	Balance    float64
	PendingBet float64
	Stake      float64
	Joined     bool
	CashedOut  bool
	Countdown  float64
	Obstacles  []ObstacleView
}

// Snapshot returns the current read-only game snapshot.
func (g *Game) Snapshot() Snapshot {
	obs := g.field.Obstacles()
	views := make([]ObstacleView, 0, len(obs))
	for _, ob := range obs {
		views = append(views, ObstacleView{
			ID:         ob.ID,
			WorldX:     ob.WorldX,
			ScreenX:    g.field.ScreenX(ob),
			Width:      ob.Width,
			Multiplier: ob.Multiplier,
			Resolving:  ob.Status == StatusResolving,
		})
	}

	st := g.State()
	return Snapshot{
		Phase:      st.Phase,
		Clock:      g.clock,
		Scroll:     g.field.Scroll(),
		Speed:      g.field.Speed(),
		Multiplier: st.Multiplier,
		SafeHits:   st.SafeHits,
		Balance:    st.Balance,
		PendingBet: st.PendingBet,
		Stake:      g.stake,
		Joined:     st.Joined,
		CashedOut:  st.CashedOut,
		Countdown:  st.Countdown,
		Obstacles:  views,
	}
}
