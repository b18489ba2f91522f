package icedrift

import (
	"fmt"

	"github.com/nordvik/icedrift/internal/engine"
)

// shipSpan returns the ship's contact span with the configured padding.
func (g *Game) shipSpan() engine.Span {
	return engine.NewSpan(g.geom.ShipLeft, g.geom.ShipRight).Pad(g.cfg.Hitbox.ShipPadding)
}

// resolveContacts tests Idle obstacles outside their grace window against
// the ship hitbox and resolves at most one contact, first in iteration
// order; the rest wait for the next tick. Returns a RoundResult when the
// contact was a hazard, nil otherwise.
func (g *Game) resolveContacts() *engine.RoundResult {
	ship := g.shipSpan()

	for _, ob := range g.field.Obstacles() {
		if ob.Status != StatusIdle {
			continue
		}
		if g.field.InGrace(ob, g.clock) {
			continue
		}
		if !g.field.HitboxSpan(ob).Overlaps(ship) {
			continue
		}

		if ob.Hazard {
			return g.resolveHazard(ob)
		}
		g.resolveSafe(ob)
		return nil
	}

	return nil
}

// resolveSafe applies a safe contact: the obstacle's planned multiplier is
// collected, the hit counter advances, and the floe starts settling. This
// is the sole mechanism by which the collected multiplier increases. If the
// idle count dropped below the invariant, a replacement spawns immediately.
func (g *Game) resolveSafe(ob Obstacle) {
	g.collected = ob.Multiplier
	g.safeHits++
	g.field.MarkResolving(ob.ID, g.clock)
	g.message = fmt.Sprintf("safe ice! multiplier %.2fx", g.collected)

	if idle := g.field.IdleCount(); idle < g.cfg.Field.MaxIdle {
		g.spawnUpcoming(idle + 1)
	}
}

// resolveHazard ends the round on an iceberg contact. One uniform draw
// decides survival: below the lifeboat probability the player is rescued
// and, unless already cashed out, paid stake times the collected
// multiplier; otherwise the round crashes and the stake is forfeit.
// Cash-outs credited earlier in the round are never reversed.
func (g *Game) resolveHazard(ob Obstacle) *engine.RoundResult {
	g.field.MarkResolving(ob.ID, g.clock)

	r := g.rng.Float64()
	if r < g.cfg.Odds.LifeboatProbability {
		g.phase = engine.PhaseLifeboat
		if g.joined && !g.hasCashedOut {
			payout := engine.Round2(g.stake * g.collected)
			g.ledger.Credit(payout)
			g.roundPayout += payout
			g.hasCashedOut = true // Lifeboat and cash-out share the one-shot guard
			g.message = fmt.Sprintf("lifeboat! rescued with %.2f", payout)
		} else {
			g.message = "lifeboat! the crew is safe"
		}
	} else {
		g.phase = engine.PhaseCrashed
		if g.joined && !g.hasCashedOut {
			g.message = fmt.Sprintf("iceberg! %.2f lost to the deep", g.stake)
		} else {
			g.message = "iceberg! the ship is down"
		}
	}

	g.intermission = g.cfg.Timing.OutcomeHold

	return &engine.RoundResult{
		Outcome:    g.phase,
		Stake:      g.stake,
		Multiplier: g.collected,
		Payout:     g.roundPayout,
		SafeHits:   g.safeHits,
		CashedOut:  g.hasCashedOut,
	}
}
