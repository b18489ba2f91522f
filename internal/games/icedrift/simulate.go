package icedrift

import (
	"time"

	"github.com/nordvik/icedrift/internal/engine"
)

// SimReport aggregates the outcome of a headless Monte Carlo run. The
// realized return-to-player emerges from the fixed hazard probability, the
// lifeboat survival chance, and the multiplier growth rules; this simulator
// makes that curve measurable without deriving it analytically.
type SimReport struct {
	Rounds        int
	TotalStaked   float64
	TotalReturned float64
	RTP           float64 // TotalReturned / TotalStaked
	Crashes       int
	Lifeboats     int
	CashOuts      int
	MaxMultiplier float64
	AvgSafeHits   float64
}

// SimulateRTP plays the full engine headlessly for the given number of
// rounds with a flat bet. The strategy cashes out after cashOutAfter safe
// hits; zero means never cash out and ride every round into the ice.
func SimulateRTP(rounds int, bet float64, cashOutAfter int, seed int64) SimReport {
	var report SimReport
	if rounds <= 0 || bet <= 0 {
		return report
	}

	g := NewPractice()
	rc := engine.DefaultRuntimeConfig()
	rc.Seed = seed
	rc.StartingBalance = bet*float64(rounds) + bet
	g.Reset(rc)
	g.Calibrate(engine.Geometry{ShipLeft: ShipCol, ShipRight: ShipCol + ShipWidth, LaneWidth: 80})

	// Step at the clamp so simulated time advances as fast as allowed.
	dt := time.Duration(g.cfg.Timing.MaxTickDelta * float64(time.Second))

	totalSafeHits := 0
	maxTicks := rounds * 10000 // Safety bound; rounds end w.p. 1 long before this

	for tick := 0; report.Rounds < rounds && tick < maxTicks; tick++ {
		st := g.State()
		switch st.Phase {
		case engine.PhaseBetting:
			if !st.Joined {
				g.PlaceBet(bet) //nolint:errcheck // Balance is provisioned up front
			}
			g.ForceStart() //nolint:errcheck // Phase was just checked
		case engine.PhaseRunning:
			if cashOutAfter > 0 && st.Joined && !st.CashedOut && st.SafeHits >= cashOutAfter {
				if _, err := g.CashOut(); err == nil {
					report.CashOuts++
				}
			}
		}

		result := g.Step(dt)
		if result.Round == nil {
			continue
		}

		report.Rounds++
		report.TotalStaked += result.Round.Stake
		report.TotalReturned += result.Round.Payout
		totalSafeHits += result.Round.SafeHits
		if result.Round.Multiplier > report.MaxMultiplier {
			report.MaxMultiplier = result.Round.Multiplier
		}
		switch result.Round.Outcome {
		case engine.PhaseLifeboat:
			report.Lifeboats++
		default:
			report.Crashes++
		}
	}

	if report.TotalStaked > 0 {
		report.RTP = report.TotalReturned / report.TotalStaked
	}
	if report.Rounds > 0 {
		report.AvgSafeHits = float64(totalSafeHits) / float64(report.Rounds)
	}
	return report
}
