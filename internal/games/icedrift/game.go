// Package icedrift implements a crash-style wagering game: the player sails
// through a stream of drifting ice floes. Safe floes raise a running
// multiplier; hidden icebergs end the round, with a small chance of a
// lifeboat payout. The engine guarantees frame-accurate contact timing and
// exactly-once payout semantics under a continuously advancing clock.
package icedrift

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nordvik/icedrift/internal/config"
	"github.com/nordvik/icedrift/internal/engine"
	"github.com/nordvik/icedrift/internal/registry"
)

// Package-level config plumbing, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the icedrift round engine. All round state lives on this
// one struct and is mutated synchronously inside Step, so the tick handler
// always observes the latest committed state.
type Game struct {
	practice bool
	cfg      config.GameConfig
	runtime  engine.RuntimeConfig
	rng      *rand.Rand

	geom  engine.Geometry
	ready bool // Geometry readiness gate, one-time per session

	phase engine.Phase
	clock float64 // Simulated seconds since Reset

	// Round entity, reset when a new betting window opens.
	collected    float64 // Multiplier carried by the most recent safe hit
	safeHits     int
	stake        float64
	joined       bool
	hasCashedOut bool    // One-shot payout guard (cash-out xor lifeboat)
	roundPayout  float64 // Total credited this round, for history records

	countdown    float64 // Betting window remaining
	intermission float64 // Terminal outcome hold remaining

	// spawnedThisTick makes the immediate-replacement and cadence spawn
	// paths mutually exclusive within one tick.
	spawnedThisTick bool

	seq    SequencerState
	field  *Field
	ledger *Ledger

	message string
}

// New creates a new icedrift game instance.
func New() *Game {
	return &Game{}
}

// NewPractice creates a practice-mode instance: same engine, same odds, but
// the platform persists nothing and the wallet is a throwaway.
func NewPractice() *Game {
	return &Game{practice: true}
}

var _ registry.Game = (*Game)(nil)

func init() {
	registry.Register("icedrift", func() registry.Game {
		return New()
	})
	registry.Register("icedrift_demo", func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.practice {
		return "icedrift_demo"
	}
	return "icedrift"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.practice {
		return "Icedrift (Practice)"
	}
	return "Icedrift"
}

// Practice reports whether this instance uses a throwaway wallet.
func (g *Game) Practice() bool {
	return g.practice
}

// Reset initializes or restarts the session. The game stays in the Idle
// phase until the renderer supplies geometry via Calibrate.
func (g *Game) Reset(rc engine.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	g.cfg = cfg
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))

	balance := rc.StartingBalance
	if balance <= 0 {
		balance = cfg.Betting.StartingBalance
	}
	g.ledger = NewLedger(balance)
	g.field = NewField(cfg)

	g.phase = engine.PhaseIdle
	g.clock = 0
	g.countdown = 0
	g.intermission = 0
	g.ready = false
	g.resetRound()
	g.message = "waiting for the lane to be measured"
}

// Config returns the loaded game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Calibrate supplies the measured ship and lane geometry from the renderer.
// The first valid call releases the readiness gate and opens betting; later
// calls (window resizes) take effect when the next round calibrates speed.
// If readiness never arrives the machine stays Idle indefinitely.
func (g *Game) Calibrate(geom engine.Geometry) {
	if !geom.Valid() {
		return
	}
	g.geom = geom
	if !g.ready {
		g.ready = true
		if g.phase == engine.PhaseIdle {
			g.openBetting()
		}
	}
}

// Ready reports whether geometry has been received.
func (g *Game) Ready() bool {
	return g.ready
}

// Step advances the simulation by one tick. The elapsed delta is clamped to
// the configured maximum so a slow frame cannot tunnel obstacles through
// the ship.
func (g *Game) Step(dt time.Duration) engine.StepResult {
	delta := engine.ClampF(dt.Seconds(), 0, g.cfg.Timing.MaxTickDelta)
	g.clock += delta

	var round *engine.RoundResult

	switch g.phase {
	case engine.PhaseIdle:
		// Waiting on the readiness gate; nothing advances.

	case engine.PhaseBetting:
		g.field.CullSettled(g.clock)
		g.countdown -= delta
		if g.countdown <= 0 {
			g.startRound()
		}

	case engine.PhaseRunning:
		round = g.advance(delta)

	case engine.PhaseCrashed, engine.PhaseLifeboat:
		// Scroll is frozen; leftover settle timers still fire naturally.
		g.field.CullSettled(g.clock)
		g.intermission -= delta
		if g.intermission <= 0 {
			g.openBetting()
		}
	}

	return engine.StepResult{State: g.State(), Round: round}
}

// advance runs one Running-phase tick: scroll, contact resolution, spawn
// maintenance, culling. Returns a RoundResult when a hazard ends the round.
func (g *Game) advance(delta float64) *engine.RoundResult {
	g.field.Advance(delta)
	g.spawnedThisTick = false

	if result := g.resolveContacts(); result != nil {
		// Hazard resolved: obstacle logic stops advancing this tick.
		return result
	}

	// Cadence spawn path, only if no immediate replacement happened.
	if !g.spawnedThisTick && g.field.IdleCount() < g.cfg.Field.MaxIdle && g.field.CadenceDue() {
		g.spawnUpcoming(g.field.IdleCount() + 1)
	}

	g.field.Cull(g.clock)
	return nil
}

// spawnUpcoming plans a multiplier, draws the hidden hazard flag, and
// spawns an obstacle for contact k intervals ahead.
func (g *Game) spawnUpcoming(k int) {
	mult, next := PlanNext(g.seq, g.cfg.Odds.Multiplier, g.rng)
	g.seq = next
	hazard := g.rng.Float64() < g.cfg.Odds.HazardProbability
	g.field.Spawn(k, mult, hazard, g.clock)
	g.spawnedThisTick = true
}

// startRound performs the Betting to Running transition: lock the stake if
// the player joined, reset the round entity and sequencer, rewind the
// scroll, and seed the two initial obstacles.
func (g *Game) startRound() {
	g.resetRound()

	if g.ledger.Joined() {
		g.stake = g.ledger.LockStake() // Deducted exactly once per round
		g.joined = true
		g.message = fmt.Sprintf("round started, %.2f at stake", g.stake)
	} else {
		g.message = "round started, watching from the shore"
	}

	g.field.BeginRound(g.geom)
	g.phase = engine.PhaseRunning
	g.spawnUpcoming(1)
	g.spawnUpcoming(2)
}

// ForceStart closes the betting window immediately and starts the round.
func (g *Game) ForceStart() (string, error) {
	if g.phase != engine.PhaseBetting {
		return "the betting window is not open", ErrInvalidPhase
	}
	g.startRound()
	return g.message, nil
}

// openBetting starts a fresh betting window and destroys the previous
// round entity. The pending bet amount survives; the join flag does not.
func (g *Game) openBetting() {
	g.resetRound()
	g.ledger.ResetJoin()
	g.phase = engine.PhaseBetting
	g.countdown = g.cfg.Betting.WindowSeconds
	g.message = "place your bet"
}

// resetRound clears the per-round entity. The sequencer restarts at (1, 1).
func (g *Game) resetRound() {
	g.collected = 1
	g.safeHits = 0
	g.stake = 0
	g.joined = false
	g.hasCashedOut = false
	g.roundPayout = 0
	g.seq = NewSequencerState()
	g.spawnedThisTick = false
}

// PlaceBet locks in a bet for the upcoming round. Valid only while the
// betting window is open; the amount is clamped to [min bet, balance].
func (g *Game) PlaceBet(amount float64) (string, error) {
	if g.phase != engine.PhaseBetting {
		return "bets are only accepted during the betting window", ErrInvalidPhase
	}
	locked, err := g.ledger.PlaceBet(amount, g.cfg.Betting.MinBet)
	if err != nil {
		return fmt.Sprintf("balance %.2f cannot cover the minimum bet", g.ledger.Balance()), err
	}
	g.message = fmt.Sprintf("bet locked: %.2f", locked)
	return g.message, nil
}

// CancelBet withdraws the pending bet before the round starts.
func (g *Game) CancelBet() (string, error) {
	if g.phase != engine.PhaseBetting {
		return "nothing to cancel outside the betting window", ErrInvalidPhase
	}
	if err := g.ledger.CancelBet(); err != nil {
		return "no bet to cancel", err
	}
	g.message = "bet cancelled"
	return g.message, nil
}

// CashOut credits stake times the collected multiplier, once per round. The
// simulation keeps running afterwards so the player can watch, but not
// re-collect, further multiplier growth.
func (g *Game) CashOut() (string, error) {
	if g.phase != engine.PhaseRunning {
		return "cash out is only available mid-round", ErrInvalidPhase
	}
	if !g.joined {
		return "you did not join this round", ErrNotJoined
	}
	if g.hasCashedOut {
		return "winnings already collected", ErrAlreadyCashedOut
	}

	payout := engine.Round2(g.stake * g.collected)
	g.ledger.Credit(payout)
	g.roundPayout += payout
	g.hasCashedOut = true
	g.message = fmt.Sprintf("cashed out %.2f at %.2fx", payout, g.collected)
	return g.message, nil
}

// BetLimits returns the minimum bet and the bet adjustment step.
func (g *Game) BetLimits() (min, step float64) {
	cfg := g.cfg
	if cfg.Betting.BetStep <= 0 {
		cfg = config.DefaultGameConfig()
	}
	return cfg.Betting.MinBet, cfg.Betting.BetStep
}

// State returns the current game state for the platform layer.
func (g *Game) State() engine.GameState {
	joined := g.joined
	if g.phase == engine.PhaseBetting {
		joined = g.ledger.Joined()
	}

	countdown := 0.0
	if g.phase == engine.PhaseBetting && g.countdown > 0 {
		countdown = g.countdown
	}

	return engine.GameState{
		Phase:      g.phase,
		Balance:    g.ledger.Balance(),
		PendingBet: g.ledger.PendingBet(),
		Joined:     joined,
		Multiplier: g.collected,
		SafeHits:   g.safeHits,
		CashedOut:  g.hasCashedOut,
		Countdown:  countdown,
		Message:    g.message,
	}
}
