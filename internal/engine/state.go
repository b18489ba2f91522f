package engine

// GameState summarizes the round and ledger state for the platform layer.
// Returned by Game.Step() every tick so the HUD never reads stale values.
type GameState struct {
	Phase      Phase
	Balance    float64 // Current wallet balance
	PendingBet float64 // Bet being configured for the next round
	Joined     bool    // Whether the pending bet is locked in
	Multiplier float64 // Multiplier carried by the most recent safe hit (>= 1)
	SafeHits   int     // Safe contacts resolved this round
	CashedOut  bool    // One-shot payout guard for the live round
	Countdown  float64 // Seconds left in the betting window (0 elsewhere)
	Message    string  // Last user-facing status line
}

// RoundResult describes a finished round. Emitted once, on the tick the
// hazard contact resolves, so the platform can persist history exactly once.
type RoundResult struct {
	Outcome    Phase   // PhaseCrashed or PhaseLifeboat
	Stake      float64 // 0 if the player did not join
	Multiplier float64 // Collected multiplier at round end
	Payout     float64 // Total credited this round (cash-out or lifeboat)
	SafeHits   int
	CashedOut  bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Round *RoundResult // Non-nil only on the tick a round resolves
}
