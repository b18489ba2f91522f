package icedrift

import (
	"github.com/nordvik/icedrift/internal/engine"
)

// Ledger tracks the player's wallet and the bet being configured for the
// upcoming round. The balance is mutated in exactly two places: stake
// deduction when a round starts with a locked bet, and payout credit from
// a cash-out or lifeboat survival.
type Ledger struct {
	balance    float64
	pendingBet float64
	joined     bool
}

// NewLedger creates a ledger with the given starting balance.
func NewLedger(balance float64) *Ledger {
	if balance < 0 {
		balance = 0
	}
	return &Ledger{balance: balance}
}

// Balance returns the current wallet balance.
func (l *Ledger) Balance() float64 {
	return l.balance
}

// PendingBet returns the bet amount configured for the next round.
func (l *Ledger) PendingBet() float64 {
	return l.pendingBet
}

// Joined reports whether the pending bet is locked in for the upcoming round.
func (l *Ledger) Joined() bool {
	return l.joined
}

// PlaceBet locks in a bet for the upcoming round. The amount is clamped to
// [minBet, balance]; if the balance cannot cover the minimum bet the call
// fails with ErrInsufficientBalance and nothing changes. Returns the amount
// actually locked.
func (l *Ledger) PlaceBet(amount, minBet float64) (float64, error) {
	if l.balance < minBet {
		return 0, ErrInsufficientBalance
	}
	amount = engine.ClampF(amount, minBet, l.balance)
	l.pendingBet = engine.Round2(amount)
	l.joined = true
	return l.pendingBet, nil
}

// CancelBet withdraws the pending bet before the round starts.
func (l *Ledger) CancelBet() error {
	if !l.joined {
		return ErrNotJoined
	}
	l.joined = false
	return nil
}

// LockStake deducts the pending bet from the balance and returns the stake.
// Called exactly once per round, at the Betting to Running transition, and
// only when the player joined. The join flag is consumed so a stake can
// never be deducted twice for the same round.
func (l *Ledger) LockStake() float64 {
	if !l.joined {
		return 0
	}
	stake := engine.ClampF(l.pendingBet, 0, l.balance)
	l.balance = engine.Round2(l.balance - stake)
	l.joined = false
	return stake
}

// Credit adds a payout to the balance.
func (l *Ledger) Credit(amount float64) {
	if amount <= 0 {
		return
	}
	l.balance = engine.Round2(l.balance + amount)
}

// ResetJoin clears the join flag when a new betting window opens. The
// pending amount is kept so the player can re-bet the same stake quickly.
func (l *Ledger) ResetJoin() {
	l.joined = false
}
