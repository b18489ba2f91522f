package icedrift

import "errors"

// Domain validation failures. None are fatal: every player command is a
// single synchronous attempt that either applies or becomes a no-op with a
// user-facing message.
var (
	// ErrInsufficientBalance is returned when the wallet cannot cover the
	// minimum bet.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidPhase is returned when a command arrives outside the phase
	// it is valid in, e.g. a cash-out while no round is running.
	ErrInvalidPhase = errors.New("action not allowed in current phase")

	// ErrNotJoined is returned when a command requires an active stake but
	// the player did not join the round.
	ErrNotJoined = errors.New("no active stake this round")

	// ErrAlreadyCashedOut is returned when the one-shot cash-out guard is
	// already set for the live round.
	ErrAlreadyCashedOut = errors.New("already cashed out this round")
)
