package game

import "errors"

// ErrInvalidBet is returned when a bet is outside [1, balance].
var ErrInvalidBet = errors.New("bet must be between 1 and the current bankroll")

// Ledger tracks the player's running bankroll. It is owned by the
// session loop and mutated only by resolved round outcomes.
type Ledger struct {
	balance int
}

// NewLedger creates a ledger with the given starting balance
func NewLedger(balance int) *Ledger {
	return &Ledger{balance: balance}
}

// Balance returns the current bankroll
func (l *Ledger) Balance() int {
	return l.balance
}

// PlaceBet validates a bet against the current balance
func (l *Ledger) PlaceBet(amount int) error {
	if amount < 1 || amount > l.balance {
		return ErrInvalidBet
	}
	return nil
}

// Apply settles a resolved hand by adding the signed delta
func (l *Ledger) Apply(delta int) {
	l.balance += delta
}

// Broke reports whether the session is over: balance below one unit
func (l *Ledger) Broke() bool {
	return l.balance < 1
}
