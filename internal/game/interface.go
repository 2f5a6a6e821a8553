package game

import (
	"github.com/michaelamar-1/blackjack/internal/deck"
)

// Status tracks one player hand through the round state machine.
type Status int

const (
	StatusActive Status = iota
	StatusStanding
	StatusBust
	StatusBlackjack
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusStanding:
		return "standing"
	case StatusBust:
		return "bust"
	case StatusBlackjack:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Action is a player decision in the action loop.
type Action int

const (
	Hit Action = iota
	Stand
	Double
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Outcome is how a single hand resolved against the dealer, as
// reported to the stats store.
type Outcome string

const (
	OutcomePlayer Outcome = "player"
	OutcomeDealer Outcome = "dealer"
	OutcomeTie    Outcome = "tie"
)

// HandView is a display snapshot of a hand. The engine emits these
// facts; formatting belongs entirely to the Observer.
type HandView struct {
	Cards     []deck.Card
	Score     int
	HardScore int  // total with every Ace counted as 1
	Soft      bool // two valid readings exist (HardScore and Score)
	Natural   bool
	HideHole  bool // second card hidden from the player
}

// Result is the settlement of one player hand.
type Result struct {
	Outcome       Outcome
	Status        Status
	Bet           int  // the hand's committed bet (doubled after double-down)
	Delta         int  // signed bankroll change
	DealerNatural bool // dealer held a natural blackjack
}

// Agent supplies the player's decisions. Implementations return
// validated values: a bet within [1, bankroll] and an action drawn
// from the offered set. Blocking until the operator responds is fine;
// an error (e.g. EOF) aborts the session.
type Agent interface {
	// PlaceBet prompts for a bet bounded by [1, bankroll].
	PlaceBet(bankroll int) (int, error)
	// ChooseAction prompts for one of the offered actions on the hand.
	// Ineligible actions are simply absent from the offer.
	ChooseAction(view HandView, bet int, offered []Action) (Action, error)
	// ConfirmSplit asks whether to split the pair into two hands.
	ConfirmSplit(view HandView) (bool, error)
}

// Observer receives structured round-state snapshots for rendering.
// hand/of identify a player hand (1-based) and how many the round has;
// of is 1 unless the pair was split.
type Observer interface {
	OnDeal(player, dealer HandView)
	OnHandTurn(hand, of int)
	OnPlayerHand(hand, of int, view HandView)
	OnBust(hand, of int, view HandView)
	OnDoubleDown(hand, of int, bet int)
	OnDealerTurn()
	OnDealerHand(view HandView)
	OnDealerFinal(view HandView)
	OnResult(hand, of int, view HandView, res Result)
	OnStats(stats Stats)
	OnBankroll(balance int)
	OnGameOver()
}

// Cue is a fire-and-forget notification emitted once per dealt card.
// Implementations must not fail the round; errors are swallowed.
type Cue interface {
	CardDealt()
}

// NopCue is a Cue that does nothing. Useful for tests and muted play.
type NopCue struct{}

// CardDealt implements Cue
func (NopCue) CardDealt() {}

// Stats holds the cumulative outcome counters persisted between
// sessions.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	PlayerWins  int `json:"player_wins"`
	DealerWins  int `json:"dealer_wins"`
	Ties        int `json:"ties"`
}

// WinRate returns the player win percentage over all recorded hands
func (s Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.GamesPlayed) * 100
}

// StatsStore persists outcome counters across sessions.
type StatsStore interface {
	RecordOutcome(o Outcome) error
	CurrentStats() (Stats, error)
}
