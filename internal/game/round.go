package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/michaelamar-1/blackjack/internal/deck"
)

// EngineConfig wires the engine to its collaborators.
type EngineConfig struct {
	Deck     *deck.Deck
	Ledger   *Ledger
	Agent    Agent
	Observer Observer
	Cue      Cue
	Stats    StatsStore
	Logger   *log.Logger
}

// Engine resolves blackjack rounds against the bankroll ledger
type Engine struct {
	cfg EngineConfig
}

// NewEngine creates an engine. Cue and Logger are optional; the rest
// must be provided.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Cue == nil {
		cfg.Cue = NopCue{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Engine{cfg: cfg}
}

// playerHand tracks one hand's cards, committed bet and status
// through the round. The bet is fixed once the hand's loop ends.
type playerHand struct {
	cards  Hand
	bet    int
	status Status
}

// PlayRound runs one full round with the given bet: initial deal,
// natural check, split offer, action loops, dealer turn and per-hand
// settlement. Each hand's outcome is applied to the ledger and
// reported to the stats store independently.
func (e *Engine) PlayRound(bet int) error {
	if err := e.cfg.Ledger.PlaceBet(bet); err != nil {
		return err
	}

	var player, dealer Hand
	for i := 0; i < 2; i++ {
		if err := e.deal(&player); err != nil {
			return err
		}
		if err := e.deal(&dealer); err != nil {
			return err
		}
	}
	e.cfg.Observer.OnDeal(player.View(false), dealer.View(true))
	e.cfg.Logger.Debug("initial deal", "player", player, "dealer", dealer, "bet", bet)

	// Naturals short-circuit splits and the action loop entirely.
	if player.IsNatural() || dealer.IsNatural() {
		e.resolveNaturals(player, dealer, bet)
		return nil
	}

	hands, err := e.splitPhase(player, bet)
	if err != nil {
		return err
	}

	for i, ph := range hands {
		// Forced ace-split hands stand pat on their single extra card.
		if ph.status != StatusActive {
			continue
		}
		if err := e.playHand(i+1, len(hands), ph); err != nil {
			return err
		}
	}

	if err := e.dealerTurn(&dealer); err != nil {
		return err
	}

	dealerScore := dealer.Score()
	for i, ph := range hands {
		e.settle(i+1, len(hands), ph, dealerScore)
	}
	return nil
}

// naturalPayout is the 3:2 blackjack payout, truncated to whole units.
func naturalPayout(bet int) int {
	return bet * 3 / 2
}

func (e *Engine) resolveNaturals(player, dealer Hand, bet int) {
	pNat, dNat := player.IsNatural(), dealer.IsNatural()
	e.cfg.Observer.OnDealerFinal(dealer.View(false))

	res := Result{Bet: bet, DealerNatural: dNat}
	switch {
	case pNat && !dNat:
		res.Outcome = OutcomePlayer
		res.Status = StatusBlackjack
		res.Delta = naturalPayout(bet)
	case dNat && !pNat:
		res.Outcome = OutcomeDealer
		res.Status = StatusStanding
		res.Delta = -bet
	default:
		res.Outcome = OutcomeTie
		res.Status = StatusBlackjack
	}
	e.cfg.Ledger.Apply(res.Delta)
	e.record(res.Outcome)
	e.cfg.Observer.OnResult(1, 1, player.View(false), res)
	e.cfg.Logger.Debug("naturals resolved", "outcome", res.Outcome, "delta", res.Delta)
}

// splitPhase turns the initial hand into one or two playable hands.
// Ace pairs split automatically with exactly one card each; other
// pairs of equal value are offered as a choice.
func (e *Engine) splitPhase(player Hand, bet int) ([]*playerHand, error) {
	single := []*playerHand{{cards: player, bet: bet, status: StatusActive}}
	if !player.CanSplit() {
		return single, nil
	}

	if player.IsAcePair() {
		hands, err := e.splitInto(player, bet, StatusStanding)
		if err != nil {
			return nil, err
		}
		e.cfg.Logger.Debug("forced ace split", "first", hands[0].cards, "second", hands[1].cards)
		return hands, nil
	}

	ok, err := e.cfg.Agent.ConfirmSplit(player.View(false))
	if err != nil {
		return nil, err
	}
	if !ok {
		return single, nil
	}
	return e.splitInto(player, bet, StatusActive)
}

func (e *Engine) splitInto(player Hand, bet int, status Status) ([]*playerHand, error) {
	hands := make([]*playerHand, len(player))
	for i, c := range player {
		h := Hand{c}
		if err := e.deal(&h); err != nil {
			return nil, err
		}
		hands[i] = &playerHand{cards: h, bet: bet, status: status}
	}
	return hands, nil
}

// playHand runs the action loop for one hand until it stands or busts.
func (e *Engine) playHand(num, of int, ph *playerHand) error {
	if of > 1 {
		e.cfg.Observer.OnHandTurn(num, of)
	}

	// A split hand can draw into a two-card 21, which resolves as a
	// blackjack without entering the action loop.
	if ph.cards.IsNatural() {
		ph.status = StatusBlackjack
		return nil
	}

	first := true
	for {
		e.cfg.Observer.OnPlayerHand(num, of, ph.cards.View(false))

		offered := []Action{Hit, Stand}
		canDouble := first && len(ph.cards) == 2 && ph.bet*2 <= e.cfg.Ledger.Balance()
		if canDouble {
			offered = append(offered, Double)
		}

		action, err := e.cfg.Agent.ChooseAction(ph.cards.View(false), ph.bet, offered)
		if err != nil {
			return err
		}
		e.cfg.Logger.Debug("player action", "hand", num, "action", action, "bet", ph.bet)

		switch {
		case action == Hit:
			if err := e.deal(&ph.cards); err != nil {
				return err
			}
			if ph.cards.Score() > 21 {
				ph.status = StatusBust
				e.cfg.Observer.OnBust(num, of, ph.cards.View(false))
				return nil
			}
		case action == Double && canDouble:
			// Double locks twice the bet, takes exactly one card and
			// stands. Bust is still possible.
			ph.bet *= 2
			if err := e.deal(&ph.cards); err != nil {
				return err
			}
			e.cfg.Observer.OnPlayerHand(num, of, ph.cards.View(false))
			if ph.cards.Score() > 21 {
				ph.status = StatusBust
				e.cfg.Observer.OnBust(num, of, ph.cards.View(false))
				return nil
			}
			e.cfg.Observer.OnDoubleDown(num, of, ph.bet)
			ph.status = StatusStanding
			return nil
		default:
			ph.status = StatusStanding
			return nil
		}
		first = false
	}
}

// dealerTurn plays the dealer's fixed policy: hit below 17, stand on
// any 17, soft or hard.
func (e *Engine) dealerTurn(dealer *Hand) error {
	e.cfg.Observer.OnDealerTurn()
	for dealer.Score() < 17 {
		if err := e.deal(dealer); err != nil {
			return err
		}
		e.cfg.Observer.OnDealerHand(dealer.View(false))
	}
	e.cfg.Observer.OnDealerFinal(dealer.View(false))
	e.cfg.Logger.Debug("dealer stands", "dealer", *dealer, "score", dealer.Score())
	return nil
}

// settle resolves one hand against the dealer's final score.
func (e *Engine) settle(num, of int, ph *playerHand, dealerScore int) {
	score := ph.cards.Score()
	res := Result{Status: ph.status, Bet: ph.bet}

	switch {
	case ph.status == StatusBust:
		// A bust loses regardless of the dealer's outcome.
		res.Outcome = OutcomeDealer
		res.Delta = -ph.bet
	case ph.status == StatusBlackjack:
		res.Outcome = OutcomePlayer
		res.Delta = naturalPayout(ph.bet)
	case dealerScore > 21 || score > dealerScore:
		res.Outcome = OutcomePlayer
		res.Delta = ph.bet
	case score == dealerScore:
		res.Outcome = OutcomeTie
	default:
		res.Outcome = OutcomeDealer
		res.Delta = -ph.bet
	}

	e.cfg.Ledger.Apply(res.Delta)
	e.record(res.Outcome)
	e.cfg.Observer.OnResult(num, of, ph.cards.View(false), res)
	e.cfg.Logger.Debug("hand settled",
		"hand", num, "status", ph.status, "score", score,
		"dealer", dealerScore, "outcome", res.Outcome, "delta", res.Delta)
}

func (e *Engine) record(o Outcome) {
	if err := e.cfg.Stats.RecordOutcome(o); err != nil {
		e.cfg.Logger.Warn("failed to record outcome", "outcome", o, "error", err)
	}
}

// deal moves one card from the deck to the hand and fires the cue.
func (e *Engine) deal(h *Hand) error {
	c, err := e.cfg.Deck.Deal()
	if err != nil {
		return fmt.Errorf("dealing card: %w", err)
	}
	h.Add(c)
	e.cfg.Cue.CardDealt()
	return nil
}
