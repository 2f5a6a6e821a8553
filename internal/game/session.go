package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// Session runs rounds until the bankroll is gone. It owns the deck
// and the ledger; the engine mutates both on its behalf.
type Session struct {
	cfg    EngineConfig
	engine *Engine
}

// NewSession creates a session over the given engine configuration
func NewSession(cfg EngineConfig) *Session {
	if cfg.Cue == nil {
		cfg.Cue = NopCue{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Session{cfg: cfg, engine: NewEngine(cfg)}
}

// Run loops: reset and shuffle the deck, solicit a bet, play the
// round, report stats and the new bankroll. It returns nil when the
// player goes broke or the input source signals EOF.
func (s *Session) Run() error {
	for {
		// A fresh full shoe every round; the deck can never run dry
		// mid-hand this way.
		s.cfg.Deck.Reset()

		bet, err := s.cfg.Agent.PlaceBet(s.cfg.Ledger.Balance())
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := s.cfg.Ledger.PlaceBet(bet); err != nil {
			// The agent is expected to validate; re-prompt if not.
			s.cfg.Logger.Warn("rejected bet", "bet", bet, "error", err)
			continue
		}

		if err := s.engine.PlayRound(bet); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if stats, err := s.cfg.Stats.CurrentStats(); err != nil {
			s.cfg.Logger.Warn("failed to load stats", "error", err)
		} else {
			s.cfg.Observer.OnStats(stats)
		}
		s.cfg.Observer.OnBankroll(s.cfg.Ledger.Balance())

		if s.cfg.Ledger.Broke() {
			s.cfg.Observer.OnGameOver()
			s.cfg.Logger.Info("session over", "balance", s.cfg.Ledger.Balance())
			return nil
		}
	}
}
