package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/michaelamar-1/blackjack/internal/config"
	"github.com/michaelamar-1/blackjack/internal/deck"
	"github.com/michaelamar-1/blackjack/internal/display"
	"github.com/michaelamar-1/blackjack/internal/game"
	"github.com/michaelamar-1/blackjack/internal/randutil"
	"github.com/michaelamar-1/blackjack/internal/stats"
)

// PlayCmd contains session configuration
type PlayCmd struct {
	Config   string `kong:"default='blackjack.hcl',help='Path to HCL config file'"`
	Bankroll int    `kong:"help='Override the starting bankroll'"`
	Seed     *int64 `kong:"help='Deterministic deck shuffle seed (optional)'"`
	NoSound  bool   `kong:"help='Disable the card-deal bell'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Bankroll > 0 {
		cfg.Game.StartingBankroll = c.Bankroll
	}
	if c.NoSound {
		cfg.Game.Mute = true
	}

	logger, closeLog, err := setupLogger(cfg, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("starting session",
		"bankroll", cfg.Game.StartingBankroll, "seed", seed, "stats", cfg.Game.StatsFile)

	term := display.New(os.Stdin, os.Stdout, display.WithSound(!cfg.Game.Mute))
	session := game.NewSession(game.EngineConfig{
		Deck:     deck.New(randutil.New(seed)),
		Ledger:   game.NewLedger(cfg.Game.StartingBankroll),
		Agent:    term,
		Observer: term,
		Cue:      term,
		Stats:    stats.NewFileStore(cfg.Game.StatsFile),
		Logger:   logger,
	})
	return session.Run()
}

// setupLogger writes logs to the configured file so debug output
// never interleaves with the interactive terminal.
func setupLogger(cfg *config.Config, debug bool) (*log.Logger, func(), error) {
	w := io.Writer(io.Discard)
	closeLog := func() {}

	if cfg.Game.LogFile != "" {
		f, err := os.OpenFile(cfg.Game.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})
	level, err := log.ParseLevel(cfg.Game.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return logger, closeLog, nil
}
