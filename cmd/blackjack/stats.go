package main

import (
	"os"

	"github.com/michaelamar-1/blackjack/internal/config"
	"github.com/michaelamar-1/blackjack/internal/display"
	"github.com/michaelamar-1/blackjack/internal/stats"
)

// StatsCmd prints the persisted outcome counters
type StatsCmd struct {
	Config string `kong:"default='blackjack.hcl',help='Path to HCL config file'"`
}

func (c *StatsCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	store := stats.NewFileStore(cfg.Game.StatsFile)
	current, err := store.CurrentStats()
	if err != nil {
		return err
	}
	display.RenderStats(os.Stdout, display.DefaultStyles(), current)
	return nil
}
