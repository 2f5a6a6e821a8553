// Package config loads the blackjack configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
}

// GameSettings contains session-level configuration
type GameSettings struct {
	StartingBankroll int    `hcl:"starting_bankroll,optional"`
	StatsFile        string `hcl:"stats_file,optional"`
	Mute             bool   `hcl:"mute,optional"`
	LogFile          string `hcl:"log_file,optional"`
	LogLevel         string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingBankroll: 1000,
			StatsFile:        "stats.json",
			Mute:             false,
			LogFile:          "",
			LogLevel:         "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields
// the defaults; unset optional fields fall back to them too.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Game.StartingBankroll == 0 {
		c.Game.StartingBankroll = def.Game.StartingBankroll
	}
	if c.Game.StatsFile == "" {
		c.Game.StatsFile = def.Game.StatsFile
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = def.Game.LogLevel
	}
}
