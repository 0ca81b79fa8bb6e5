package core

import (
	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/identity"
)

// RuntimeConfig contains what a game needs at Reset.
type RuntimeConfig struct {
	Seed   int64              // RNG seed; the platform fills it from the clock when 0
	Player identity.Player    // local player; zero means nobody is logged in yet
	Games  config.GamesConfig // per-game tuning; zero values fall back to defaults
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:  0, // 0 means use current time in platform layer
		Games: config.DefaultConfig().Games,
	}
}
