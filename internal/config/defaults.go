package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/portal.yaml
var defaultPortalYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML
// can be read and to fill fields a YAML file leaves out.
func DefaultConfig() Config {
	return Config{
		Rooms: RoomsConfig{
			BaseURL:        "https://game-room-api.fly.dev/api",
			PollInterval:   2 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
		Games: GamesConfig{
			QuickDraw: QuickDrawConfig{
				Rounds:       5,
				RoundSeconds: 10,
				RevealDelay:  2 * time.Second,
			},
			PrimeRush: PrimeRushConfig{
				Lives: 3,
				Min:   3,
				Max:   199,
			},
			Wordle: WordleConfig{
				Attempts: 6,
			},
			Memory: MemoryConfig{
				FlipBackDelay: time.Second,
			},
			PatternLock: PatternLockConfig{
				FeedbackDelay: time.Second,
			},
		},
		Storage: StorageConfig{
			Path: "~/.portal/portal.db",
		},
		SSH: SSHConfig{
			Addr:        ":23235",
			HostKeyPath: ".ssh/portal_ed25519",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `portal config` style
// dumps and tests.
func DefaultYAML() []byte {
	return defaultPortalYAML
}
