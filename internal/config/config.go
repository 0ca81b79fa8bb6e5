// Package config provides YAML-based configuration loading for the portal:
// the room service endpoint, per-game tuning and logging.
package config

import "time"

// Config is the full portal configuration.
type Config struct {
	Rooms   RoomsConfig   `yaml:"rooms"`
	Games   GamesConfig   `yaml:"games"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// RoomsConfig configures the remote room store client.
type RoomsConfig struct {
	BaseURL        string        `yaml:"base_url"`        // without the trailing /rooms
	PollInterval   time.Duration `yaml:"poll_interval"`   // e.g. "2s"
	RequestTimeout time.Duration `yaml:"request_timeout"` // per HTTP request
}

// GamesConfig holds tuning for the games that have any.
type GamesConfig struct {
	QuickDraw   QuickDrawConfig   `yaml:"quickdraw"`
	PrimeRush   PrimeRushConfig   `yaml:"primerush"`
	Wordle      WordleConfig      `yaml:"wordle"`
	Memory      MemoryConfig      `yaml:"memory"`
	PatternLock PatternLockConfig `yaml:"patternlock"`
}

// QuickDrawConfig tunes the image association quiz.
type QuickDrawConfig struct {
	Rounds       int           `yaml:"rounds"`
	RoundSeconds int           `yaml:"round_seconds"`
	RevealDelay  time.Duration `yaml:"reveal_delay"` // answer shown before the next round
}

// PrimeRushConfig tunes the prime quiz.
type PrimeRushConfig struct {
	Lives int `yaml:"lives"`
	Min   int `yaml:"min"` // smallest number asked (inclusive)
	Max   int `yaml:"max"` // largest number asked (inclusive)
}

// WordleConfig tunes the word guessing game.
type WordleConfig struct {
	Attempts int `yaml:"attempts"`
}

// MemoryConfig tunes the memory matching game.
type MemoryConfig struct {
	FlipBackDelay time.Duration `yaml:"flip_back_delay"`
}

// PatternLockConfig tunes the pattern memorization game.
type PatternLockConfig struct {
	FeedbackDelay time.Duration `yaml:"feedback_delay"`
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path"` // "~" is expanded
}

// SSHConfig configures `portal serve`.
type SSHConfig struct {
	Addr        string `yaml:"addr"`
	HostKeyPath string `yaml:"host_key_path"`
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
