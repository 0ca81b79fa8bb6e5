package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvRoomURL      = "PORTAL_ROOM_URL"
	EnvPollInterval = "PORTAL_POLL_INTERVAL"
	EnvLogLevel     = "PORTAL_LOG_LEVEL"
	EnvDBPath       = "PORTAL_DB"
)

// Load loads the portal configuration.
// Search order: customPath -> ~/.portal/config.yaml -> ./configs/portal.yaml -> embedded default.
// A .env file in the working directory and PORTAL_* variables are applied last.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	switch {
	case customPath != "":
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
	case tryFile(userConfigPath("config.yaml"), &cfg):
	case tryFile(filepath.Join("configs", "portal.yaml"), &cfg):
	default:
		if err := yaml.Unmarshal(defaultPortalYAML, &cfg); err != nil {
			cfg = DefaultConfig() // fallback to hardcoded if embed fails
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// tryFile decodes path over cfg. A missing or broken file leaves cfg as it was.
func tryFile(path string, cfg *Config) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	next := *cfg
	if err := yaml.Unmarshal(data, &next); err != nil {
		return false
	}
	*cfg = next
	return true
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvRoomURL); v != "" {
		cfg.Rooms.BaseURL = v
	}
	if v := os.Getenv(EnvPollInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvPollInterval, err)
		}
		cfg.Rooms.PollInterval = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Storage.Path = v
	}
	return nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	c.Rooms.BaseURL = strings.TrimRight(c.Rooms.BaseURL, "/")
	if c.Rooms.BaseURL == "" {
		c.Rooms.BaseURL = def.Rooms.BaseURL
	}
	if c.Rooms.PollInterval <= 0 {
		c.Rooms.PollInterval = def.Rooms.PollInterval
	}
	if c.Rooms.RequestTimeout <= 0 {
		c.Rooms.RequestTimeout = def.Rooms.RequestTimeout
	}

	c.Games = c.Games.WithDefaults()
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.SSH.Addr == "" {
		c.SSH.Addr = def.SSH.Addr
	}
	if c.SSH.HostKeyPath == "" {
		c.SSH.HostKeyPath = def.SSH.HostKeyPath
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// WithDefaults returns g with every unusable value replaced by its default.
// Games call it on the tuning they receive, so a zero GamesConfig works.
func (g GamesConfig) WithDefaults() GamesConfig {
	def := DefaultConfig().Games
	qd := &g.QuickDraw
	if qd.Rounds <= 0 {
		qd.Rounds = def.QuickDraw.Rounds
	}
	if qd.RoundSeconds <= 0 {
		qd.RoundSeconds = def.QuickDraw.RoundSeconds
	}
	if qd.RevealDelay <= 0 {
		qd.RevealDelay = def.QuickDraw.RevealDelay
	}

	pr := &g.PrimeRush
	if pr.Lives <= 0 {
		pr.Lives = def.PrimeRush.Lives
	}
	if pr.Min < 2 || pr.Max < pr.Min {
		pr.Min, pr.Max = def.PrimeRush.Min, def.PrimeRush.Max
	}

	if g.Wordle.Attempts <= 0 {
		g.Wordle.Attempts = def.Wordle.Attempts
	}
	if g.Memory.FlipBackDelay <= 0 {
		g.Memory.FlipBackDelay = def.Memory.FlipBackDelay
	}
	if g.PatternLock.FeedbackDelay <= 0 {
		g.PatternLock.FeedbackDelay = def.PatternLock.FeedbackDelay
	}
	return g
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".portal", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
