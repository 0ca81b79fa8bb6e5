// portal is a terminal game portal: nine casual games, a shared player
// profile, and online rooms synced through a remote room service.
//
// Usage:
//
//	portal list                   - List available games
//	portal play <game>            - Play a game (--online to host, --room CODE to join)
//	portal menu                   - Pick games interactively
//	portal login / logout         - Manage the local player
//	portal scores <game>          - Show high scores for a game
//	portal rooms                  - Show recently used room codes
//	portal serve                  - Serve the portal over SSH
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.portal/config.yaml)
//	--db <path>         - Database path (default from config)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-portal/internal/games/connectfour"
	_ "github.com/vovakirdan/tui-portal/internal/games/memory"
	_ "github.com/vovakirdan/tui-portal/internal/games/patternlock"
	_ "github.com/vovakirdan/tui-portal/internal/games/primerush"
	_ "github.com/vovakirdan/tui-portal/internal/games/quickdraw"
	_ "github.com/vovakirdan/tui-portal/internal/games/rps"
	_ "github.com/vovakirdan/tui-portal/internal/games/tictactoe"
	_ "github.com/vovakirdan/tui-portal/internal/games/typing"
	_ "github.com/vovakirdan/tui-portal/internal/games/wordle"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Game Portal - casual games in your terminal",
	Long: `Game Portal is a collection of small games for the terminal.
Log in once with a name and an avatar; every game knows who you are.
Tic-tac-toe and Quick Draw can also be played online in a
shared room: one player hosts, the others join with the room code.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  login    - Pick a name and avatar
  scores   - View high scores
  rooms    - Recently used room codes
  serve    - Start SSH server for remote play

Examples:
  portal login --name Ada --avatar wizard
  portal play wordle
  portal play tictactoe --online
  portal play tictactoe --room K3J9QZ
  portal menu`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to portal database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the configuration and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger. While a TUI owns the terminal the
// log goes to ~/.portal/portal.log; the returned func closes it.
func newLogger(cfg config.Config, tui bool) (*log.Logger, func()) {
	out := os.Stderr
	closer := func() {}
	if tui {
		path := config.ExpandHome("~/.portal/portal.log")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				out = f
				closer = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "portal",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closer
}

// openStore opens the database, or returns nil with a warning so games
// still run without it.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open portal database: %v\n", err)
		return nil
	}
	return store
}

// localIdentity is the login of this terminal. Without a database it only
// lasts for the process.
func localIdentity(store *storage.Store) *identity.Identity {
	if store == nil {
		return identity.New(&identity.MemoryStore{})
	}
	return identity.New(store.Profile(storage.LocalProfile))
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
