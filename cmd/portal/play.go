package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-portal/internal/platform/tui"
	"github.com/vovakirdan/tui-portal/internal/registry"
)

var (
	flagOnline bool
	flagRoom   string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

If nobody is logged in, the profile screen opens first.

Online play (tictactoe, quickdraw):
  --online       Host a new room and share its code
  --room CODE    Join an existing room

Controls:
  Arrows/1-9     - Move and pick a cell
  Enter          - Confirm / submit
  R              - Restart (after game over)
  Esc            - Leave
  Ctrl+C         - Quit

Examples:
  portal play wordle
  portal play primerush --seed 42
  portal play tictactoe --online
  portal play quickdraw --room K3J9QZ`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagOnline, "online", false, "Host an online room")
	playCmd.Flags().StringVar(&flagRoom, "room", "", "Join the online room with this code")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'portal list' to see available games.")
		os.Exit(1)
	}
	online := flagOnline || flagRoom != ""
	if online && !registry.SupportsOnline(gameID) {
		fail("%s has no online mode", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, closeLog := newLogger(cfg, true)
	defer closeLog()

	store := openStore(cfg)
	width, height := terminalSize()

	runErr := tui.Run(tui.AppOptions{
		Store:     store,
		Identity:  localIdentity(store),
		Config:    cfg,
		Seed:      flagSeed,
		Logger:    logger,
		Width:     width,
		Height:    height,
		StartGame: gameID,
		Online:    online,
		RoomCode:  strings.ToUpper(strings.TrimSpace(flagRoom)),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
