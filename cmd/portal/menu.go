package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-portal/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the portal with a game picker menu",
	Long: `Start the portal in interactive menu mode.

After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected game
  O            - Play it online (host or join a room)
  Tab          - High scores
  P            - Profile (log in, rename, log out)
  Q            - Quit

Examples:
  portal menu
  portal menu --db ./portal.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, closeLog := newLogger(cfg, true)
	defer closeLog()

	store := openStore(cfg)
	width, height := terminalSize()

	runErr := tui.Run(tui.AppOptions{
		Store:    store,
		Identity: localIdentity(store),
		Config:   cfg,
		Seed:     flagSeed,
		Logger:   logger,
		Width:    width,
		Height:   height,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
