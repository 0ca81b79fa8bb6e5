package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-portal/internal/registry"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  portal scores wordle
  portal scores primerush`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'portal list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	title := game.Title()

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening portal database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'portal play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		name := entry.PlayerName
		if name == "" {
			name = "anonymous"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, name, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
