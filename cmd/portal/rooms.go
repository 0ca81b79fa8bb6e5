package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-portal/internal/storage"
)

var flagRoomsLimit int

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Show recently hosted and joined rooms",
	Long: `List the online rooms this device created or joined, newest first.
Rejoin one with 'portal play <game> --room <code>'.`,
	Args: cobra.NoArgs,
	Run:  runRooms,
}

func init() {
	roomsCmd.Flags().IntVar(&flagRoomsLimit, "limit", 10, "How many rooms to show")
}

func runRooms(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening portal database: %v", err)
	}
	defer store.Close()

	rooms, err := store.RecentRooms(flagRoomsLimit)
	if err != nil {
		store.Close()
		fail("retrieving rooms: %v", err)
	}
	if len(rooms) == 0 {
		fmt.Println("No rooms yet. Host one with 'portal play tictactoe --online'.")
		return
	}

	fmt.Printf("  %-8s  %-12s  %-6s  %s\n", "Room", "Game", "Role", "Date")
	fmt.Printf("  %-8s  %-12s  %-6s  %s\n", "----", "----", "----", "----")
	for _, r := range rooms {
		role := "guest"
		if r.Host {
			role = "host"
		}
		fmt.Printf("  %-8s  %-12s  %-6s  %s\n", r.RoomID, r.GameID, role, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
