package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

var (
	flagName   string
	flagAvatar string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with a name and an avatar",
	Long: `Create the local player. The name is shown in every game and the
avatar next to it; the player id stays the same until you log out.

Avatars: ` + avatarList() + `

Examples:
  portal login --name Ada --avatar wizard`,
	Args: cobra.NoArgs,
	Run:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log the local player out",
	Args:  cobra.NoArgs,
	Run:   runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the local player",
	Args:  cobra.NoArgs,
	Run:   runWhoami,
}

var renameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Change the local player's name",
	Args:  cobra.ExactArgs(1),
	Run:   runRename,
}

func init() {
	loginCmd.Flags().StringVar(&flagName, "name", "", "Display name (1-20 characters)")
	loginCmd.Flags().StringVar(&flagAvatar, "avatar", "knight", "Avatar id")
	_ = loginCmd.MarkFlagRequired("name")
}

func avatarList() string {
	ids := make([]string, 0, len(identity.Avatars()))
	for _, a := range identity.Avatars() {
		ids = append(ids, a.ID)
	}
	return strings.Join(ids, ", ")
}

// openProfile opens the database the login lives in. Unlike games, profile
// commands cannot run without it.
func openProfile() (*storage.Store, *identity.Identity) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening portal database: %v", err)
	}
	return store, localIdentity(store)
}

func runLogin(_ *cobra.Command, _ []string) {
	store, id := openProfile()
	defer store.Close()

	p, err := id.Login(identity.Player{Name: flagName, Avatar: identity.Avatar{ID: flagAvatar}})
	switch {
	case errors.Is(err, identity.ErrAlreadyLoggedIn):
		fail("already logged in as %s; run 'portal logout' first", p)
	case errors.Is(err, identity.ErrUnknownAvatar):
		fail("unknown avatar %q (choose one of: %s)", flagAvatar, avatarList())
	case err != nil:
		fail("%v", err)
	}
	fmt.Printf("Logged in as %s\n", p)
}

func runLogout(_ *cobra.Command, _ []string) {
	store, id := openProfile()
	defer store.Close()

	if err := id.Logout(); err != nil {
		fail("%v", err)
	}
	fmt.Println("Logged out.")
}

func runWhoami(_ *cobra.Command, _ []string) {
	store, id := openProfile()
	defer store.Close()

	p, ok, err := id.CurrentPlayer()
	if err != nil {
		fail("%v", err)
	}
	if !ok {
		fmt.Println("Nobody is logged in. Run 'portal login --name <name>'.")
		return
	}
	fmt.Printf("%s (%s)\n", p, p.Avatar.Name)
	fmt.Printf("id: %s\n", p.ID)
}

func runRename(_ *cobra.Command, args []string) {
	store, id := openProfile()
	defer store.Close()

	p, err := id.Rename(args[0])
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Now playing as %s\n", p)
}
