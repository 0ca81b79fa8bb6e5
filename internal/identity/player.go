// Package identity holds the active player's profile: a stable id, a display
// name and an avatar. Games never look the player up on their own; the shell
// reads it here and hands it to each game by value.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Name length limits, counted in runes after trimming.
const (
	MinNameLen = 1
	MaxNameLen = 20
)

var (
	// ErrInvalidName is returned when a name is empty or too long.
	ErrInvalidName = errors.New("identity: name must be 1-20 characters")
	// ErrUnknownAvatar is returned for an avatar id not in the catalog.
	ErrUnknownAvatar = errors.New("identity: unknown avatar")
	// ErrNotLoggedIn is returned by operations that need a current player.
	ErrNotLoggedIn = errors.New("identity: no player logged in")
)

// Avatar is one of the fixed portraits a player can choose.
type Avatar struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

// Player is the identity shared by every game.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar Avatar `json:"avatar"`
}

// IsZero reports whether p is the empty player (nobody logged in).
func (p Player) IsZero() bool {
	return p.ID == ""
}

// String returns "glyph name" for display.
func (p Player) String() string {
	if p.Avatar.Glyph == "" {
		return p.Name
	}
	return p.Avatar.Glyph + " " + p.Name
}

var avatars = []Avatar{
	{ID: "knight", Name: "Knight", Glyph: "♞"},
	{ID: "wizard", Name: "Wizard", Glyph: "✦"},
	{ID: "ninja", Name: "Ninja", Glyph: "✷"},
	{ID: "assassin", Name: "Assassin", Glyph: "†"},
	{ID: "sorceress", Name: "Sorceress", Glyph: "☾"},
	{ID: "valkyrie", Name: "Valkyrie", Glyph: "⚔"},
}

// Avatars returns the avatar catalog in display order.
func Avatars() []Avatar {
	out := make([]Avatar, len(avatars))
	copy(out, avatars)
	return out
}

// LookupAvatar finds an avatar by id (case-insensitive).
func LookupAvatar(id string) (Avatar, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, a := range avatars {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}

// NormalizeName trims the name and checks its length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < MinNameLen || n > MaxNameLen {
		return "", ErrInvalidName
	}
	return name, nil
}

// NewPlayer creates a player with a freshly generated id.
func NewPlayer(name, avatarID string) (Player, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return Player{}, err
	}
	avatar, ok := LookupAvatar(avatarID)
	if !ok {
		return Player{}, fmt.Errorf("%w: %q", ErrUnknownAvatar, avatarID)
	}
	return Player{
		ID:     uuid.New().String(),
		Name:   name,
		Avatar: avatar,
	}, nil
}
