// Package multiplayer layers room play on top of the room client: the
// optimistic local state and the last synced remote state kept side by
// side, an in-flight guard for pushes, and event delivery to the shell.
package multiplayer

import "github.com/vovakirdan/tui-portal/internal/identity"

// SessionID uniquely identifies a player's session (a terminal or an SSH connection).
type SessionID string

// Role is a participant's part in a room.
type Role int

const (
	RoleNone  Role = iota
	RoleHost       // created the room; starts the game
	RoleGuest      // joined by code
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleHost:
		return "Host"
	case RoleGuest:
		return "Guest"
	default:
		return "None"
	}
}

// Participant is a player as stored inside a room state.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ParticipantOf converts the local player for a room state.
func ParticipantOf(p identity.Player) Participant {
	return Participant{ID: p.ID, Name: p.Name, Avatar: p.Avatar.ID}
}

// IndexOf returns the position of id in ps, or -1.
func IndexOf(ps []Participant, id string) int {
	for i, p := range ps {
		if p.ID == id {
			return i
		}
	}
	return -1
}
