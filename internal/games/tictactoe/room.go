package tictactoe

import (
	"errors"
	"slices"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
)

// ErrSpectator rejects moves from someone who is not seated in the room.
var ErrSpectator = errors.New("you are watching this room")

// RoomState is the document shared through the room store. The host
// plays X and the second participant plays O.
type RoomState struct {
	Board   Board                     `json:"board"`
	XIsNext bool                      `json:"xIsNext"`
	Players []multiplayer.Participant `json:"players"`
	HostID  string                    `json:"hostId"`
}

// NewRoom seeds a room hosted by p.
func NewRoom(p identity.Player) RoomState {
	return RoomState{
		XIsNext: true,
		Players: []multiplayer.Participant{multiplayer.ParticipantOf(p)},
		HostID:  p.ID,
	}
}

// Admit seats p as O when the room has a free seat. A seated player or a
// full room leaves the state unchanged.
func Admit(p identity.Player) func(RoomState) (RoomState, bool) {
	return func(rs RoomState) (RoomState, bool) {
		if multiplayer.IndexOf(rs.Players, p.ID) >= 0 || len(rs.Players) >= 2 {
			return rs, false
		}
		rs.Players = append(slices.Clone(rs.Players), multiplayer.ParticipantOf(p))
		return rs, true
	}
}

// MarkFor returns the mark playerID plays, or Blank for a spectator.
func (rs RoomState) MarkFor(playerID string) Square {
	idx := multiplayer.IndexOf(rs.Players, playerID)
	switch {
	case idx < 0 || idx >= 2:
		return Blank
	case playerID == rs.HostID:
		return X
	default:
		return O
	}
}

// Ready reports whether both seats are taken.
func (rs RoomState) Ready() bool {
	return len(rs.Players) >= 2
}

// Move plays cell idx for playerID. It is rejected before both players are
// seated, after the game ended, out of turn and on a taken cell.
func Move(rs RoomState, playerID string, idx int) (RoomState, error) {
	if !rs.Ready() {
		return rs, core.ErrLobby
	}
	if Judge(rs.Board).Over() {
		return rs, core.ErrGameOver
	}
	mark := rs.MarkFor(playerID)
	if mark == Blank {
		return rs, ErrSpectator
	}
	if mark != Turn(rs.XIsNext) {
		return rs, core.ErrNotYourTurn
	}
	board, err := Place(rs.Board, rs.XIsNext, idx)
	if err != nil {
		return rs, err
	}
	rs.Board = board
	rs.XIsNext = !rs.XIsNext
	return rs, nil
}

// Rematch clears the board and keeps the seats. It only applies to a
// finished game.
func Rematch(rs RoomState) (RoomState, bool) {
	if !Judge(rs.Board).Over() {
		return rs, false
	}
	rs.Board = Board{}
	rs.XIsNext = true
	return rs, true
}

// moves counts the marks on the board.
func (rs RoomState) moves() int {
	n := 0
	for _, sq := range rs.Board {
		if sq != Blank {
			n++
		}
	}
	return n
}
