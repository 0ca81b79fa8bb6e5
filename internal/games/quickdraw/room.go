package quickdraw

import (
	"errors"
	"maps"
	"slices"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
)

var (
	// ErrNotHost rejects a start from anyone but the host.
	ErrNotHost = errors.New("only the host can start")
	// ErrNeedPlayers rejects a start before a second player joined.
	ErrNeedPlayers = errors.New("waiting for another player")
)

// RoomState is the document shared through the room store. Every player
// answers the same pictures in Order at their own pace and writes their
// running score into Scores.
type RoomState struct {
	Players  []multiplayer.Participant `json:"players"`
	HostID   string                    `json:"hostId"`
	Status   core.Status               `json:"status"`
	Order    []int                     `json:"order"`
	Scores   map[string]int            `json:"scores"`
	Finished []string                  `json:"finished"`
}

// NewRoom opens a lobby hosted by p.
func NewRoom(p identity.Player) RoomState {
	return RoomState{
		Players: []multiplayer.Participant{multiplayer.ParticipantOf(p)},
		HostID:  p.ID,
		Status:  core.StatusLobby,
		Scores:  map[string]int{p.ID: 0},
	}
}

// clone copies the slices and the map so a mutation never touches the
// state it was derived from.
func (rs RoomState) clone() RoomState {
	rs.Players = slices.Clone(rs.Players)
	rs.Order = slices.Clone(rs.Order)
	rs.Scores = maps.Clone(rs.Scores)
	rs.Finished = slices.Clone(rs.Finished)
	if rs.Scores == nil {
		rs.Scores = make(map[string]int)
	}
	return rs
}

// Admit adds p with a zero score. Players already present are unchanged.
func Admit(p identity.Player) func(RoomState) (RoomState, bool) {
	return func(rs RoomState) (RoomState, bool) {
		if multiplayer.IndexOf(rs.Players, p.ID) >= 0 {
			return rs, false
		}
		rs = rs.clone()
		rs.Players = append(rs.Players, multiplayer.ParticipantOf(p))
		rs.Scores[p.ID] = 0
		return rs, true
	}
}

// HasFinished reports whether playerID completed every round.
func (rs RoomState) HasFinished(playerID string) bool {
	return slices.Contains(rs.Finished, playerID)
}

// CanStart checks whether playerID may start the match.
func (rs RoomState) CanStart(playerID string) error {
	switch {
	case rs.Status != core.StatusLobby:
		return core.ErrGameOver
	case playerID != rs.HostID:
		return ErrNotHost
	case len(rs.Players) < 2:
		return ErrNeedPlayers
	}
	return nil
}

// Start moves the lobby to playing with order, zeroing every score.
func Start(playerID string, order []int) func(RoomState) (RoomState, bool) {
	return func(rs RoomState) (RoomState, bool) {
		if rs.CanStart(playerID) != nil {
			return rs, false
		}
		rs = rs.clone()
		rs.Status = core.StatusPlaying
		rs.Order = slices.Clone(order)
		rs.Finished = nil
		for _, p := range rs.Players {
			rs.Scores[p.ID] = 0
		}
		return rs, true
	}
}

// Record writes playerID's score into the latest room state, leaving
// every other player's entry as it is there. When done is set the player
// is marked finished, and the room finishes once everyone is.
func Record(playerID string, score int, done bool) func(RoomState) (RoomState, bool) {
	return func(rs RoomState) (RoomState, bool) {
		if rs.Status != core.StatusPlaying {
			return rs, false
		}
		cur, ok := rs.Scores[playerID]
		markDone := done && !rs.HasFinished(playerID)
		if ok && cur == score && !markDone {
			return rs, false
		}
		rs = rs.clone()
		rs.Scores[playerID] = score
		if markDone {
			rs.Finished = append(rs.Finished, playerID)
		}
		if len(rs.Finished) >= len(rs.Players) {
			rs.Status = core.StatusFinished
		}
		return rs, true
	}
}

// Rematch sends a finished room back to the lobby with the same players.
func Rematch(playerID string) func(RoomState) (RoomState, bool) {
	return func(rs RoomState) (RoomState, bool) {
		if rs.Status != core.StatusFinished || playerID != rs.HostID {
			return rs, false
		}
		rs = rs.clone()
		rs.Status = core.StatusLobby
		rs.Order = nil
		rs.Finished = nil
		for id := range rs.Scores {
			rs.Scores[id] = 0
		}
		return rs, true
	}
}

// Standings returns the players ordered by score, highest first.
func (rs RoomState) Standings() []multiplayer.Participant {
	out := slices.Clone(rs.Players)
	slices.SortStableFunc(out, func(a, b multiplayer.Participant) int {
		return rs.Scores[b.ID] - rs.Scores[a.ID]
	})
	return out
}
