// Package tui provides the Bubble Tea shell of the portal: the game picker,
// the login screen, the online lobby and the game view. It maps keys to
// game inputs, runs wake timers and delivers room events to online games.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
)

// generation numbers game views so messages scheduled by a view that was
// left are dropped by the next one.
var generation atomic.Int64

func nextGeneration() int64 { return generation.Add(1) }

// WakeMsg is sent when a game wake is due.
type WakeMsg struct {
	Gen   int64
	Token uint64
}

// wakeCmd delivers w after its delay. A wake the game has since replaced
// carries an old token and is ignored by the game.
func wakeCmd(gen int64, w core.Wake) tea.Cmd {
	return tea.Tick(w.After, func(time.Time) tea.Msg {
		return WakeMsg{Gen: gen, Token: w.Token}
	})
}

// RoomEventMsg carries one room event to the game view.
type RoomEventMsg struct {
	Gen   int64
	Event multiplayer.SessionEvent
}

// waitForEvent returns a command that waits for the next room event, or
// returns nil once the view stops listening or delivery ends.
func waitForEvent(gen int64, events <-chan multiplayer.SessionEvent, done, stop <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-events:
			return RoomEventMsg{Gen: gen, Event: evt}
		case <-done:
			return nil
		case <-stop:
			return nil
		}
	}
}
