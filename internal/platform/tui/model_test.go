package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/games/tictactoe"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

var ada = identity.Player{ID: "p-ada", Name: "Ada"}

func press(t *testing.T, m GameModel, keys ...tea.KeyMsg) GameModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(GameModel)
	}
	return m
}

func newTicTacToe(store *storage.Store) GameModel {
	return NewGameModel(tictactoe.New(), store, core.RuntimeConfig{Seed: 1, Player: ada}, nil)
}

func TestGameModelDigitsPlaceMarks(t *testing.T) {
	m := press(t, newTicTacToe(nil), runeKey("5"))
	if m.State().Moves != 1 {
		t.Fatalf("Moves = %d, want 1", m.State().Moves)
	}
	if m.cursor != 4 {
		t.Errorf("cursor = %d, want 4", m.cursor)
	}

	m = press(t, m, runeKey("5"))
	if m.State().Moves != 1 {
		t.Errorf("occupied cell accepted, Moves = %d", m.State().Moves)
	}
	if m.hint == "" {
		t.Error("rejected move left no hint")
	}
}

func TestGameModelCursorAndEnter(t *testing.T) {
	m := press(t, newTicTacToe(nil),
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.cursor != 4 || m.State().Moves != 1 {
		t.Errorf("cursor = %d, Moves = %d; want 4, 1", m.cursor, m.State().Moves)
	}
}

func TestGameModelWinThenRestart(t *testing.T) {
	// X: 1 2 3 (top row), O: 4 5
	m := press(t, newTicTacToe(nil),
		runeKey("1"), runeKey("4"), runeKey("2"), runeKey("5"), runeKey("3"))
	st := m.State()
	if !st.GameOver() || st.Winner != "X" {
		t.Fatalf("state = %+v, want X to win", st)
	}
	if got := m.game.Controls().Kind; got != core.ControlsNone {
		t.Errorf("controls after the win = %v, want none", got)
	}

	m = press(t, m, runeKey("r"))
	if m.State().GameOver() || m.State().Moves != 0 {
		t.Errorf("restart left state %+v", m.State())
	}
}

func TestGameModelEscReturnsToMenu(t *testing.T) {
	m := press(t, newTicTacToe(nil), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("BackToMenu = %v, IsQuitting = %v", m.BackToMenu(), m.IsQuitting())
	}

	// Messages after leaving are ignored.
	next, cmd := m.Update(WakeMsg{Gen: m.gen, Token: 1})
	if cmd != nil || next.(GameModel).State().Moves != 0 {
		t.Error("wake delivered after leaving")
	}
}

func TestStaleGenerationWakeIsDropped(t *testing.T) {
	m := newTicTacToe(nil)
	next, cmd := m.Update(WakeMsg{Gen: m.gen - 1, Token: 1})
	if cmd != nil {
		t.Error("stale wake scheduled a command")
	}
	if next.(GameModel).hint != "" {
		t.Error("stale wake produced a hint")
	}
}

func TestRoomEventWaitEndsWithDelivery(t *testing.T) {
	handle := multiplayer.NewChannelSession("conn", 4)
	handle.Send(multiplayer.SyncErrorEvent{Message: "offline"})

	msg := waitForEvent(3, handle.Events(), handle.Done(), nil)()
	got, ok := msg.(RoomEventMsg)
	if !ok || got.Gen != 3 {
		t.Fatalf("waitForEvent() = %#v, want RoomEventMsg for generation 3", msg)
	}

	handle.Close()
	if msg := waitForEvent(3, handle.Events(), handle.Done(), nil)(); msg != nil {
		t.Errorf("waitForEvent() after Close = %#v, want nil", msg)
	}
}

func TestFinishedGameIsSavedOnce(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/portal.db")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTicTacToe(store)
	m.state.Score = 10
	m.state.Phase = core.PhaseTerminal
	m.saveIfOver()
	m.saveIfOver()

	scores, err := store.TopScores(tictactoe.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 10 || scores[0].PlayerID != ada.ID {
		t.Errorf("scores = %+v, want one 10 by %s", scores, ada.ID)
	}
}
