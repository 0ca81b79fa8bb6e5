package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-portal/internal/games/tictactoe"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

func TestStandingsKeepBestPerPlayer(t *testing.T) {
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []storage.ScoreEntry{
		{PlayerID: "p-ada", PlayerName: "Ada", Score: 30, CreatedAt: day},
		{PlayerID: "p-grace", PlayerName: "Grace", Score: 30, CreatedAt: day},
		{PlayerID: "p-grace", PlayerName: "Grace H", Score: 10, CreatedAt: day.Add(time.Hour)},
		{PlayerID: "p-ada", PlayerName: "Ada", Score: 50, CreatedAt: day.Add(-time.Hour)},
		{Score: 5, CreatedAt: day},
	}

	want := []standing{
		{PlayerID: "p-ada", Name: "Ada", Best: 50, Plays: 2, Last: day},
		{PlayerID: "p-grace", Name: "Grace H", Best: 30, Plays: 2, Last: day.Add(time.Hour)},
		{Name: "anonymous", Best: 5, Plays: 1, Last: day},
	}
	if diff := cmp.Diff(want, standings(entries)); diff != "" {
		t.Errorf("standings mismatch (-want +got):\n%s", diff)
	}
}

func newBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir() + "/portal.db")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// onGame points the scoreboard at gameID.
func onGame(t *testing.T, m ScoreboardModel, gameID string) ScoreboardModel {
	t.Helper()
	for i, g := range m.games {
		if g.ID == gameID {
			m.game = i
			m.reload()
			return m
		}
	}
	t.Fatalf("game %q is not registered", gameID)
	return m
}

func TestScoreboardPages(t *testing.T) {
	store := newBoardStore(t)
	grace := identity.Player{ID: "p-grace", Name: "Grace"}
	for _, s := range []struct {
		p     identity.Player
		score int
	}{{ada, 10}, {ada, 40}, {grace, 20}} {
		if _, err := store.SaveScore(tictactoe.ID, s.p, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if err := store.RecordRoom(storage.RoomEntry{RoomID: "QX7K2P", GameID: tictactoe.ID, PlayerID: ada.ID, Host: true}); err != nil {
		t.Fatalf("RecordRoom() failed: %v", err)
	}

	m := onGame(t, NewScoreboardModel(store, 100, 30), tictactoe.ID)
	if got := len(m.table.Rows()); got != 3 {
		t.Errorf("best scores page has %d rows, want 3", got)
	}
	if top := m.table.Rows()[0]; top[1] != "Ada" || top[2] != "40" {
		t.Errorf("top row = %v, want Ada with 40", top)
	}
	if !strings.Contains(m.View(), "3 plays, best 40") {
		t.Errorf("view lacks the game summary:\n%s", m.View())
	}

	tab := tea.KeyMsg{Type: tea.KeyTab}
	next, _ := m.Update(tab)
	m = next.(ScoreboardModel)
	if m.tab != tabStandings {
		t.Fatalf("tab = %v, want standings", m.tab)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][0] != "Ada" || rows[0][2] != "2" {
		t.Errorf("standings rows = %v, want Ada first with 2 plays", rows)
	}

	next, _ = m.Update(tab)
	m = next.(ScoreboardModel)
	if m.tab != tabRooms {
		t.Fatalf("tab = %v, want rooms", m.tab)
	}
	view := m.View()
	for _, want := range []string{"QX7K2P", tictactoe.Title, "host"} {
		if !strings.Contains(view, want) {
			t.Errorf("rooms page lacks %q:\n%s", want, view)
		}
	}

	next, _ = m.Update(tab)
	if next.(ScoreboardModel).tab != tabBest {
		t.Error("tab did not wrap back to best scores")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "without a database") {
		t.Errorf("view = %q, want the no-database notice", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("IsGoingBack = %v, IsQuitting = %v after esc", m.IsGoingBack(), m.IsQuitting())
	}
}
