package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-portal/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapGameKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		kind core.ControlsKind
		want GameAction
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ControlsGrid, GameActionQuit},
		{"esc backs out of text", tea.KeyMsg{Type: tea.KeyEsc}, core.ControlsText, GameActionBack},
		{"enter confirms text", tea.KeyMsg{Type: tea.KeyEnter}, core.ControlsText, GameActionConfirm},
		{"letters belong to the editor", runeKey("q"), core.ControlsText, GameActionNone},
		{"q quits a grid", runeKey("q"), core.ControlsGrid, GameActionQuit},
		{"arrow moves", tea.KeyMsg{Type: tea.KeyLeft}, core.ControlsGrid, GameActionLeft},
		{"vim down", runeKey("j"), core.ControlsGrid, GameActionDown},
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ControlsStart, GameActionConfirm},
		{"r restarts", runeKey("r"), core.ControlsNone, GameActionRestart},
		{"y answers yes", runeKey("y"), core.ControlsYesNo, GameActionYes},
		{"n answers no", runeKey("n"), core.ControlsYesNo, GameActionNo},
		{"y means nothing on a grid", runeKey("y"), core.ControlsGrid, GameActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapGameKey(tt.msg, tt.kind); got != tt.want {
				t.Errorf("MapGameKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestDigitSlot(t *testing.T) {
	tests := []struct {
		key   string
		count int
		want  int
		ok    bool
	}{
		{"1", 9, 0, true},
		{"9", 9, 8, true},
		{"7", 7, 6, true},
		{"8", 7, 0, false},
		{"0", 9, 0, false},
		{"x", 9, 0, false},
	}
	for _, tt := range tests {
		got, ok := DigitSlot(runeKey(tt.key), tt.count)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DigitSlot(%q, %d) = %d, %v; want %d, %v", tt.key, tt.count, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMoveCursor(t *testing.T) {
	grid := core.Grid(9, 3)
	ragged := core.Grid(7, 3) // last row holds one slot

	tests := []struct {
		name   string
		cursor int
		c      core.Controls
		a      GameAction
		want   int
	}{
		{"right within row", 0, grid, GameActionRight, 1},
		{"right wraps the row", 2, grid, GameActionRight, 0},
		{"left wraps the row", 3, grid, GameActionLeft, 5},
		{"up stops at the top", 1, grid, GameActionUp, 1},
		{"down", 1, grid, GameActionDown, 4},
		{"down stops at the bottom", 7, grid, GameActionDown, 7},
		{"down into a short row", 3, ragged, GameActionDown, 6},
		{"down blocked by a short row", 4, ragged, GameActionDown, 4},
		{"short row wraps onto itself", 6, ragged, GameActionRight, 6},
		{"columns", 6, core.Columns(7), GameActionRight, 0},
		{"empty grid", 3, core.Controls{Kind: core.ControlsGrid}, GameActionRight, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveCursor(tt.cursor, tt.c, tt.a); got != tt.want {
				t.Errorf("MoveCursor(%d) = %d, want %d", tt.cursor, got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("o"), MenuActionOnline},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("p"), MenuActionProfile},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
