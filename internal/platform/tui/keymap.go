package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-portal/internal/core"
)

// KeyMapper translates Bubble Tea key messages to menu and game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameAction is a game-screen action derived from input.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionUp
	GameActionDown
	GameActionLeft
	GameActionRight
	GameActionConfirm
	GameActionYes
	GameActionNo
	GameActionRestart
	GameActionBack
	GameActionQuit
)

// MapGameKey translates a key pressed on a game screen. Text controls own
// every printable key, so only Enter, Esc and Ctrl+C map there.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg, kind core.ControlsKind) GameAction {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return GameActionQuit
	case "esc":
		return GameActionBack
	case "enter":
		return GameActionConfirm
	}
	if kind == core.ControlsText {
		return GameActionNone
	}

	switch key {
	case "q":
		return GameActionQuit
	case "b":
		return GameActionBack
	case "r":
		return GameActionRestart
	case " ":
		return GameActionConfirm
	case "w", "up", "k":
		return GameActionUp
	case "s", "down", "j":
		return GameActionDown
	case "a", "left", "h":
		return GameActionLeft
	case "d", "right", "l":
		return GameActionRight
	}
	if kind == core.ControlsYesNo {
		switch key {
		case "y":
			return GameActionYes
		case "n":
			return GameActionNo
		}
	}
	return GameActionNone
}

// DigitSlot maps "1".."9" to slots 0..8 of a grid with count slots.
func DigitSlot(msg tea.KeyMsg, count int) (int, bool) {
	key := msg.String()
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	slot := int(key[0] - '1')
	if slot >= count {
		return 0, false
	}
	return slot, true
}

// MoveCursor moves a grid cursor one step. The cursor stays on the grid;
// horizontal moves wrap within the row.
func MoveCursor(cursor int, c core.Controls, a GameAction) int {
	if c.Count <= 0 || c.Cols <= 0 {
		return 0
	}
	row, col := cursor/c.Cols, cursor%c.Cols
	rowLen := min(c.Cols, c.Count-row*c.Cols)

	switch a {
	case GameActionLeft:
		col = (col - 1 + rowLen) % rowLen
	case GameActionRight:
		col = (col + 1) % rowLen
	case GameActionUp:
		if row > 0 {
			row--
		}
	case GameActionDown:
		if (row+1)*c.Cols+col < c.Count {
			row++
		}
	}
	return min(row*c.Cols+col, c.Count-1)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionOnline
	MenuActionScoreboard
	MenuActionProfile
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "o":
		return MenuActionOnline
	case "tab":
		return MenuActionScoreboard
	case "p":
		return MenuActionProfile
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
