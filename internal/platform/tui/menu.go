package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Online bool
}

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceOnline
	MenuChoiceScoreboard
	MenuChoiceProfile
	MenuChoiceQuit
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	player    identity.Player
	keyMapper *KeyMapper
	notice    string
	choice    MenuChoice
}

// NewMenuModel creates a new menu model for player, which may be zero.
func NewMenuModel(player identity.Player, width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Online: g.Online,
		})
	}

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		player:    player,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.choice = MenuChoicePlay
		}

	case MenuActionOnline:
		if len(m.items) == 0 {
			break
		}
		if !m.items[m.cursor].Online {
			m.notice = m.items[m.cursor].Title + " has no online mode"
			break
		}
		m.choice = MenuChoiceOnline

	case MenuActionScoreboard:
		m.choice = MenuChoiceScoreboard

	case MenuActionProfile:
		m.choice = MenuChoiceProfile
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("G A M E   P O R T A L", m.width)))
	b.WriteString("\n\n")

	who := "Not logged in. Press P to pick a name and avatar."
	if !m.player.IsZero() {
		who = "Playing as " + m.player.String()
	}
	b.WriteString(centerText(who, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mode := ""
		if item.Online {
			mode = " (online)"
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-16s%s", cursor, item.Title, mode), m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(centerText(m.notice, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  O: Online  |  Tab: Scores  |  P: Profile  |  Q: Quit"
	b.WriteString(helpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Selected returns the game under the cursor.
func (m MenuModel) Selected() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}
