package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-portal/internal/identity"
)

type profileMode int

const (
	profileView   profileMode = iota // logged in: show the card
	profileLogin                     // name + avatar form
	profileRename                    // name only
)

// ProfileModel logs a player in, renames or logs them out.
type ProfileModel struct {
	id      *identity.Identity
	player  identity.Player
	mode    profileMode
	name    textinput.Model
	avatars []identity.Avatar
	avatar  int
	err     string
	width   int
	done    bool
}

// NewProfileModel opens the profile screen for the identity of one
// profile. With nobody logged in it starts on the login form.
func NewProfileModel(id *identity.Identity, width int) ProfileModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = identity.MaxNameLen
	name.Prompt = "Name: "

	m := ProfileModel{
		id:      id,
		name:    name,
		avatars: identity.Avatars(),
		width:   width,
	}
	p, ok, err := id.CurrentPlayer()
	if err != nil {
		m.err = err.Error()
	}
	if ok {
		m.player = p
		m.mode = profileView
	} else {
		m.startLogin()
	}
	return m
}

func (m *ProfileModel) startLogin() {
	m.mode = profileLogin
	m.name.SetValue("")
	m.name.Focus()
}

// Init starts the cursor blinking.
func (m ProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the profile screen.
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m ProfileModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "esc" {
		if m.mode == profileRename {
			m.mode = profileView
			m.err = ""
			return m, nil
		}
		m.done = true
		return m, nil
	}

	switch m.mode {
	case profileView:
		switch key {
		case "r", "n":
			m.mode = profileRename
			m.name.SetValue(m.player.Name)
			m.name.CursorEnd()
			m.name.Focus()
		case "x":
			if err := m.id.Logout(); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.player = identity.Player{}
			m.startLogin()
		case "enter", "b", "q":
			m.done = true
		}
		return m, nil

	case profileLogin:
		switch key {
		case "up":
			m.avatar = (m.avatar - 1 + len(m.avatars)) % len(m.avatars)
			return m, nil
		case "down", "tab":
			m.avatar = (m.avatar + 1) % len(m.avatars)
			return m, nil
		case "enter":
			p, err := m.id.Login(identity.Player{Name: m.name.Value(), Avatar: m.avatars[m.avatar]})
			if err != nil {
				m.err = friendly(err)
				return m, nil
			}
			m.player = p
			m.err = ""
			m.done = true
			return m, nil
		}

	case profileRename:
		if key == "enter" {
			p, err := m.id.Rename(m.name.Value())
			if err != nil {
				m.err = friendly(err)
				return m, nil
			}
			m.player = p
			m.err = ""
			m.mode = profileView
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// friendly strips the package prefix from identity errors.
func friendly(err error) string {
	if errors.Is(err, identity.ErrInvalidName) {
		return "Name must be 1-20 characters"
	}
	return strings.TrimPrefix(err.Error(), "identity: ")
}

// View renders the profile screen.
func (m ProfileModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("P R O F I L E", m.width)))
	b.WriteString("\n\n")

	switch m.mode {
	case profileView:
		card := m.player.Avatar.Glyph + "  " + m.player.Name + "\n" + helpStyle.Render(m.player.Avatar.Name)
		b.WriteString(boxStyle.Render(card))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("R: rename  |  X: log out  |  Esc: back"))

	case profileLogin, profileRename:
		b.WriteString(m.name.View())
		b.WriteString("\n\n")
		if m.mode == profileLogin {
			for i, a := range m.avatars {
				cursor := "  "
				if i == m.avatar {
					cursor = "> "
				}
				b.WriteString(cursor + a.Glyph + " " + a.Name + "\n")
			}
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("Type a name  |  Up/Down: avatar  |  Enter: log in  |  Esc: back"))
		} else {
			b.WriteString(helpStyle.Render("Enter: save  |  Esc: cancel"))
		}
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.err))
	}
	b.WriteString("\n")
	return b.String()
}

// Done reports whether the player left the profile screen.
func (m ProfileModel) Done() bool {
	return m.done
}

// Player returns the logged-in player, zero if nobody is.
func (m ProfileModel) Player() identity.Player {
	return m.player
}
