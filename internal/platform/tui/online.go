package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-portal/internal/registry"
	"github.com/vovakirdan/tui-portal/internal/roomsync"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

// lobbyTimeout bounds one create or join request.
const lobbyTimeout = 15 * time.Second

// OnlineState represents the current state of the online room flow.
type OnlineState int

const (
	OnlineStateChooseMode    OnlineState = iota // Choose Host or Join
	OnlineStateJoinEnterCode                    // Entering join code
	OnlineStateWorking                          // Create or join request in flight
	OnlineStateInRoom                           // Room entered; the game takes over
)

// lobbyResultMsg reports the outcome of a create or join request.
type lobbyResultMsg struct {
	code string
	host bool
	err  error
}

// OnlineLobbyModel creates or joins a room for an online game. The game
// must already be Reset for the local player.
type OnlineLobbyModel struct {
	state   OnlineState
	game    registry.OnlineGame
	store   *storage.Store
	player  string
	logger  *log.Logger
	code    textinput.Model
	spinner spinner.Model
	err     string
	width   int

	roomCode   string
	backToMenu bool
}

// NewOnlineLobbyModel creates a new online lobby model. A non-empty
// joinCode joins that room straight away.
func NewOnlineLobbyModel(game registry.OnlineGame, store *storage.Store, playerID string, logger *log.Logger, width int, joinCode string) OnlineLobbyModel {
	if logger == nil {
		logger = log.Default()
	}
	code := textinput.New()
	code.Placeholder = "ROOM CODE"
	code.CharLimit = 32
	code.Prompt = "Code: "

	m := OnlineLobbyModel{
		state:   OnlineStateChooseMode,
		game:    game,
		store:   store,
		player:  playerID,
		logger:  logger.With("game", game.ID()),
		code:    code,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   width,
	}
	if joinCode != "" {
		m.code.SetValue(joinCode)
		m.state = OnlineStateWorking
	}
	return m
}

// Init starts a pending join, if one was requested.
func (m OnlineLobbyModel) Init() tea.Cmd {
	if m.state == OnlineStateWorking {
		return tea.Batch(m.spinner.Tick, m.join(m.code.Value()))
	}
	return nil
}

func (m OnlineLobbyModel) host() tea.Cmd {
	g := m.game
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lobbyTimeout)
		defer cancel()
		code, err := g.Host(ctx)
		return lobbyResultMsg{code: code, host: true, err: err}
	}
}

func (m OnlineLobbyModel) join(code string) tea.Cmd {
	g := m.game
	code = strings.ToUpper(strings.TrimSpace(code))
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lobbyTimeout)
		defer cancel()
		err := g.Join(ctx, code)
		return lobbyResultMsg{code: g.RoomCode(), err: err}
	}
}

// Update handles messages.
func (m OnlineLobbyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if m.state != OnlineStateWorking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case lobbyResultMsg:
		return m.handleResult(msg)
	}

	if m.state == OnlineStateJoinEnterCode {
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m OnlineLobbyModel) handleResult(msg lobbyResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("room request failed", "host", msg.host, "err", msg.err)
		m.err = describeRoomErr(msg.err)
		if msg.host {
			m.state = OnlineStateChooseMode
		} else {
			m.state = OnlineStateJoinEnterCode
			m.code.Focus()
		}
		return m, nil
	}

	m.logger.Info("entered room", "room", msg.code, "host", msg.host)
	m.roomCode = msg.code
	m.state = OnlineStateInRoom
	if m.store != nil {
		err := m.store.RecordRoom(storage.RoomEntry{
			RoomID:   msg.code,
			GameID:   m.game.ID(),
			PlayerID: m.player,
			Host:     msg.host,
		})
		if err != nil {
			m.logger.Warn("could not record room", "err", err)
		}
	}
	return m, nil
}

func describeRoomErr(err error) string {
	switch {
	case errors.Is(err, roomsync.ErrRoomNotFound):
		return "No room with that code"
	case errors.Is(err, context.DeadlineExceeded):
		return "The room service did not answer, try again"
	}
	return err.Error()
}

func (m OnlineLobbyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "esc" {
		if m.state == OnlineStateJoinEnterCode {
			m.state = OnlineStateChooseMode
			m.err = ""
			return m, nil
		}
		m.game.Close()
		m.backToMenu = true
		return m, nil
	}

	switch m.state {
	case OnlineStateChooseMode:
		switch key {
		case "h", "H", "1":
			m.state = OnlineStateWorking
			m.err = ""
			return m, tea.Batch(m.spinner.Tick, m.host())
		case "j", "J", "2":
			m.state = OnlineStateJoinEnterCode
			m.err = ""
			m.code.SetValue("")
			m.code.Focus()
			return m, textinput.Blink
		case "b", "q":
			m.game.Close()
			m.backToMenu = true
		}
		return m, nil

	case OnlineStateJoinEnterCode:
		if key == "enter" {
			if strings.TrimSpace(m.code.Value()) == "" {
				m.err = "Enter a room code"
				return m, nil
			}
			m.state = OnlineStateWorking
			m.err = ""
			return m, tea.Batch(m.spinner.Tick, m.join(m.code.Value()))
		}
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the lobby.
func (m OnlineLobbyModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(m.game.Title()+"  ·  online", m.width)))
	b.WriteString("\n\n")

	switch m.state {
	case OnlineStateChooseMode:
		b.WriteString("  [H] Host a new room\n")
		b.WriteString("  [J] Join a room by code\n\n")
		b.WriteString(helpStyle.Render("Esc: back"))
	case OnlineStateJoinEnterCode:
		b.WriteString(m.code.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Enter: join  |  Esc: back"))
	case OnlineStateWorking:
		b.WriteString(m.spinner.View() + " Contacting the room service...")
	case OnlineStateInRoom:
		b.WriteString("Room " + m.roomCode)
	}

	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render(m.err))
	}
	b.WriteString("\n")
	return b.String()
}

// InRoom reports whether a room was created or joined.
func (m OnlineLobbyModel) InRoom() bool {
	return m.state == OnlineStateInRoom
}

// BackToMenu returns true if the player left without entering a room.
func (m OnlineLobbyModel) BackToMenu() bool {
	return m.backToMenu
}

// Game returns the online game the lobby works on.
func (m OnlineLobbyModel) Game() registry.OnlineGame {
	return m.game
}
