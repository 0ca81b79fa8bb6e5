package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
	"github.com/vovakirdan/tui-portal/internal/registry"
	"github.com/vovakirdan/tui-portal/internal/roomsync"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

type screen int

const (
	screenMenu screen = iota
	screenProfile
	screenLobby
	screenGame
	screenScores
)

// AppOptions configures one portal session, local or over SSH.
type AppOptions struct {
	Store    *storage.Store // may be nil; scores and rooms are then not kept
	Identity *identity.Identity
	Config   config.Config
	Seed     int64
	Session  multiplayer.SessionID
	Events   *multiplayer.ChannelSession // room events; nil gives each game its own channel
	Logger   *log.Logger
	Width    int
	Height   int

	// StartGame opens this game directly; leaving it ends the program.
	StartGame string
	Online    bool
	RoomCode  string // join instead of host
}

// App is the top-level model: menu -> profile / lobby -> game -> menu.
type App struct {
	opts    AppOptions
	logger  *log.Logger
	screen  screen
	player  identity.Player
	runtime core.RuntimeConfig

	menu    MenuModel
	profile ProfileModel
	lobby   OnlineLobbyModel
	game    GameModel
	scores  ScoreboardModel

	pending  *pendingGame // waiting for the player to log in
	direct   bool
	quitting bool
	err      error
}

type pendingGame struct {
	id     string
	online bool
}

// NewApp builds the session model. Identity must be set.
func NewApp(opts AppOptions) App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Width == 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Session == "" {
		opts.Session = multiplayer.SessionID(fmt.Sprintf("local-%d", time.Now().UnixNano()))
	}

	m := App{
		opts:   opts,
		logger: opts.Logger,
		direct: opts.StartGame != "",
	}
	p, _, err := opts.Identity.CurrentPlayer()
	if err != nil {
		m.logger.Warn("could not load player", "err", err)
	}
	m.player = p
	m.menu = NewMenuModel(p, opts.Width, opts.Height)
	return m
}

// Init opens the requested game, or shows the menu.
func (m App) Init() tea.Cmd {
	if !m.direct {
		return nil
	}
	return func() tea.Msg { return startMsg{} }
}

// Update routes messages to the current screen and moves between screens.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}
	if _, ok := msg.(startMsg); ok {
		return m.start()
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenLobby:
		return m.updateLobby(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m, nil
}

// startMsg opens StartGame once the program runs.
type startMsg struct{}

func (m App) start() (tea.Model, tea.Cmd) {
	return m.open(pendingGame{id: m.opts.StartGame, online: m.opts.Online})
}

// open starts game g for the current player, asking for a login first.
func (m App) open(g pendingGame) (tea.Model, tea.Cmd) {
	if m.player.IsZero() {
		m.pending = &g
		m.profile = NewProfileModel(m.opts.Identity, m.opts.Width)
		m.screen = screenProfile
		return m, m.profile.Init()
	}
	m.pending = nil
	m.runtime = core.RuntimeConfig{
		Seed:   m.opts.Seed,
		Player: m.player,
		Games:  m.opts.Config.Games,
	}

	if !g.online {
		game, err := registry.Create(g.id)
		if err != nil {
			return m.fail(err)
		}
		m.logger.Info("starting game", "game", g.id, "player", m.player.ID)
		m.game = NewGameModel(game, m.opts.Store, m.runtime, m.logger)
		m.screen = screenGame
		return m, m.game.Init()
	}

	og, err := registry.CreateOnline(g.id, m.onlineEnv())
	if err != nil {
		return m.fail(err)
	}
	og.Reset(m.runtime)
	code := ""
	if m.direct {
		code = m.opts.RoomCode
	}
	m.lobby = NewOnlineLobbyModel(og, m.opts.Store, m.player.ID, m.logger, m.opts.Width, code)
	m.screen = screenLobby
	return m, m.lobby.Init()
}

func (m App) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("cannot open game", "err", err)
	m.err = err
	if m.direct {
		m.quitting = true
		return m, tea.Quit
	}
	m.screen = screenMenu
	m.menu.notice = err.Error()
	return m, nil
}

func (m App) onlineEnv() registry.OnlineEnv {
	rooms := m.opts.Config.Rooms
	return registry.OnlineEnv{
		Rooms: roomsync.Options{
			BaseURL:        rooms.BaseURL,
			PollInterval:   rooms.PollInterval,
			RequestTimeout: rooms.RequestTimeout,
			Logger:         m.logger,
		},
		Session: m.opts.Session,
		Events:  m.opts.Events,
		Logger:  m.logger,
	}
}

// toMenu returns to the picker, or ends the program for a direct game.
func (m App) toMenu() (tea.Model, tea.Cmd) {
	if m.direct {
		m.quitting = true
		return m, tea.Quit
	}
	m.menu = NewMenuModel(m.player, m.opts.Width, m.opts.Height)
	m.screen = screenMenu
	return m, nil
}

func (m App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuChoicePlay, MenuChoiceOnline:
		online := m.menu.Choice() == MenuChoiceOnline
		m.menu.choice = MenuChoiceNone
		item, ok := m.menu.Selected()
		if !ok {
			return m, nil
		}
		return m.open(pendingGame{id: item.GameID, online: online})
	case MenuChoiceScoreboard:
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Width, m.opts.Height)
		m.screen = screenScores
		return m, m.scores.Init()
	case MenuChoiceProfile:
		m.profile = NewProfileModel(m.opts.Identity, m.opts.Width)
		m.screen = screenProfile
		return m, m.profile.Init()
	}
	return m, cmd
}

func (m App) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.profile.Update(msg)
	m.profile = next.(ProfileModel)
	if !m.profile.Done() {
		return m, cmd
	}

	m.player = m.profile.Player()
	if m.pending != nil && !m.player.IsZero() {
		return m.open(*m.pending)
	}
	m.pending = nil
	return m.toMenu()
}

func (m App) updateLobby(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.lobby.Update(msg)
	m.lobby = next.(OnlineLobbyModel)

	switch {
	case m.lobby.BackToMenu():
		return m.toMenu()
	case m.lobby.InRoom():
		m.game = NewOnlineGameModel(m.lobby.Game(), m.opts.Store, m.runtime, m.logger)
		m.screen = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current screen.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenProfile:
		return m.profile.View()
	case screenLobby:
		return m.lobby.View()
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Err returns the error that ended a direct game, if any.
func (m App) Err() error {
	return m.err
}

// Run runs a portal session on the local terminal until the player quits.
func Run(opts AppOptions) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if a, ok := final.(App); ok && a.Err() != nil {
		return a.Err()
	}
	return nil
}
