package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/registry"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

// GameModel is the Bubble Tea model for one running game, solo or online.
type GameModel struct {
	game   registry.Game
	online registry.OnlineGame // nil for solo play
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger
	keys   *KeyMapper

	frame  *core.Frame
	input  textinput.Model
	state  core.GameState
	hint   string
	cursor int

	gen     int64 // bumped on restart so wakes of the old session drop
	roomGen int64
	wake    uint64 // token of the scheduled, undelivered wake; 0 when none
	stop    chan struct{}

	width      int
	height     int
	scoreSaved bool // Whether score has been saved for current game over
	left       bool
	backToMenu bool
	quitting   bool
}

// NewGameModel starts a solo session of game for cfg.Player.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	return newGameModel(game, nil, store, cfg, logger)
}

// NewOnlineGameModel wraps an online game that already hosts or joined a
// room. The game is not reset.
func NewOnlineGameModel(game registry.OnlineGame, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	return newGameModel(game, game, store, cfg, logger)
}

func newGameModel(game registry.Game, online registry.OnlineGame, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	in := textinput.New()
	in.Prompt = "> "
	in.Focus()

	m := GameModel{
		game:   game,
		online: online,
		store:  store,
		config: cfg,
		logger: logger.With("game", game.ID()),
		keys:   NewKeyMapper(),
		frame:  core.NewFrame(),
		input:  in,
		state:  game.State(),
		gen:    nextGeneration(),
		stop:   make(chan struct{}),
	}
	m.roomGen = m.gen
	if w, ok := game.Wake(); ok {
		m.wake = w.Token // scheduled by Init
	}
	m.syncControls()
	return m
}

// Init schedules the first wake and starts listening for room events.
func (m GameModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if w, ok := m.game.Wake(); ok {
		cmds = append(cmds, wakeCmd(m.gen, w))
	}
	if m.online != nil {
		cmds = append(cmds, waitForEvent(m.roomGen, m.online.Events(), m.online.Done(), m.stop))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case WakeMsg:
		if msg.Gen != m.gen || m.left {
			return m, nil
		}
		if msg.Token == m.wake {
			m.wake = 0
		}
		return m.apply(core.WakeInput(msg.Token))

	case RoomEventMsg:
		if msg.Gen != m.roomGen || m.left || m.online == nil {
			return m, nil
		}
		m.online.Handle(msg.Event)
		m.state = m.game.State()
		m.syncControls()
		m.saveIfOver()
		return m, tea.Batch(m.schedule(), waitForEvent(m.roomGen, m.online.Events(), m.online.Done(), m.stop))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey maps a key to a game input according to the game's controls.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctl := m.game.Controls()
	action := m.keys.MapGameKey(msg, ctl.Kind)

	switch action {
	case GameActionQuit:
		m.leave()
		m.quitting = true
		return m, nil
	case GameActionBack:
		m.leave()
		m.backToMenu = true
		return m, nil
	}
	if m.state.GameOver() && (action == GameActionRestart || action == GameActionConfirm) {
		return m.restart()
	}

	switch ctl.Kind {
	case core.ControlsGrid:
		if slot, ok := DigitSlot(msg, ctl.Count); ok {
			m.cursor = slot
			return m.apply(core.Select(slot))
		}
		switch action {
		case GameActionUp, GameActionDown, GameActionLeft, GameActionRight:
			m.cursor = MoveCursor(m.cursor, ctl, action)
		case GameActionConfirm:
			return m.apply(core.Select(m.cursor))
		}

	case core.ControlsYesNo:
		switch action {
		case GameActionYes:
			return m.apply(core.Answer(true))
		case GameActionNo:
			return m.apply(core.Answer(false))
		}

	case core.ControlsStart:
		if action == GameActionConfirm {
			return m.apply(core.Start())
		}

	case core.ControlsText:
		if action == GameActionConfirm && !ctl.Live {
			return m.apply(core.Text(m.input.Value()))
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if ctl.Live && m.input.Value() != before {
			next, applied := m.apply(core.Text(m.input.Value()))
			return next, tea.Batch(cmd, applied)
		}
		return m, cmd
	}

	return m, nil
}

// apply feeds in to the game and follows up on the result.
func (m GameModel) apply(in core.Input) (tea.Model, tea.Cmd) {
	if in.At.IsZero() {
		in.At = time.Now()
	}
	ctl := m.game.Controls()
	res := m.game.Apply(in)
	m.state = res.State
	if res.Accepted || in.Kind != core.InputWake {
		m.hint = res.State.Hint
	}
	if res.Accepted && ctl.Kind == core.ControlsText && !ctl.Live {
		m.input.Reset()
	}
	m.syncControls()
	m.saveIfOver()
	return m, m.schedule()
}

// restart begins a new session of the same game with a fresh seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.hint = ""
	m.cursor = 0
	m.scoreSaved = false
	m.input.Reset()
	m.gen = nextGeneration()
	m.wake = 0
	m.syncControls()
	return m, m.schedule()
}

// schedule starts a timer for the game's pending wake unless that wake is
// already scheduled.
func (m *GameModel) schedule() tea.Cmd {
	w, ok := m.game.Wake()
	if !ok || w.Token == m.wake {
		return nil
	}
	m.wake = w.Token
	return wakeCmd(m.gen, w)
}

// syncControls keeps the cursor on the grid and the editor's limit in step
// with the game's current controls.
func (m *GameModel) syncControls() {
	ctl := m.game.Controls()
	if ctl.Kind == core.ControlsGrid && ctl.Count > 0 && m.cursor >= ctl.Count {
		m.cursor = ctl.Count - 1
	}
	if ctl.Kind == core.ControlsText {
		m.input.CharLimit = ctl.MaxLen
		m.input.Placeholder = ctl.Prompt
	}
}

// saveIfOver records the score once when the game reaches its end.
func (m *GameModel) saveIfOver() {
	if m.state.GameOver() {
		m.saveScore()
	}
}

func (m *GameModel) saveScore() {
	if m.scoreSaved || m.state.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.config.Player, m.state.Score); err != nil {
		m.logger.Warn("could not save score", "err", err)
		return
	}
	m.logger.Info("score saved", "player", m.config.Player.ID, "score", m.state.Score)
}

// leave stops timers and room traffic. Endless games save their score here.
func (m *GameModel) leave() {
	if m.left {
		return
	}
	m.left = true
	if e, ok := m.game.(registry.Endless); ok && e.Endless() {
		m.saveScore()
	}
	close(m.stop)
	if m.online != nil {
		m.online.Close()
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	header := m.game.Title()
	if !m.config.Player.IsZero() {
		header += "  ·  " + m.config.Player.String()
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	m.game.Render(m.frame)
	ctl := m.game.Controls()
	cursor := -1
	if ctl.Kind == core.ControlsGrid {
		cursor = m.cursor
	}
	b.WriteString(boxStyle.Render(RenderFrame(m.frame, cursor)))
	b.WriteString("\n")

	if ctl.Kind == core.ControlsText {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine(ctl)))
	return b.String()
}

func (m GameModel) helpLine(ctl core.Controls) string {
	if m.state.GameOver() {
		msg := "Enter/R: play again  |  Esc: menu"
		if m.state.Score > 0 {
			msg = fmt.Sprintf("Final score %d  |  %s", m.state.Score, msg)
		}
		return msg
	}
	switch ctl.Kind {
	case core.ControlsGrid:
		return "Arrows: move  |  Enter or 1-9: choose  |  Esc: menu"
	case core.ControlsYesNo:
		return "Y: prime  |  N: not prime  |  Esc: menu"
	case core.ControlsStart:
		return "Enter: start  |  Esc: leave"
	case core.ControlsText:
		if ctl.Live {
			return "Type the phrase  |  Esc: menu"
		}
		return "Enter: submit  |  Esc: menu"
	}
	return "Esc: menu  |  Ctrl+C: quit"
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.state
}
