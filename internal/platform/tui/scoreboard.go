package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-portal/internal/registry"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

const (
	scoreLimit = 100
	roomLimit  = 20
	dateLayout = "Jan 02 15:04"
)

// boardTab is one page of the scoreboard.
type boardTab int

const (
	tabBest boardTab = iota
	tabStandings
	tabRooms
	tabCount
)

func (t boardTab) String() string {
	switch t {
	case tabStandings:
		return "Standings"
	case tabRooms:
		return "Rooms"
	default:
		return "Best scores"
	}
}

type scoreboardKeys struct {
	NextGame key.Binding
	PrevGame key.Binding
	Tab      key.Binding
	Up       key.Binding
	Down     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevGame, k.NextGame, k.Tab, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		NextGame: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev game")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "page")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// standing is one player's record in a game.
type standing struct {
	PlayerID string
	Name     string
	Best     int
	Plays    int
	Last     time.Time
}

// standings folds score entries into one row per player, best score
// first. Entries without a player id are pooled as anonymous.
func standings(entries []storage.ScoreEntry) []standing {
	byPlayer := make(map[string]*standing)
	for _, e := range entries {
		s, ok := byPlayer[e.PlayerID]
		if !ok {
			s = &standing{PlayerID: e.PlayerID, Name: displayName(e.PlayerName), Best: e.Score}
			byPlayer[e.PlayerID] = s
		}
		s.Plays++
		s.Best = max(s.Best, e.Score)
		if e.CreatedAt.After(s.Last) {
			s.Last = e.CreatedAt
			s.Name = displayName(e.PlayerName)
		}
	}

	out := make([]standing, 0, len(byPlayer))
	for _, s := range byPlayer {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Best != out[j].Best {
			return out[i].Best > out[j].Best
		}
		if out[i].Plays != out[j].Plays {
			return out[i].Plays > out[j].Plays
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func displayName(name string) string {
	if name == "" {
		return "anonymous"
	}
	return name
}

// ScoreboardModel shows saved scores per game, player standings and the
// rooms this device has used.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	titles map[string]string
	game   int
	tab    boardTab

	stats *storage.GameStats
	err   error
	table table.Model
	keys  scoreboardKeys
	help  help.Model

	width, height       int
	quitting, goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first game. store may be
// nil, in which case every page explains that nothing is kept.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	games := registry.List()
	titles := make(map[string]string, len(games))
	for _, g := range games {
		titles[g.ID] = g.Title
	}
	m := ScoreboardModel{
		store:  store,
		games:  games,
		titles: titles,
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload rebuilds the table for the current page and game.
func (m *ScoreboardModel) reload() {
	m.stats, m.err = nil, nil
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)),
	)
	m.table.SetStyles(boardTableStyles())
	if m.store == nil {
		return
	}

	rows, err := m.loadRows()
	if err != nil {
		m.err = err
		return
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) columns() []table.Column {
	switch m.tab {
	case tabStandings:
		return []table.Column{
			{Title: "Player", Width: 18},
			{Title: "Best", Width: 8},
			{Title: "Plays", Width: 6},
			{Title: "Last played", Width: 14},
		}
	case tabRooms:
		return []table.Column{
			{Title: "Code", Width: 8},
			{Title: "Game", Width: 16},
			{Title: "Role", Width: 6},
			{Title: "When", Width: 14},
		}
	default:
		return []table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 18},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}
	}
}

func (m *ScoreboardModel) loadRows() ([]table.Row, error) {
	if m.tab == tabRooms {
		return m.roomRows()
	}
	gameID := m.gameID()
	if gameID == "" {
		return nil, nil
	}

	stats, err := m.store.GetGameStats(gameID)
	if err != nil {
		return nil, err
	}
	m.stats = stats
	entries, err := m.store.TopScores(gameID, scoreLimit)
	if err != nil {
		return nil, err
	}

	if m.tab == tabStandings {
		ranked := standings(entries)
		rows := make([]table.Row, len(ranked))
		for i, s := range ranked {
			rows[i] = table.Row{s.Name, strconv.Itoa(s.Best), strconv.Itoa(s.Plays), s.Last.Format(dateLayout)}
		}
		return rows, nil
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{strconv.Itoa(i + 1), displayName(e.PlayerName), strconv.Itoa(e.Score), e.CreatedAt.Format(dateLayout)}
	}
	return rows, nil
}

func (m *ScoreboardModel) roomRows() ([]table.Row, error) {
	rooms, err := m.store.RecentRooms(roomLimit)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(rooms))
	for i, r := range rooms {
		title, ok := m.titles[r.GameID]
		if !ok {
			title = r.GameID
		}
		role := "guest"
		if r.Host {
			role = "host"
		}
		rows[i] = table.Row{r.RoomID, title, role, r.CreatedAt.Format(dateLayout)}
	}
	return rows, nil
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % tabCount
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.stepGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.stepGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// stepGame moves the game selection by delta, wrapping around. The rooms
// page lists every game, so it is left alone.
func (m *ScoreboardModel) stepGame(delta int) {
	if len(m.games) == 0 || m.tab == tabRooms {
		return
	}
	m.game = (m.game + delta + len(m.games)) % len(m.games)
	m.reload()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("SCOREBOARD"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabBar(), m.width))
	b.WriteString("\n")
	if m.tab != tabRooms && len(m.games) > 0 {
		b.WriteString(centerText(m.gameLine(), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(boardFrame.Render(m.body()), m.width))
	b.WriteString("\n\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabBar() string {
	tabs := make([]string, tabCount)
	for t := boardTab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs[t] = boardActiveTab.Render(t.String())
		} else {
			tabs[t] = boardTabStyle.Render(t.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) gameLine() string {
	line := fmt.Sprintf("< %s >", m.games[m.game].Title)
	if m.stats != nil && m.stats.GamesCount > 0 {
		line += boardHelpStyle.Render(fmt.Sprintf("   %d plays, best %d, last %s",
			m.stats.GamesCount, m.stats.HighScore, m.stats.LastPlayed.Format(dateLayout)))
	}
	return line
}

func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return boardEmpty.Render("Scores are not kept without a database.")
	case m.err != nil:
		return boardEmpty.Render("Could not load: " + m.err.Error())
	case len(m.table.Rows()) > 0:
		return m.table.View()
	case m.tab == tabRooms:
		return boardEmpty.Render("No rooms yet.\nHost or join one from the menu.")
	case len(m.games) == 0:
		return boardEmpty.Render("No games installed.")
	default:
		return boardEmpty.Render(fmt.Sprintf("No scores for %s yet.", m.games[m.game].Title))
	}
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

var (
	boardFrame     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardTabStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 3)
	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func boardTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}
