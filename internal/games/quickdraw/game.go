package quickdraw

import (
	"context"
	"strconv"

	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
	"github.com/vovakirdan/tui-portal/internal/registry"
)

const (
	ID    = "quickdraw"
	Title = "Quick Draw"
)

func init() {
	registry.Register(ID, func() registry.Game { return New() })
	registry.RegisterOnline(ID, func(env registry.OnlineEnv) registry.OnlineGame { return NewOnline(env) })
}

// Game is the solo quiz.
type Game struct {
	state State
}

// New creates a solo game; call Reset before use.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return Title }

// Reset deals new pictures and starts round one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(cfg.Player, cfg.Seed, cfg.Games.WithDefaults().QuickDraw)
}

// Apply answers or advances the clock.
func (g *Game) Apply(in core.Input) core.StepResult {
	next, err := Apply(g.state, in)
	if err != nil {
		return core.Reject(g.state.Summary(), err)
	}
	g.state = next
	return core.Accept(next.Summary())
}

// Controls lists the four options while a round is asking.
func (g *Game) Controls() core.Controls {
	return controls(g.state)
}

func controls(s State) core.Controls {
	if s.Stage != StageAsking || s.Player.IsZero() {
		return core.Controls{Kind: core.ControlsNone}
	}
	return core.Columns(4)
}

// Wake is the countdown or reveal timer.
func (g *Game) Wake() (core.Wake, bool) { return g.state.Timer.Wake() }

func (g *Game) Render(dst *core.Frame) {
	dst.Clear()
	g.state.Render(dst)
}

func (g *Game) State() core.GameState { return g.state.Summary() }

// OnlineGame plays the quiz in a shared room. Rounds run locally; the
// room carries the lobby, the picture order and everyone's score.
type OnlineGame struct {
	player   identity.Player
	seed     int64
	settings config.QuickDrawConfig
	local    State
	room     *multiplayer.RoomSession[RoomState]
}

// NewOnline creates a room game using env to reach the store.
func NewOnline(env registry.OnlineEnv) *OnlineGame {
	return &OnlineGame{
		room: registry.NewRoomSession[RoomState](env),
	}
}

func (g *OnlineGame) ID() string    { return ID }
func (g *OnlineGame) Title() string { return Title }

// Reset returns the local run to the lobby. A host inside a finished room
// also sends the room back to its lobby for a rematch.
func (g *OnlineGame) Reset(cfg core.RuntimeConfig) {
	g.player = cfg.Player
	g.seed = cfg.Seed
	g.settings = cfg.Games.WithDefaults().QuickDraw
	g.local = NewLobby(g.player, g.settings)
	if g.room.Code() != "" {
		g.room.Propose(Rematch(g.player.ID))
	}
}

// Host opens a lobby.
func (g *OnlineGame) Host(ctx context.Context) (string, error) {
	if g.player.IsZero() {
		return "", identity.ErrNotLoggedIn
	}
	return g.room.Create(ctx, NewRoom(g.player))
}

// Join enters a room by code.
func (g *OnlineGame) Join(ctx context.Context, code string) error {
	if g.player.IsZero() {
		return identity.ErrNotLoggedIn
	}
	if _, err := g.room.Join(ctx, code, Admit(g.player)); err != nil {
		return err
	}
	g.follow()
	return nil
}

// Apply handles a host start, an answer or a wake.
func (g *OnlineGame) Apply(in core.Input) core.StepResult {
	if in.Kind == core.InputStart {
		return g.start()
	}
	if in.Kind == core.InputSelect && g.room.Pending() {
		return core.Reject(g.State(), core.ErrBusy)
	}
	next, err := Apply(g.local, in)
	if err != nil {
		return core.Reject(g.State(), err)
	}
	g.local = next
	g.follow()
	return core.Accept(g.State())
}

func (g *OnlineGame) start() core.StepResult {
	switch {
	case g.player.IsZero():
		return core.Reject(g.State(), core.ErrNoPlayer)
	case g.room.Code() == "":
		return core.Reject(g.State(), core.ErrLobby)
	case g.room.Pending():
		return core.Reject(g.State(), core.ErrBusy)
	}
	if err := g.room.Current().CanStart(g.player.ID); err != nil {
		return core.Reject(g.State(), err)
	}
	if !g.room.Propose(Start(g.player.ID, Deal(g.seed, g.settings.Rounds))) {
		return core.Reject(g.State(), core.ErrBusy)
	}
	return core.Accept(g.State())
}

// follow keeps the local run and the room in step: a confirmed start
// begins round one, and the local score is written back whenever it
// differs from the room's copy.
func (g *OnlineGame) follow() {
	if g.player.IsZero() || g.room.Code() == "" {
		return
	}
	confirmed := g.room.Mirror().Remote
	if g.local.Stage == StageLobby && confirmed.Status == core.StatusPlaying &&
		len(confirmed.Order) > 0 && !confirmed.HasFinished(g.player.ID) {
		g.local = Begin(g.local, confirmed.Order)
	}
	if confirmed.Status == core.StatusLobby && g.local.Stage == StageDone {
		lobby := NewLobby(g.player, g.settings)
		lobby.Timer = g.local.Timer // tokens keep growing across matches
		g.local = lobby
	}

	if g.local.Stage == StageLobby || g.room.Pending() {
		return
	}
	cur := g.room.Current()
	done := g.local.Stage == StageDone
	if score, ok := cur.Scores[g.player.ID]; ok && score == g.local.Score && (!done || cur.HasFinished(g.player.ID)) {
		return
	}
	g.room.Propose(Record(g.player.ID, g.local.Score, done))
}

// Events delivers room events.
func (g *OnlineGame) Events() <-chan multiplayer.SessionEvent { return g.room.Events() }

// Done closes when room events stop for good.
func (g *OnlineGame) Done() <-chan struct{} { return g.room.Done() }

// Handle applies a room event and resyncs the local run.
func (g *OnlineGame) Handle(evt multiplayer.SessionEvent) bool {
	changed := g.room.Handle(evt)
	g.follow()
	return changed
}

func (g *OnlineGame) RoomCode() string { return g.room.Code() }
func (g *OnlineGame) RoomErr() string  { return g.room.Err() }
func (g *OnlineGame) Close()           { g.room.Close() }

// Room returns the visible room state.
func (g *OnlineGame) Room() RoomState { return g.room.Current() }

// Local returns this player's run.
func (g *OnlineGame) Local() State { return g.local }

// Controls offers start to the host in the lobby and the options while
// asking.
func (g *OnlineGame) Controls() core.Controls {
	if g.local.Stage == StageLobby {
		if g.room.Code() != "" && g.room.Current().CanStart(g.player.ID) == nil {
			return core.Controls{Kind: core.ControlsStart, Prompt: "Start game"}
		}
		return core.Controls{Kind: core.ControlsNone}
	}
	return controls(g.local)
}

// Wake is the local countdown or reveal timer.
func (g *OnlineGame) Wake() (core.Wake, bool) { return g.local.Timer.Wake() }

// State is the local run with the room's scores.
func (g *OnlineGame) State() core.GameState {
	gs := g.local.Summary()
	rs := g.room.Current()
	if len(rs.Scores) > 0 {
		gs.Scores = make(map[string]int, len(rs.Players))
		for _, p := range rs.Players {
			gs.Scores[p.ID] = rs.Scores[p.ID]
		}
	}
	return gs
}

// Render draws the lobby or the round, then the scoreboard.
func (g *OnlineGame) Render(dst *core.Frame) {
	dst.Clear()
	rs := g.room.Current()
	if code := g.room.Code(); code != "" {
		dst.Line(core.Plain("Room "), core.Span{Text: code, Color: core.ColorYellow, Bold: true})
		dst.Blank()
	}

	if g.local.Stage == StageLobby {
		switch {
		case g.room.Code() == "":
			dst.Line(core.Colored("Not in a room", core.ColorGray))
		case rs.HasFinished(g.player.ID):
			dst.Line(core.Colored("Waiting for the others to finish...", core.ColorGray))
		case rs.CanStart(g.player.ID) == nil:
			dst.Line(core.Colored("Press Enter to start", core.ColorGreen))
		case g.player.ID == rs.HostID:
			dst.Line(core.Colored("Waiting for players to join...", core.ColorGray))
		default:
			dst.Line(core.Colored("Waiting for host to start...", core.ColorGray))
		}
	} else {
		g.local.Render(dst)
	}

	dst.Blank()
	dst.Line(core.Span{Text: "Players", Bold: true})
	for _, p := range rs.Standings() {
		line := []core.Span{core.Plain("  " + p.Name)}
		if p.ID == rs.HostID {
			line = append(line, core.Colored(" ★", core.ColorYellow))
		}
		line = append(line, core.Colored("  "+strconv.Itoa(rs.Scores[p.ID]), core.ColorCyan))
		if rs.HasFinished(p.ID) {
			line = append(line, core.Colored(" ✓", core.ColorGreen))
		}
		dst.Line(line...)
	}
	if msg := g.room.Err(); msg != "" {
		dst.Line(core.Colored("! "+msg, core.ColorRed))
	}
}
