package tictactoe

import (
	"context"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
	"github.com/vovakirdan/tui-portal/internal/registry"
)

// ID is the registry id.
const ID = "tictactoe"

// Title is the display name.
const Title = "Tic Tac Toe"

func init() {
	registry.Register(ID, func() registry.Game { return New() })
	registry.RegisterOnline(ID, func(env registry.OnlineEnv) registry.OnlineGame { return NewOnline(env) })
}

// Game is the hot-seat game.
type Game struct {
	state State
}

// New creates a hot-seat game.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return Title }

// Reset starts an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(cfg.Player)
}

// Apply plays a move.
func (g *Game) Apply(in core.Input) core.StepResult {
	next, err := Apply(g.state, in)
	if err != nil {
		return core.Reject(g.state.Summary(), err)
	}
	g.state = next
	return core.Accept(next.Summary())
}

// Controls returns the 3x3 cell picker while the game runs.
func (g *Game) Controls() core.Controls {
	if g.state.Phase() != core.PhaseActive {
		return core.Controls{Kind: core.ControlsNone}
	}
	return core.Grid(9, 3)
}

// Wake is never needed.
func (g *Game) Wake() (core.Wake, bool) { return core.Wake{}, false }

// Render draws the board.
func (g *Game) Render(dst *core.Frame) {
	dst.Clear()
	g.state.Render(dst)
}

// State returns the summary.
func (g *Game) State() core.GameState { return g.state.Summary() }

// Snapshot returns the full state.
func (g *Game) Snapshot() State { return g.state }

// OnlineGame plays one seat of a shared room.
type OnlineGame struct {
	player identity.Player
	room   *multiplayer.RoomSession[RoomState]
}

// NewOnline creates a room game using env to reach the store.
func NewOnline(env registry.OnlineEnv) *OnlineGame {
	return &OnlineGame{
		room: registry.NewRoomSession[RoomState](env),
	}
}

// ID returns the unique identifier for this game.
func (g *OnlineGame) ID() string { return ID }

// Title returns the display name for this game.
func (g *OnlineGame) Title() string { return Title }

// Reset sets the local player. Inside a finished room it proposes a
// rematch with the same seats.
func (g *OnlineGame) Reset(cfg core.RuntimeConfig) {
	g.player = cfg.Player
	if g.room.Code() != "" {
		g.room.Propose(Rematch)
	}
}

// Host creates a room with the local player as X.
func (g *OnlineGame) Host(ctx context.Context) (string, error) {
	if g.player.IsZero() {
		return "", identity.ErrNotLoggedIn
	}
	return g.room.Create(ctx, NewRoom(g.player))
}

// Join takes the O seat in the room with code, or watches when it is full.
func (g *OnlineGame) Join(ctx context.Context, code string) error {
	if g.player.IsZero() {
		return identity.ErrNotLoggedIn
	}
	_, err := g.room.Join(ctx, code, Admit(g.player))
	return err
}

// Apply proposes a move. The move is checked against the visible state
// first so a rejection carries a hint, then pushed to the room.
func (g *OnlineGame) Apply(in core.Input) core.StepResult {
	if err := g.check(in); err != nil {
		return core.Reject(g.State(), err)
	}
	ok := g.room.Propose(func(rs RoomState) (RoomState, bool) {
		next, err := Move(rs, g.player.ID, in.Index)
		return next, err == nil
	})
	if !ok {
		return core.Reject(g.State(), core.ErrBusy)
	}
	return core.Accept(g.State())
}

func (g *OnlineGame) check(in core.Input) error {
	switch {
	case g.player.IsZero():
		return core.ErrNoPlayer
	case g.room.Code() == "":
		return core.ErrLobby
	case g.room.Pending():
		return core.ErrBusy
	case in.Kind != core.InputSelect:
		return core.ErrUnsupported
	}
	_, err := Move(g.room.Current(), g.player.ID, in.Index)
	return err
}

// Events delivers room events.
func (g *OnlineGame) Events() <-chan multiplayer.SessionEvent { return g.room.Events() }

// Done closes when room events stop for good.
func (g *OnlineGame) Done() <-chan struct{} { return g.room.Done() }

// Handle applies a room event.
func (g *OnlineGame) Handle(evt multiplayer.SessionEvent) bool { return g.room.Handle(evt) }

// RoomCode returns the room code.
func (g *OnlineGame) RoomCode() string { return g.room.Code() }

// RoomErr returns the last room failure.
func (g *OnlineGame) RoomErr() string { return g.room.Err() }

// Close leaves the room.
func (g *OnlineGame) Close() { g.room.Close() }

// Room returns the visible room state.
func (g *OnlineGame) Room() RoomState { return g.room.Current() }

// Controls returns the cell picker once both seats are taken.
func (g *OnlineGame) Controls() core.Controls {
	if g.State().Phase != core.PhaseActive {
		return core.Controls{Kind: core.ControlsNone}
	}
	return core.Grid(9, 3)
}

// Wake is never needed.
func (g *OnlineGame) Wake() (core.Wake, bool) { return core.Wake{}, false }

// State summarizes the room from the local player's side.
func (g *OnlineGame) State() core.GameState {
	rs := g.room.Current()
	res := Judge(rs.Board)
	gs := core.GameState{
		Status: core.StatusLobby,
		Phase:  core.PhaseLobby,
		Moves:  rs.moves(),
		Winner: string(res.Winner),
	}
	switch {
	case g.player.IsZero():
		gs.Phase = core.PhaseAwaitingPlayer
	case g.room.Code() == "" || !rs.Ready():
	case res.Over():
		gs.Status = core.StatusFinished
		gs.Phase = core.PhaseTerminal
		gs.Outcome = core.OutcomeDraw
		if res.Winner != Blank {
			gs.Outcome = core.OutcomeLost
			if res.Winner == rs.MarkFor(g.player.ID) {
				gs.Outcome = core.OutcomeWon
			}
		}
	default:
		gs.Status = core.StatusPlaying
		gs.Phase = core.PhaseActive
	}
	return gs
}

// Render draws the room board with its seats.
func (g *OnlineGame) Render(dst *core.Frame) {
	dst.Clear()
	rs := g.room.Current()
	res := Judge(rs.Board)

	if code := g.room.Code(); code != "" {
		dst.Line(core.Plain("Room "), core.Span{Text: code, Color: core.ColorYellow, Bold: true})
	}
	for _, p := range rs.Players {
		mark := rs.MarkFor(p.ID)
		line := []core.Span{core.Colored(" "+string(mark)+" ", markColor(mark)), core.Plain(p.Name)}
		if p.ID == g.player.ID {
			line = append(line, core.Colored(" (you)", core.ColorGray))
		}
		dst.Line(line...)
	}
	dst.Blank()
	renderBoard(dst, rs.Board, res.Line)
	dst.Blank()

	mine := rs.MarkFor(g.player.ID)
	switch {
	case g.room.Code() == "":
		dst.Line(core.Colored("Not in a room", core.ColorGray))
	case !rs.Ready():
		dst.Line(core.Colored("Waiting for an opponent to join...", core.ColorGray))
	case res.Winner != Blank:
		dst.Line(core.Colored("Winner: "+string(res.Winner), markColor(res.Winner)))
	case res.Draw:
		dst.Line(core.Colored("Draw!", core.ColorYellow))
	case mine == Blank:
		dst.Line(core.Colored("Watching. Next player: "+string(Turn(rs.XIsNext)), core.ColorGray))
	case mine == Turn(rs.XIsNext):
		dst.Line(core.Colored("Your move ("+string(mine)+")", markColor(mine)))
	default:
		dst.Line(core.Colored("Opponent's move", core.ColorGray))
	}
	if g.room.Pending() {
		dst.Line(core.Colored("syncing...", core.ColorGray))
	}
	if msg := g.room.Err(); msg != "" {
		dst.Line(core.Colored("! "+msg, core.ColorRed))
	}
}
