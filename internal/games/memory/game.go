package memory

import (
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/registry"
)

const (
	ID    = "memory"
	Title = "Memory Match"
)

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game wraps State for the platform.
type Game struct {
	state State
}

// New creates a game; call Reset before use.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return Title }

// Reset deals a fresh table.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(cfg.Player, cfg.Seed, cfg.Games.WithDefaults().Memory.FlipBackDelay)
}

// Apply flips a card or settles a mismatch.
func (g *Game) Apply(in core.Input) core.StepResult {
	next, err := Apply(g.state, in)
	if err != nil {
		return core.Reject(g.state.Summary(), err)
	}
	g.state = next
	return core.Accept(next.Summary())
}

// Controls is the card grid.
func (g *Game) Controls() core.Controls {
	if g.state.Phase() != core.PhaseActive {
		return core.Controls{Kind: core.ControlsNone}
	}
	return core.Grid(len(g.state.Cards), Cols)
}

// Wake is pending while a mismatched pair is showing.
func (g *Game) Wake() (core.Wake, bool) { return g.state.Timer.Wake() }

func (g *Game) Render(dst *core.Frame) {
	dst.Clear()
	g.state.Render(dst)
}

func (g *Game) State() core.GameState { return g.state.Summary() }
