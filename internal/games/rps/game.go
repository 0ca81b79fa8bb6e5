package rps

import (
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/registry"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

const (
	ID    = "rps"
	Title = "Rock Paper Scissors"
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

// Reset clears the tally.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(cfg.Player, cfg.Seed)
}

// Apply plays a throw.
func (g *Game) Apply(in core.Input) core.StepResult {
	next, err := Apply(g.state, in)
	if err != nil {
		return core.Reject(g.state.Summary(), err)
	}
	g.state = next
	return core.Accept(next.Summary())
}

// Controls picks one of the throws.
func (g *Game) Controls() core.Controls {
	if g.state.Phase() != core.PhaseActive {
		return core.Controls{Kind: core.ControlsNone}
	}
	return core.Columns(len(rules.Throws))
}

func (g *Game) Wake() (core.Wake, bool) { return core.Wake{}, false }

func (g *Game) Render(dst *core.Frame) {
	dst.Clear()
	g.state.Render(dst)
}

func (g *Game) State() core.GameState { return g.state.Summary() }

// Endless reports that the game never ends on its own.
func (g *Game) Endless() bool { return true }
