package patternlock

import (
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/registry"
)

const (
	ID    = "patternlock"
	Title = "Pattern Lock"
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

// Reset zeroes the score and picks a new pattern.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(cfg.Player, cfg.Seed, cfg.Games.WithDefaults().PatternLock.FeedbackDelay)
}

// Apply taps a dot or ends the feedback pause.
func (g *Game) Apply(in core.Input) core.StepResult {
	next, err := Apply(g.state, in)
	if err != nil {
		return core.Reject(g.state.Summary(), err)
	}
	g.state = next
	return core.Accept(next.Summary())
}

// Controls is the dot grid.
func (g *Game) Controls() core.Controls {
	if g.state.Phase() != core.PhaseActive {
		return core.Controls{Kind: core.ControlsNone}
	}
	return core.Grid(Dots, 3)
}

// Wake is pending while feedback shows.
func (g *Game) Wake() (core.Wake, bool) { return g.state.Timer.Wake() }

func (g *Game) Render(dst *core.Frame) {
	dst.Clear()
	g.state.Render(dst)
}

func (g *Game) State() core.GameState { return g.state.Summary() }

// Endless reports that the game never ends on its own.
func (g *Game) Endless() bool { return true }
