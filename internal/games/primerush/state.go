// Package primerush implements the prime-or-not quiz: answer quickly,
// lose a life for each mistake.
package primerush

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// Feedback lines.
const (
	askFeedback     = "Is this number prime?"
	correctFeedback = "✅ Correct!"
	wrongFeedback   = "❌ Oops, that was wrong."
	overFeedback    = "💀 Game over"
)

// State is one session.
type State struct {
	Player   identity.Player
	Settings config.PrimeRushConfig
	Seed     int64
	Draws    int // numbers drawn so far
	Number   int
	Score    int
	Lives    int
	Feedback string
}

// NewState asks the first number.
func NewState(p identity.Player, seed int64, cfg config.PrimeRushConfig) State {
	s := State{
		Player:   p,
		Settings: cfg,
		Seed:     seed,
		Lives:    cfg.Lives,
		Feedback: askFeedback,
	}
	return s.next()
}

// next draws a fresh number in [Min, Max].
func (s State) next() State {
	span := s.Settings.Max - s.Settings.Min + 1
	s.Number = s.Settings.Min + core.Draw(s.Seed, s.Draws, span)
	s.Draws++
	return s
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	switch {
	case s.Player.IsZero():
		return core.PhaseAwaitingPlayer
	case s.Lives <= 0:
		return core.PhaseTerminal
	default:
		return core.PhaseActive
	}
}

// Apply answers whether the current number is prime. A correct answer
// scores a point; a wrong one costs a life. Either way a new number is
// drawn unless the last life is gone.
func Apply(s State, in core.Input) (State, error) {
	switch s.Phase() {
	case core.PhaseAwaitingPlayer:
		return s, core.ErrNoPlayer
	case core.PhaseTerminal:
		return s, core.ErrGameOver
	}
	if in.Kind != core.InputAnswer {
		return s, core.ErrUnsupported
	}

	if rules.IsPrime(s.Number) == in.Yes {
		s.Score++
		s.Feedback = correctFeedback
		return s.next(), nil
	}
	s.Lives--
	if s.Lives <= 0 {
		s.Feedback = overFeedback
		return s, nil
	}
	s.Feedback = wrongFeedback
	return s.next(), nil
}

// Summary reports the session for the platform.
func (s State) Summary() core.GameState {
	gs := core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Round:  s.Draws,
		Score:  s.Score,
		Lives:  s.Lives,
	}
	if s.Lives <= 0 {
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeLost
	}
	return gs
}

// Render draws the number, lives and feedback.
func (s State) Render(f *core.Frame) {
	f.Line(core.Colored(strings.Repeat("♥ ", max(s.Lives, 0)), core.ColorRed))
	f.Blank()
	f.Line(core.Span{Text: "    " + strconv.Itoa(s.Number), Color: core.ColorCyan, Bold: true})
	f.Blank()

	c := core.ColorDefault
	switch s.Feedback {
	case correctFeedback:
		c = core.ColorGreen
	case wrongFeedback, overFeedback:
		c = core.ColorRed
	}
	f.Line(core.Colored(s.Feedback, c))
	if s.Lives <= 0 {
		f.Line(core.Plain("Final score: "), core.Span{Text: strconv.Itoa(s.Score), Bold: true})
	}
}
