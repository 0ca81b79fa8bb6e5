// Package patternlock implements the pattern memorization game: a path
// over a 3x3 dot grid is shown, then repeated from memory.
package patternlock

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// Patterns are the paths that can be asked, as dot indexes 0-8.
var Patterns = [][]int{
	{0, 1, 2, 5},
	{0, 3, 6, 7, 8},
	{2, 4, 6},
	{1, 4, 7, 3, 5},
	{0, 4, 8, 5, 2},
	{6, 7, 8, 5, 2},
	{0, 1, 4, 7, 8},
}

// Dots is the number of dots on the grid.
const Dots = 9

const (
	askMessage     = "Memorize the pattern, then tap the dots in order."
	correctMessage = "✅ Correct pattern!"
	wrongMessage   = "❌ Wrong pattern."
	retryMessage   = "Try again!"
)

var (
	// ErrDuplicateDot rejects a dot that is already part of the input.
	ErrDuplicateDot = errors.New("that dot is already in your pattern")
	// ErrChecking rejects taps while the result of a full pattern shows.
	ErrChecking = errors.New("checking your pattern")
)

// State is one session. The game is endless: there is no terminal phase.
type State struct {
	Player  identity.Player
	Seed    int64
	Draws   int
	Target  int // index into Patterns
	Input   []int
	Score   int
	Correct bool // result of the last full attempt
	Message string
	Delay   time.Duration
	Timer   core.Timer
}

// NewState picks the first pattern.
func NewState(p identity.Player, seed int64, delay time.Duration) State {
	s := State{Player: p, Seed: seed, Delay: delay}
	return s.nextPattern()
}

func (s State) nextPattern() State {
	s.Target = core.Draw(s.Seed, s.Draws, len(Patterns))
	s.Draws++
	s.Input = nil
	s.Message = askMessage
	return s
}

// Pattern returns the dots of the current target.
func (s State) Pattern() []int {
	return Patterns[s.Target]
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	if s.Player.IsZero() {
		return core.PhaseAwaitingPlayer
	}
	return core.PhaseActive
}

// Apply taps a dot, or ends the feedback pause when its wake fires.
func Apply(s State, in core.Input) (State, error) {
	if s.Phase() == core.PhaseAwaitingPlayer {
		return s, core.ErrNoPlayer
	}

	switch in.Kind {
	case core.InputWake:
		if !s.Timer.Fires(in) {
			return s, core.ErrStaleWake
		}
		s.Timer = s.Timer.Cancel()
		if s.Correct {
			return s.nextPattern(), nil
		}
		s.Input = nil
		s.Message = retryMessage
		return s, nil
	case core.InputSelect:
		return tap(s, in.Index)
	default:
		return s, core.ErrUnsupported
	}
}

func tap(s State, dot int) (State, error) {
	if dot < 0 || dot >= Dots {
		return s, core.ErrUnsupported
	}
	if s.Timer.Armed {
		return s, ErrChecking
	}
	input, added := rules.AddDot(s.Input, dot)
	if !added {
		return s, ErrDuplicateDot
	}
	s.Input = input
	if len(input) < len(s.Pattern()) {
		return s, nil
	}

	s.Correct = rules.PatternMatch(input, s.Pattern())
	if s.Correct {
		s.Score++
		s.Message = correctMessage
	} else {
		s.Message = wrongMessage
	}
	s.Timer = s.Timer.Schedule(s.Delay)
	return s, nil
}

// Summary reports the session for the platform.
func (s State) Summary() core.GameState {
	return core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Round:  s.Draws,
		Moves:  len(s.Input),
		Score:  s.Score,
	}
}

// Render draws the dot grid. The target shows only before the first tap.
func (s State) Render(f *core.Frame) {
	showTarget := len(s.Input) == 0
	for row := range 3 {
		spans := make([]core.Span, 0, 3)
		for col := range 3 {
			dot := row*3 + col
			glyph, c := " ○ ", core.ColorGray
			switch {
			case slices.Contains(s.Input, dot):
				step := slices.Index(s.Input, dot) + 1
				glyph, c = " "+strconv.Itoa(step)+" ", core.ColorCyan
			case showTarget && slices.Contains(s.Pattern(), dot):
				step := slices.Index(s.Pattern(), dot) + 1
				glyph, c = " "+strconv.Itoa(step)+" ", core.ColorYellow
			}
			spans = append(spans, core.SlotSpan(dot, glyph, c))
		}
		f.Line(spans...)
	}
	f.Blank()

	c := core.ColorDefault
	switch s.Message {
	case correctMessage:
		c = core.ColorGreen
	case wrongMessage:
		c = core.ColorRed
	}
	f.Line(core.Colored(s.Message, c))
	f.Line(core.Plain("Score: "), core.Span{Text: strconv.Itoa(s.Score), Bold: true})
}
