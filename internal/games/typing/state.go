// Package typing implements the typing speed test: type the phrase
// exactly, scored in words per minute.
package typing

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// Phrases are the texts to type.
var Phrases = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Typing games are a fun way to practice accuracy.",
	"React makes it painless to create interactive UIs.",
	"JavaScript is the language of the web and beyond.",
	"Practice makes perfect when learning to type faster.",
	"Web development requires both creativity and logic.",
	"Game design combines art, code, and user experience.",
	"Programming helps you solve problems systematically.",
	"The best way to learn coding is by building projects.",
	"TypeScript adds type safety to JavaScript applications.",
	"Modern frameworks make building complex apps easier.",
	"Testing your code ensures it works as expected.",
	"Version control helps teams collaborate effectively.",
	"Clean code is easier to read and maintain.",
	"User interface design impacts how people use software.",
	"Debugging skills improve with practice and patience.",
	"Open source communities drive innovation forward.",
	"Responsive design adapts layouts to different screens.",
	"APIs enable different applications to communicate.",
	"Learning new technologies keeps your skills current.",
}

// State is one session. Timing comes from the At field of each input, so
// Apply stays pure.
type State struct {
	Player    identity.Player
	Target    string
	Input     string
	StartedAt time.Time
	Elapsed   time.Duration // set on completion
	Done      bool
}

// NewState picks the phrase for seed.
func NewState(p identity.Player, seed int64) State {
	return State{Player: p, Target: Phrases[core.Draw(seed, 0, len(Phrases))]}
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	switch {
	case s.Player.IsZero():
		return core.PhaseAwaitingPlayer
	case s.Done:
		return core.PhaseTerminal
	default:
		return core.PhaseActive
	}
}

// Apply replaces the typed text with in.Text. The clock starts at the
// first edit and stops when the text equals the phrase.
func Apply(s State, in core.Input) (State, error) {
	switch s.Phase() {
	case core.PhaseAwaitingPlayer:
		return s, core.ErrNoPlayer
	case core.PhaseTerminal:
		return s, core.ErrGameOver
	}
	if in.Kind != core.InputText || in.Text == s.Input {
		return s, core.ErrUnsupported
	}

	if s.StartedAt.IsZero() {
		s.StartedAt = in.At
	}
	s.Input = in.Text
	if s.Input == s.Target {
		s.Done = true
		s.Elapsed = in.At.Sub(s.StartedAt)
	}
	return s, nil
}

// WPM returns the speed of a finished run, or 0.
func (s State) WPM() int {
	if !s.Done {
		return 0
	}
	return rules.WordsPerMinute(s.Target, s.Elapsed)
}

// Summary reports the session for the platform. The score is the speed.
func (s State) Summary() core.GameState {
	gs := core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Moves:  utf8.RuneCountInString(s.Input),
		Score:  s.WPM(),
	}
	if s.Done {
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeWon
	}
	return gs
}

// Render draws the phrase colored by progress.
func (s State) Render(f *core.Frame) {
	progress := rules.TypingProgress(s.Target, s.Input)
	spans := make([]core.Span, 0, len(progress))
	for i, r := range []rune(s.Target) {
		c := core.ColorGray
		switch progress[i] {
		case rules.Typed:
			c = core.ColorGreen
		case rules.Wrong:
			c = core.ColorRed
		}
		spans = append(spans, core.Colored(string(r), c))
	}
	f.Line(spans...)
	f.Blank()

	if s.Done {
		f.Line(core.Colored("Done! ", core.ColorGreen),
			core.Span{Text: strconv.Itoa(s.WPM()) + " WPM", Bold: true},
			core.Colored("  in "+s.Elapsed.Round(10*time.Millisecond).String(), core.ColorGray))
		return
	}
	f.Line(core.Colored("Accuracy: "+strconv.Itoa(rules.Accuracy(s.Target, s.Input))+"%", core.ColorGray))
}
