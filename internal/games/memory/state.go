// Package memory implements the memory matching game: sixteen face-down
// cards, eight pairs, two flipped at a time.
package memory

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// Symbols are the card faces; each appears twice.
var Symbols = []string{"🎮", "🎯", "🎲", "🎪", "🎨", "🎭", "🎸", "🎺"}

// Pairs is the number of pairs on the table.
var Pairs = len(Symbols)

// Cols is the table width.
const Cols = 4

var (
	// ErrFaceUp rejects flipping a card that is already showing.
	ErrFaceUp = errors.New("that card is already face up")
	// ErrSettling rejects flips while a mismatched pair is still showing.
	ErrSettling = errors.New("wait for the cards to flip back")
)

// State is one session.
type State struct {
	Player  identity.Player
	Cards   []rules.Card
	Flipped []int // face-up unmatched cards, at most two
	Matched []int
	Moves   int
	Delay   time.Duration // how long a mismatch stays visible
	Timer   core.Timer
}

// NewState deals a shuffled table for seed.
func NewState(p identity.Player, seed int64, delay time.Duration) State {
	order := core.Permutation(seed, 0, 2*Pairs)
	cards := make([]rules.Card, len(order))
	for i, o := range order {
		cards[i] = rules.Card{ID: i, Face: Symbols[o%Pairs]}
	}
	return State{Player: p, Cards: cards, Delay: delay}
}

// Won reports whether every card is matched.
func (s State) Won() bool {
	return len(s.Cards) > 0 && len(s.Matched) == len(s.Cards)
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	switch {
	case s.Player.IsZero():
		return core.PhaseAwaitingPlayer
	case s.Won():
		return core.PhaseTerminal
	default:
		return core.PhaseActive
	}
}

// Apply flips a card, or settles a mismatched pair when its wake fires.
func Apply(s State, in core.Input) (State, error) {
	switch s.Phase() {
	case core.PhaseAwaitingPlayer:
		return s, core.ErrNoPlayer
	case core.PhaseTerminal:
		return s, core.ErrGameOver
	}

	switch in.Kind {
	case core.InputWake:
		if !s.Timer.Fires(in) {
			return s, core.ErrStaleWake
		}
		s.Flipped = nil
		s.Timer = s.Timer.Cancel()
		return s, nil
	case core.InputSelect:
		return flip(s, in.Index)
	default:
		return s, core.ErrUnsupported
	}
}

func flip(s State, idx int) (State, error) {
	if idx < 0 || idx >= len(s.Cards) {
		return s, core.ErrUnsupported
	}
	if len(s.Flipped) == 2 {
		return s, ErrSettling
	}
	if slices.Contains(s.Flipped, idx) || slices.Contains(s.Matched, idx) {
		return s, ErrFaceUp
	}

	flipped := append(slices.Clone(s.Flipped), idx)
	if len(flipped) < 2 {
		s.Flipped = flipped
		return s, nil
	}

	s.Moves++
	first, second := s.Cards[flipped[0]], s.Cards[flipped[1]]
	if rules.PairMatch(first, second) {
		s.Matched = append(slices.Clone(s.Matched), flipped...)
		s.Flipped = nil
		return s, nil
	}
	s.Flipped = flipped
	s.Timer = s.Timer.Schedule(s.Delay)
	return s, nil
}

// Score rewards finishing in few moves: 100 for a perfect game, five
// points less for every extra move, never below zero.
func (s State) Score() int {
	if !s.Won() {
		return 0
	}
	return max(0, 100-5*(s.Moves-Pairs))
}

// Summary reports the session for the platform.
func (s State) Summary() core.GameState {
	gs := core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Moves:  s.Moves,
		Score:  s.Score(),
	}
	if s.Won() {
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeWon
	}
	return gs
}

// Render draws the table.
func (s State) Render(f *core.Frame) {
	for row := 0; row < len(s.Cards); row += Cols {
		spans := make([]core.Span, 0, Cols)
		for i := row; i < row+Cols && i < len(s.Cards); i++ {
			switch {
			case slices.Contains(s.Matched, i):
				spans = append(spans, core.SlotSpan(i, " "+s.Cards[i].Face+" ", core.ColorGreen))
			case slices.Contains(s.Flipped, i):
				spans = append(spans, core.SlotSpan(i, " "+s.Cards[i].Face+" ", core.ColorYellow))
			default:
				spans = append(spans, core.SlotSpan(i, " ?? ", core.ColorBlue))
			}
		}
		f.Line(spans...)
	}
	f.Blank()
	if s.Won() {
		f.Line(core.Colored("You won in ", core.ColorGreen), core.Span{Text: strconv.Itoa(s.Moves), Bold: true}, core.Colored(" moves!", core.ColorGreen))
		return
	}
	f.Line(core.Plain("Moves: "+strconv.Itoa(s.Moves)), core.Colored("   Pairs: "+strconv.Itoa(len(s.Matched)/2)+"/"+strconv.Itoa(Pairs), core.ColorGray))
}
