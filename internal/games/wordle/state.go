// Package wordle implements the five-letter word guessing game.
package wordle

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// WordLen is the length of every solution and guess.
const WordLen = 5

// Guess validation failures. The messages are shown to the player.
var (
	ErrGuessLength  = errors.New("please enter exactly 5 letters")
	ErrGuessLetters = errors.New("please enter only letters")
)

// Guess is a submitted word with its per-letter scores.
type Guess struct {
	Word   string
	Scores []rules.LetterScore
}

// State is one session.
type State struct {
	Player   identity.Player
	Solution string
	Attempts int
	Guesses  []Guess
	Won      bool
}

// NewState picks the solution for seed.
func NewState(p identity.Player, seed int64, attempts int) State {
	return State{
		Player:   p,
		Solution: Words[core.Draw(seed, 0, len(Words))],
		Attempts: attempts,
	}
}

// Lost reports whether every attempt was used without solving.
func (s State) Lost() bool {
	return !s.Won && len(s.Guesses) >= s.Attempts
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	switch {
	case s.Player.IsZero():
		return core.PhaseAwaitingPlayer
	case s.Won || s.Lost():
		return core.PhaseTerminal
	default:
		return core.PhaseActive
	}
}

// NormalizeGuess trims and upper-cases raw and checks that it is exactly
// five ASCII letters.
func NormalizeGuess(raw string) (string, error) {
	guess := strings.ToUpper(strings.TrimSpace(raw))
	if utf8.RuneCountInString(guess) != WordLen {
		return "", ErrGuessLength
	}
	for _, r := range guess {
		if r < 'A' || r > 'Z' {
			return "", ErrGuessLetters
		}
	}
	return guess, nil
}

// Apply submits a guess.
func Apply(s State, in core.Input) (State, error) {
	switch s.Phase() {
	case core.PhaseAwaitingPlayer:
		return s, core.ErrNoPlayer
	case core.PhaseTerminal:
		return s, core.ErrGameOver
	}
	if in.Kind != core.InputText {
		return s, core.ErrUnsupported
	}
	word, err := NormalizeGuess(in.Text)
	if err != nil {
		return s, err
	}

	guesses := make([]Guess, len(s.Guesses), len(s.Guesses)+1)
	copy(guesses, s.Guesses)
	s.Guesses = append(guesses, Guess{Word: word, Scores: rules.ScoreGuess(word, s.Solution)})
	s.Won = word == s.Solution
	return s, nil
}

// Score is the number of unused attempts plus one on a win, zero otherwise.
func (s State) Score() int {
	if !s.Won {
		return 0
	}
	return s.Attempts - len(s.Guesses) + 1
}

// Summary reports the session for the platform.
func (s State) Summary() core.GameState {
	gs := core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Round:  len(s.Guesses) + 1,
		Moves:  len(s.Guesses),
		Score:  s.Score(),
		Lives:  s.Attempts - len(s.Guesses),
	}
	switch {
	case s.Won:
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeWon
	case s.Lost():
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeLost
	}
	return gs
}

// Letters returns the best score seen for each guessed letter.
func (s State) Letters() map[rune]rules.LetterScore {
	out := make(map[rune]rules.LetterScore)
	for _, g := range s.Guesses {
		for i, r := range g.Word {
			if prev, seen := out[r]; !seen || g.Scores[i] > prev {
				out[r] = g.Scores[i]
			}
		}
	}
	return out
}

func scoreColor(ls rules.LetterScore) core.Color {
	switch ls {
	case rules.Correct:
		return core.ColorGreen
	case rules.Present:
		return core.ColorYellow
	}
	return core.ColorGray
}

// Render draws the guess board and a letter overview.
func (s State) Render(f *core.Frame) {
	for row := range s.Attempts {
		if row >= len(s.Guesses) {
			f.Line(core.Colored(strings.Repeat(" _ ", WordLen), core.ColorGray))
			continue
		}
		g := s.Guesses[row]
		spans := make([]core.Span, 0, WordLen)
		for i, r := range g.Word {
			spans = append(spans, core.Span{Text: " " + string(r) + " ", Color: scoreColor(g.Scores[i]), Bold: true})
		}
		f.Line(spans...)
	}
	f.Blank()

	letters := s.Letters()
	for _, row := range []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"} {
		spans := make([]core.Span, 0, len(row))
		for _, r := range row {
			c := core.ColorDefault
			if ls, seen := letters[r]; seen {
				c = scoreColor(ls)
			}
			spans = append(spans, core.Colored(string(r)+" ", c))
		}
		f.Line(spans...)
	}
	f.Blank()

	switch {
	case s.Won:
		f.Line(core.Colored("You solved it!", core.ColorGreen))
	case s.Lost():
		f.Line(core.Plain("The word was "), core.Span{Text: s.Solution, Color: core.ColorYellow, Bold: true})
	default:
		f.Line(core.Colored("Enter a 5-letter word", core.ColorGray))
	}
}
