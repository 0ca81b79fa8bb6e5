// Package rps implements rock-paper-scissors against a random CPU hand.
package rps

import (
	"strconv"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// Tally counts round outcomes.
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

// Rounds returns the number of rounds played.
func (t Tally) Rounds() int {
	return t.Wins + t.Losses + t.Draws
}

// Round is the last hand played.
type Round struct {
	Player rules.Throw
	CPU    rules.Throw
	Result rules.Result
}

// State is one session. The game is endless.
type State struct {
	Player identity.Player
	Seed   int64
	Tally  Tally
	Last   *Round
}

// NewState starts with an empty tally.
func NewState(p identity.Player, seed int64) State {
	return State{Player: p, Seed: seed}
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	if s.Player.IsZero() {
		return core.PhaseAwaitingPlayer
	}
	return core.PhaseActive
}

// Apply plays the selected throw against the CPU's next hand.
func Apply(s State, in core.Input) (State, error) {
	if s.Phase() == core.PhaseAwaitingPlayer {
		return s, core.ErrNoPlayer
	}
	if in.Kind != core.InputSelect || in.Index < 0 || in.Index >= len(rules.Throws) {
		return s, core.ErrUnsupported
	}

	player := rules.Throws[in.Index]
	cpu := rules.Throws[core.Draw(s.Seed, s.Tally.Rounds(), len(rules.Throws))]
	r := Round{Player: player, CPU: cpu, Result: rules.Judge(player, cpu)}
	switch r.Result {
	case rules.Win:
		s.Tally.Wins++
	case rules.Lose:
		s.Tally.Losses++
	default:
		s.Tally.Draws++
	}
	s.Last = &r
	return s, nil
}

// Summary reports the session for the platform. The score is the win count.
func (s State) Summary() core.GameState {
	return core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Round:  s.Tally.Rounds(),
		Moves:  s.Tally.Rounds(),
		Score:  s.Tally.Wins,
	}
}

var glyphs = map[rules.Throw]string{
	rules.Rock:     "✊",
	rules.Paper:    "✋",
	rules.Scissors: "✌",
}

// Render draws the throw options, the last round and the tally.
func (s State) Render(f *core.Frame) {
	opts := make([]core.Span, 0, len(rules.Throws))
	for i, t := range rules.Throws {
		opts = append(opts, core.SlotSpan(i, " "+glyphs[t]+" "+t.String()+" ", core.ColorCyan))
	}
	f.Line(opts...)
	f.Blank()

	if s.Last == nil {
		f.Text("Make your move!")
	} else {
		f.Line(
			core.Plain("You "+glyphs[s.Last.Player]+"  vs  CPU "+glyphs[s.Last.CPU]+"   "),
			resultSpan(s.Last.Result),
		)
	}
	f.Blank()
	f.Line(
		core.Colored("Wins "+strconv.Itoa(s.Tally.Wins), core.ColorGreen),
		core.Colored("  Losses "+strconv.Itoa(s.Tally.Losses), core.ColorRed),
		core.Colored("  Draws "+strconv.Itoa(s.Tally.Draws), core.ColorGray),
	)
}

func resultSpan(r rules.Result) core.Span {
	switch r {
	case rules.Win:
		return core.Span{Text: "You win!", Color: core.ColorGreen, Bold: true}
	case rules.Lose:
		return core.Span{Text: "You lose!", Color: core.ColorRed, Bold: true}
	default:
		return core.Span{Text: "It's a draw.", Color: core.ColorYellow, Bold: true}
	}
}
