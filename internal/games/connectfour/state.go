// Package connectfour implements four-in-a-row on a 6x7 gravity board,
// played hot-seat by two players on one terminal.
package connectfour

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// Board dimensions.
const (
	Rows = 6
	Cols = 7
)

// ErrColumnFull rejects a drop into a full column.
var ErrColumnFull = errors.New("that column is full")

// State is one session. Player 1 drops rules.First, player 2 rules.Second.
type State struct {
	Player identity.Player
	Grid   rules.Grid
	Turn   rules.Mark
	Moves  int
	Last   int // cell of the latest drop, -1 before the first
	Winner rules.Mark
	Line   rules.WinningLine
	Draw   bool
}

// NewState returns an empty board with player 1 to move.
func NewState(p identity.Player) State {
	return State{
		Player: p,
		Grid:   rules.NewGrid(Rows, Cols),
		Turn:   rules.First,
		Last:   -1,
	}
}

// Over reports whether the game has ended.
func (s State) Over() bool {
	return s.Winner != rules.Empty || s.Draw
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	switch {
	case s.Player.IsZero():
		return core.PhaseAwaitingPlayer
	case s.Over():
		return core.PhaseTerminal
	default:
		return core.PhaseActive
	}
}

// Apply drops the current player's disc into the selected column.
func Apply(s State, in core.Input) (State, error) {
	switch s.Phase() {
	case core.PhaseAwaitingPlayer:
		return s, core.ErrNoPlayer
	case core.PhaseTerminal:
		return s, core.ErrGameOver
	}
	if in.Kind != core.InputSelect {
		return s, core.ErrUnsupported
	}
	row, ok := rules.DropTarget(s.Grid, in.Index)
	if !ok {
		return s, ErrColumnFull
	}

	idx := s.Grid.Index(row, in.Index)
	s.Grid = s.Grid.With(idx, s.Turn)
	s.Last = idx
	s.Moves++
	if line, won := rules.WinLineCheck(s.Grid, idx, s.Turn); won {
		s.Winner = s.Turn
		s.Line = line
	} else if s.Grid.Full() {
		s.Draw = true
	}
	s.Turn = s.Turn.Other()
	return s, nil
}

// Summary reports the session for the platform.
func (s State) Summary() core.GameState {
	gs := core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Moves:  s.Moves,
	}
	switch {
	case s.Winner != rules.Empty:
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeWon
		gs.Winner = playerName(s.Winner)
	case s.Draw:
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeDraw
	}
	return gs
}

func playerName(m rules.Mark) string {
	if m == rules.Second {
		return "Player 2"
	}
	return "Player 1"
}

func discColor(m rules.Mark) core.Color {
	switch m {
	case rules.First:
		return core.ColorRed
	case rules.Second:
		return core.ColorYellow
	}
	return core.ColorGray
}

// Render draws column selectors above the board.
func (s State) Render(f *core.Frame) {
	header := make([]core.Span, 0, Cols)
	for c := range Cols {
		header = append(header, core.SlotSpan(c, fmt.Sprintf(" %d ", c+1), core.ColorGray))
	}
	f.Line(header...)

	won := make(map[int]bool, len(s.Line))
	for _, i := range s.Line {
		won[i] = true
	}
	for r := range Rows {
		spans := make([]core.Span, 0, Cols)
		for c := range Cols {
			idx := s.Grid.Index(r, c)
			m := s.Grid.Cells[idx]
			glyph := " · "
			if m != rules.Empty {
				glyph = " ● "
			}
			span := core.Colored(glyph, discColor(m))
			if won[idx] {
				span.Color = core.ColorGreen
				span.Bold = true
			}
			spans = append(spans, span)
		}
		f.Line(spans...)
	}
	f.Blank()

	switch {
	case s.Winner != rules.Empty:
		f.Line(core.Colored(playerName(s.Winner)+" wins!", discColor(s.Winner)))
	case s.Draw:
		f.Line(core.Colored("It's a draw!", core.ColorYellow))
	default:
		f.Line(core.Plain("Turn: "), core.Colored(playerName(s.Turn)+" ●", discColor(s.Turn)))
	}
}
