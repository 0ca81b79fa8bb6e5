package tictactoe

import (
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// State is a hot-seat session: both marks are played from one terminal.
type State struct {
	Player  identity.Player
	Board   Board
	XIsNext bool
	Moves   int
	Result  Result
}

// NewState starts an empty board with X to move.
func NewState(p identity.Player) State {
	return State{Player: p, XIsNext: true}
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	switch {
	case s.Player.IsZero():
		return core.PhaseAwaitingPlayer
	case s.Result.Over():
		return core.PhaseTerminal
	default:
		return core.PhaseActive
	}
}

// Apply places the current mark on the selected cell. The turn flips
// exactly once per accepted move, the winning move included.
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

	board, err := Place(s.Board, s.XIsNext, in.Index)
	if err != nil {
		return s, err
	}
	s.Board = board
	s.Moves++
	s.Result = Judge(board)
	s.XIsNext = !s.XIsNext
	return s, nil
}

// Summary reports the session for the platform.
func (s State) Summary() core.GameState {
	gs := core.GameState{
		Status: core.StatusPlaying,
		Phase:  s.Phase(),
		Moves:  s.Moves,
		Winner: string(s.Result.Winner),
	}
	switch {
	case s.Result.Winner != Blank:
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeWon
	case s.Result.Draw:
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeDraw
	}
	return gs
}

// status is the line shown under the board.
func (s State) status() core.Span {
	switch {
	case s.Result.Winner != Blank:
		return core.Colored("Winner: "+string(s.Result.Winner), markColor(s.Result.Winner))
	case s.Result.Draw:
		return core.Colored("Draw!", core.ColorYellow)
	default:
		next := Turn(s.XIsNext)
		return core.Colored("Next player: "+string(next), markColor(next))
	}
}

func markColor(sq Square) core.Color {
	switch sq {
	case X:
		return core.ColorCyan
	case O:
		return core.ColorMagenta
	}
	return core.ColorGray
}

// renderBoard draws b with the cells of line highlighted.
func renderBoard(f *core.Frame, b Board, line rules.WinningLine) {
	won := make(map[int]bool, len(line))
	for _, i := range line {
		won[i] = true
	}
	for row := range 3 {
		spans := make([]core.Span, 0, 5)
		for col := range 3 {
			i := row*3 + col
			if col > 0 {
				spans = append(spans, core.Colored("│", core.ColorGray))
			}
			glyph := " · "
			if b[i] != Blank {
				glyph = " " + string(b[i]) + " "
			}
			span := core.SlotSpan(i, glyph, markColor(b[i]))
			span.Bold = won[i]
			if won[i] {
				span.Color = core.ColorGreen
			}
			spans = append(spans, span)
		}
		f.Line(spans...)
		if row < 2 {
			f.Line(core.Colored("───┼───┼───", core.ColorGray))
		}
	}
}

// Render draws the hot-seat board.
func (s State) Render(f *core.Frame) {
	renderBoard(f, s.Board, s.Result.Line)
	f.Blank()
	f.Line(s.status())
}
