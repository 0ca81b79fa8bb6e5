// Package tictactoe implements 3x3 tic-tac-toe, played hot-seat on one
// terminal or between two players sharing a room.
package tictactoe

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// ErrOccupied rejects a move onto a taken cell.
var ErrOccupied = errors.New("that square is taken")

// Square is one cell: "", "X" or "O". An empty square is null on the wire,
// matching the web client's board format.
type Square string

const (
	Blank Square = ""
	X     Square = "X"
	O     Square = "O"
)

// MarshalJSON writes a blank square as null.
func (s Square) MarshalJSON() ([]byte, error) {
	if s == Blank {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON reads null as a blank square.
func (s *Square) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = Blank
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch Square(v) {
	case Blank, X, O:
		*s = Square(v)
		return nil
	}
	return errors.New("tictactoe: invalid square " + v)
}

func (s Square) mark() rules.Mark {
	switch s {
	case X:
		return rules.First
	case O:
		return rules.Second
	}
	return rules.Empty
}

// Board is the 3x3 grid, row-major.
type Board [9]Square

// grid converts the board for the rule functions.
func (b Board) grid() rules.Grid {
	g := rules.NewGrid(3, 3)
	for i, sq := range b {
		g.Cells[i] = sq.mark()
	}
	return g
}

// Turn returns the mark that moves next.
func Turn(xIsNext bool) Square {
	if xIsNext {
		return X
	}
	return O
}

// Result is the judged position of a board.
type Result struct {
	Winner Square
	Line   rules.WinningLine
	Draw   bool
}

// Over reports whether the board is finished.
func (r Result) Over() bool {
	return r.Winner != Blank || r.Draw
}

// Judge evaluates b.
func Judge(b Board) Result {
	g := b.grid()
	if line, ok := rules.WinLineCheck(g, -1, rules.Empty); ok {
		return Result{Winner: b[line[0]], Line: line}
	}
	return Result{Draw: rules.IsDraw(g)}
}

// Place puts the mark whose turn it is on cell idx. The board is returned
// unchanged with an error when the cell is out of range, taken, or the
// game is already over. An out-of-range cell is core.ErrUnsupported.
func Place(b Board, xIsNext bool, idx int) (Board, error) {
	if idx < 0 || idx >= len(b) {
		return b, core.ErrUnsupported
	}
	if b[idx] != Blank {
		return b, ErrOccupied
	}
	if Judge(b).Over() {
		return b, core.ErrGameOver
	}
	b[idx] = Turn(xIsNext)
	return b, nil
}
