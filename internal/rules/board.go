// Package rules holds the pure rule functions behind every game: win-line
// detection, gravity drops, guess scoring and the small quiz checks. All
// functions are total over their inputs and never mutate them.
package rules

// Mark is the content of one board cell.
type Mark uint8

const (
	Empty  Mark = iota
	First       // X in tic-tac-toe, player 1 in four-in-a-row
	Second      // O in tic-tac-toe, player 2 in four-in-a-row
)

// Other returns the opposing mark. Empty stays Empty.
func (m Mark) Other() Mark {
	switch m {
	case First:
		return Second
	case Second:
		return First
	default:
		return Empty
	}
}

// Grid is a fixed-size row-major board. Methods that change a cell return
// a new Grid; the receiver is never modified.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Mark
}

// NewGrid returns an empty rows x cols grid.
func NewGrid(rows, cols int) Grid {
	return Grid{Rows: rows, Cols: cols, Cells: make([]Mark, rows*cols)}
}

// Index converts a row and column to a cell index.
func (g Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// InBounds reports whether row and col address a cell.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the mark at row, col.
func (g Grid) At(row, col int) Mark {
	return g.Cells[g.Index(row, col)]
}

// With returns a copy of g with cell idx set to m.
func (g Grid) With(idx int, m Mark) Grid {
	cells := make([]Mark, len(g.Cells))
	copy(cells, g.Cells)
	cells[idx] = m
	return Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// Full reports whether every cell is occupied.
func (g Grid) Full() bool {
	for _, c := range g.Cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// WinningLine is the ordered list of cell indexes forming a winning run.
type WinningLine []int

// Lines3x3 are the eight fixed tic-tac-toe lines: rows, columns, diagonals.
var Lines3x3 = []WinningLine{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// RunLength is the contiguous run needed to win on boards larger than 3x3.
const RunLength = 4

// WinLineCheck looks for a winning line created by placing mark at cell last.
//
// A 3x3 grid checks the eight fixed lines for three equal non-empty marks.
// Larger grids only follow runs through last in four directions and win
// at RunLength or more, since a new win must contain the newest cell.
func WinLineCheck(g Grid, last int, mark Mark) (WinningLine, bool) {
	if g.Rows == 3 && g.Cols == 3 {
		return fixedLineWinner(g)
	}
	if mark == Empty || last < 0 || last >= len(g.Cells) || g.Cells[last] != mark {
		return nil, false
	}
	return runThrough(g, last, mark, RunLength)
}

func fixedLineWinner(g Grid) (WinningLine, bool) {
	for _, line := range Lines3x3 {
		a := g.Cells[line[0]]
		if a != Empty && a == g.Cells[line[1]] && a == g.Cells[line[2]] {
			out := make(WinningLine, len(line))
			copy(out, line)
			return out, true
		}
	}
	return nil, false
}

var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

func runThrough(g Grid, last int, mark Mark, need int) (WinningLine, bool) {
	row, col := last/g.Cols, last%g.Cols
	for _, d := range directions {
		// Walk back to the start of the run, then forward collecting it.
		r, c := row, col
		for g.InBounds(r-d[0], c-d[1]) && g.At(r-d[0], c-d[1]) == mark {
			r, c = r-d[0], c-d[1]
		}
		var line WinningLine
		for g.InBounds(r, c) && g.At(r, c) == mark {
			line = append(line, g.Index(r, c))
			r, c = r+d[0], c+d[1]
		}
		if len(line) >= need {
			return line, true
		}
	}
	return nil, false
}

// DropTarget returns the lowest empty row in col, scanning from the
// bottom. ok is false when the column is full or out of range.
func DropTarget(g Grid, col int) (row int, ok bool) {
	if col < 0 || col >= g.Cols {
		return 0, false
	}
	for r := g.Rows - 1; r >= 0; r-- {
		if g.At(r, col) == Empty {
			return r, true
		}
	}
	return 0, false
}

// IsDraw reports whether every cell is occupied and no cell is part of a
// winning line.
func IsDraw(g Grid) bool {
	if !g.Full() {
		return false
	}
	for i, m := range g.Cells {
		if _, won := WinLineCheck(g, i, m); won {
			return false
		}
	}
	return true
}
