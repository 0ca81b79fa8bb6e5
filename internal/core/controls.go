package core

// ControlsKind tells the platform how to collect input for a game.
type ControlsKind int

const (
	// ControlsGrid: a cursor moves over Count slots laid out Cols wide;
	// Enter (or a digit shortcut) sends Select(slot).
	ControlsGrid ControlsKind = iota
	// ControlsText: a line editor; Enter sends Text(line).
	ControlsText
	// ControlsYesNo: y/n keys send Answer.
	ControlsYesNo
	// ControlsStart: Enter sends Start (a host waiting in a lobby).
	ControlsStart
	// ControlsNone: the game takes no input right now (lobby guest, terminal screen).
	ControlsNone
)

// Controls describes the current input mode of a game.
type Controls struct {
	Kind   ControlsKind
	Count  int  // grid: number of slots
	Cols   int  // grid: slots per row
	MaxLen int  // text: maximum characters
	Live   bool // text: send every edit instead of waiting for Enter
	Prompt string
}

// Grid builds grid controls.
func Grid(count, cols int) Controls {
	return Controls{Kind: ControlsGrid, Count: count, Cols: cols}
}

// Columns builds a single-row grid, used for column drops and option lists.
func Columns(count int) Controls {
	return Controls{Kind: ControlsGrid, Count: count, Cols: count}
}
