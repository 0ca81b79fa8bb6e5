package core

// Status is the coarse lifecycle of a game. It only moves forward:
// lobby -> playing -> finished. Reset builds a fresh state instead of
// moving backwards.
type Status string

const (
	StatusLobby    Status = "lobby"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// rank orders statuses so transitions can be checked.
func (s Status) rank() int {
	switch s {
	case StatusLobby:
		return 0
	case StatusPlaying:
		return 1
	case StatusFinished:
		return 2
	default:
		return -1
	}
}

// CanAdvanceTo reports whether moving from s to next keeps the forward-only order.
func (s Status) CanAdvanceTo(next Status) bool {
	return next.rank() >= s.rank() && next.rank() >= 0
}

// Phase is the session state machine seen by the shell.
type Phase int

const (
	PhaseAwaitingPlayer Phase = iota // no player supplied yet
	PhaseLobby                       // multiplayer only: waiting for participants / host start
	PhaseActive                      // accepting actions
	PhaseTerminal                    // won, lost or drawn; only Reset leaves it
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingPlayer:
		return "AwaitingPlayer"
	case PhaseLobby:
		return "Lobby"
	case PhaseActive:
		return "Active"
	case PhaseTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// Outcome is how a terminal game ended, from the local player's side
// for solo games and from the board's side for hot-seat games.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeDraw
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	case OutcomeDraw:
		return "Draw"
	default:
		return "None"
	}
}

// GameState is the render-ready summary every game reports to the platform.
type GameState struct {
	Status   Status
	Phase    Phase
	Outcome  Outcome
	Round    int            // current round (quiz games), 1-based
	Moves    int            // accepted moves/turns so far
	Score    int            // local player's score; saved on game over when > 0
	Scores   map[string]int // player id -> score (multiplayer games)
	Lives    int
	TimeLeft int    // whole seconds left in a timed round
	Winner   string // mark or player name of the winner, if any
	Hint     string // transient inline message
}

// GameOver reports whether the session reached its terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseTerminal
}

// StepResult is returned by Game.Apply.
type StepResult struct {
	// Accepted is false when the input was rejected as a no-op; the
	// state is then unchanged.
	Accepted bool
	State    GameState
}

// Rejected builds a no-op result carrying an optional inline hint.
func Rejected(state GameState, hint string) StepResult {
	if hint != "" {
		state.Hint = hint
	}
	return StepResult{Accepted: false, State: state}
}
