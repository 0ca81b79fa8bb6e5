package core

import "errors"

// Rejection reasons shared by the games. A rejected input leaves the game
// state untouched; the message is shown as an inline hint.
var (
	ErrNoPlayer    = errors.New("log in to play")
	ErrGameOver    = errors.New("game over, start a new one")
	ErrUnsupported = errors.New("that input does nothing here")
	ErrBusy        = errors.New("waiting for the room to sync")
	ErrNotYourTurn = errors.New("not your turn")
	ErrLobby       = errors.New("waiting for the game to start")
	// ErrStaleWake rejects a wake whose token was superseded. It is silent.
	ErrStaleWake = errors.New("stale wake")
)

// Accept builds the result of an accepted input.
func Accept(state GameState) StepResult {
	return StepResult{Accepted: true, State: state}
}

// Reject builds a no-op result whose hint explains err.
func Reject(state GameState, err error) StepResult {
	if err == nil || errors.Is(err, ErrStaleWake) {
		return Rejected(state, "")
	}
	return Rejected(state, err.Error())
}
