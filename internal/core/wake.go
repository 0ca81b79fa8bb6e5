package core

import "time"

// Wake asks the platform to deliver WakeInput(Token) after After.
// A game changes Token whenever the pending wake is superseded, and
// rejects wakes whose token no longer matches.
type Wake struct {
	After time.Duration
	Token uint64
}

// Timer is the pending wake kept inside a game state. The token only ever
// grows, so a cancelled or replaced wake can never fire into a later one.
type Timer struct {
	After time.Duration
	Token uint64
	Armed bool
}

// Schedule replaces any pending wake with one firing after d.
func (t Timer) Schedule(d time.Duration) Timer {
	return Timer{After: d, Token: t.Token + 1, Armed: true}
}

// Cancel drops the pending wake.
func (t Timer) Cancel() Timer {
	t.Armed = false
	return t
}

// Fires reports whether in is the pending wake.
func (t Timer) Fires(in Input) bool {
	return t.Armed && in.Kind == InputWake && in.Token == t.Token
}

// Wake returns the pending wake, if any.
func (t Timer) Wake() (Wake, bool) {
	if !t.Armed {
		return Wake{}, false
	}
	return Wake{After: t.After, Token: t.Token}, true
}
