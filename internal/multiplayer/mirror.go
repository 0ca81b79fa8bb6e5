package multiplayer

// Mirror holds the two views of a shared room state: Remote, the last
// state confirmed by the store, and Local, an optimistic change this
// client made that the store has not confirmed yet.
type Mirror[S any] struct {
	Remote S
	Local  *S
}

// Current is what the player sees: the optimistic state when there is one.
func (m Mirror[S]) Current() S {
	if m.Local != nil {
		return *m.Local
	}
	return m.Remote
}

// Diverged reports whether an unconfirmed local change is showing.
func (m Mirror[S]) Diverged() bool {
	return m.Local != nil
}

// Propose returns m with next as the optimistic local state.
func (m Mirror[S]) Propose(next S) Mirror[S] {
	m.Local = &next
	return m
}

// Confirm returns m after the store echoed a push: the echo becomes the
// remote state and the optimistic slot is cleared.
func (m Mirror[S]) Confirm(echo S) Mirror[S] {
	return Mirror[S]{Remote: echo}
}

// Discard drops the optimistic slot, e.g. after a failed push.
func (m Mirror[S]) Discard() Mirror[S] {
	return Mirror[S]{Remote: m.Remote}
}

// Reconcile merges a polled remote state into m. The poll always wins:
// it replaces Remote and clears any optimistic local guess.
func Reconcile[S any](m Mirror[S], polled S) Mirror[S] {
	return Mirror[S]{Remote: polled}
}
