package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
)

var ada = identity.Player{ID: "p-ada", Name: "Ada"}

// pairs groups card indexes by face.
func pairs(s State) map[string][]int {
	out := make(map[string][]int)
	for i, c := range s.Cards {
		out[c.Face] = append(out[c.Face], i)
	}
	return out
}

func mustApply(t *testing.T, s State, in core.Input) State {
	t.Helper()
	next, err := Apply(s, in)
	if err != nil {
		t.Fatalf("Apply(%+v) rejected: %v", in, err)
	}
	return next
}

func TestDealHasEveryFaceTwice(t *testing.T) {
	s := NewState(ada, 42, time.Second)
	if len(s.Cards) != 2*Pairs {
		t.Fatalf("dealt %d cards, want %d", len(s.Cards), 2*Pairs)
	}
	for face, idx := range pairs(s) {
		if len(idx) != 2 {
			t.Errorf("face %s appears %d times", face, len(idx))
		}
	}
}

func TestMismatchSettlesOnWake(t *testing.T) {
	s := NewState(ada, 7, time.Second)
	p := pairs(s)
	a := p[Symbols[0]][0]
	b := p[Symbols[1]][0]

	s = mustApply(t, s, core.Select(a))
	if _, ok := s.Timer.Wake(); ok {
		t.Fatal("wake scheduled after one card")
	}
	s = mustApply(t, s, core.Select(b))
	if s.Moves != 1 || len(s.Flipped) != 2 {
		t.Fatalf("moves %d flipped %v, want 1 move and two cards up", s.Moves, s.Flipped)
	}
	w, ok := s.Timer.Wake()
	if !ok || w.After != time.Second {
		t.Fatalf("wake = %+v %v, want one second", w, ok)
	}

	third := p[Symbols[2]][0]
	if _, err := Apply(s, core.Select(third)); !errors.Is(err, ErrSettling) {
		t.Errorf("third flip error = %v, want ErrSettling", err)
	}
	if _, err := Apply(s, core.WakeInput(w.Token+1)); !errors.Is(err, core.ErrStaleWake) {
		t.Errorf("wrong token error = %v, want ErrStaleWake", err)
	}

	s = mustApply(t, s, core.WakeInput(w.Token))
	if len(s.Flipped) != 0 {
		t.Errorf("flipped = %v after settle, want none", s.Flipped)
	}
	if _, err := Apply(s, core.WakeInput(w.Token)); !errors.Is(err, core.ErrStaleWake) {
		t.Errorf("repeated wake error = %v, want ErrStaleWake", err)
	}
}

func TestFaceUpCardsIgnored(t *testing.T) {
	s := NewState(ada, 3, time.Second)
	s = mustApply(t, s, core.Select(0))

	got, err := Apply(s, core.Select(0))
	if !errors.Is(err, ErrFaceUp) {
		t.Fatalf("error = %v, want ErrFaceUp", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("state changed (-before +after):\n%s", diff)
	}
}

func TestPerfectGameWins(t *testing.T) {
	s := NewState(ada, 11, time.Second)
	for _, face := range Symbols {
		idx := pairs(s)[face]
		s = mustApply(t, s, core.Select(idx[0]))
		s = mustApply(t, s, core.Select(idx[1]))
	}
	sum := s.Summary()
	if sum.Phase != core.PhaseTerminal || sum.Outcome != core.OutcomeWon {
		t.Fatalf("summary = %+v, want terminal win", sum)
	}
	if sum.Moves != Pairs || sum.Score != 100 {
		t.Errorf("moves %d score %d, want %d and 100", sum.Moves, sum.Score, Pairs)
	}
	if _, err := Apply(s, core.Select(0)); !errors.Is(err, core.ErrGameOver) {
		t.Errorf("flip after win error = %v, want ErrGameOver", err)
	}
}
