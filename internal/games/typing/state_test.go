package typing

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
)

var ada = identity.Player{ID: "p-ada", Name: "Ada"}

func textAt(s string, at time.Time) core.Input {
	in := core.Text(s)
	in.At = at
	return in
}

func TestClockStartsAtFirstEdit(t *testing.T) {
	s := NewState(ada, 1)
	s.Target = "The quick brown fox jumps over the lazy dog."
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	s, err := Apply(s, textAt("T", start))
	if err != nil {
		t.Fatalf("first edit rejected: %v", err)
	}
	s, err = Apply(s, textAt("Th", start.Add(time.Second)))
	if err != nil {
		t.Fatalf("second edit rejected: %v", err)
	}
	if !s.StartedAt.Equal(start) {
		t.Errorf("started at %v, want %v", s.StartedAt, start)
	}

	s, err = Apply(s, textAt(s.Target, start.Add(12*time.Second)))
	if err != nil {
		t.Fatalf("final edit rejected: %v", err)
	}
	if !s.Done || s.Elapsed != 12*time.Second {
		t.Fatalf("done %v elapsed %v", s.Done, s.Elapsed)
	}
	// Nine words in twelve seconds.
	if got := s.Summary(); got.Score != 45 || got.Outcome != core.OutcomeWon {
		t.Errorf("summary = %+v, want 45 WPM win", got)
	}
	if _, err := Apply(s, textAt("x", start.Add(13*time.Second))); !errors.Is(err, core.ErrGameOver) {
		t.Errorf("edit after finish error = %v, want ErrGameOver", err)
	}
}

func TestMistypedTextDoesNotFinish(t *testing.T) {
	s := NewState(ada, 2)
	s.Target = "Clean code is easier to read and maintain."
	s, _ = Apply(s, textAt("Clean code is easier to read and maintain!", time.Now()))
	if s.Done {
		t.Fatal("finished with a wrong character")
	}
	if s.Summary().Score != 0 {
		t.Errorf("score = %d before finishing, want 0", s.Summary().Score)
	}
}

func TestUnchangedTextRejected(t *testing.T) {
	s := NewState(ada, 3)
	if _, err := Apply(s, textAt("", time.Now())); !errors.Is(err, core.ErrUnsupported) {
		t.Errorf("empty edit error = %v, want ErrUnsupported", err)
	}
	if !slices.Contains(Phrases, s.Target) {
		t.Errorf("target %q not a known phrase", s.Target)
	}
}
