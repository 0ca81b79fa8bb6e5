package primerush

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

var ada = identity.Player{ID: "p-ada", Name: "Ada"}

func settings() config.PrimeRushConfig {
	return config.GamesConfig{}.WithDefaults().PrimeRush
}

func TestNumbersStayInRange(t *testing.T) {
	s := NewState(ada, 99, settings())
	for i := range 200 {
		if s.Number < 3 || s.Number > 199 {
			t.Fatalf("draw %d: number %d outside 3..199", i, s.Number)
		}
		next, err := Apply(s, core.Answer(rules.IsPrime(s.Number)))
		if err != nil {
			t.Fatalf("correct answer rejected: %v", err)
		}
		s = next
	}
	if s.Score != 200 || s.Lives != 3 {
		t.Errorf("score %d lives %d, want 200 and 3", s.Score, s.Lives)
	}
}

func TestWrongAnswersCostLives(t *testing.T) {
	s := NewState(ada, 5, settings())
	for want := 2; want >= 0; want-- {
		next, err := Apply(s, core.Answer(!rules.IsPrime(s.Number)))
		if err != nil {
			t.Fatalf("wrong answer rejected: %v", err)
		}
		s = next
		if s.Lives != want {
			t.Fatalf("lives = %d, want %d", s.Lives, want)
		}
	}
	sum := s.Summary()
	if sum.Phase != core.PhaseTerminal || sum.Outcome != core.OutcomeLost || s.Feedback != overFeedback {
		t.Errorf("summary = %+v feedback %q, want terminal loss", sum, s.Feedback)
	}
	if _, err := Apply(s, core.Answer(true)); !errors.Is(err, core.ErrGameOver) {
		t.Errorf("answer after game over error = %v, want ErrGameOver", err)
	}
}

func TestSelectInputUnsupported(t *testing.T) {
	s := NewState(ada, 1, settings())
	got, err := Apply(s, core.Select(0))
	if !errors.Is(err, core.ErrUnsupported) {
		t.Fatalf("error = %v, want ErrUnsupported", err)
	}
	if got != s {
		t.Errorf("state changed: %+v -> %+v", s, got)
	}
}
