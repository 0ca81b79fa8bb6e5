package tictactoe

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

var ada = identity.Player{ID: "p-ada", Name: "Ada"}

func play(t *testing.T, s State, cells ...int) State {
	t.Helper()
	for _, c := range cells {
		next, err := Apply(s, core.Select(c))
		if err != nil {
			t.Fatalf("Apply(Select(%d)) rejected: %v", c, err)
		}
		s = next
	}
	return s
}

func TestTopRowWinForX(t *testing.T) {
	s := play(t, NewState(ada), 0, 3, 1, 4, 2)

	if s.Result.Winner != X {
		t.Fatalf("winner = %q, want X", s.Result.Winner)
	}
	if diff := cmp.Diff(rules.WinningLine{0, 1, 2}, s.Result.Line); diff != "" {
		t.Errorf("winning line mismatch (-want +got):\n%s", diff)
	}
	sum := s.Summary()
	if sum.Phase != core.PhaseTerminal || sum.Outcome != core.OutcomeWon || sum.Status != core.StatusFinished {
		t.Errorf("summary = %+v, want terminal win", sum)
	}
	if _, err := Apply(s, core.Select(8)); !errors.Is(err, core.ErrGameOver) {
		t.Errorf("move after win error = %v, want ErrGameOver", err)
	}
}

func TestTurnAlternates(t *testing.T) {
	s := NewState(ada)
	for i, cell := range []int{4, 0, 8, 2, 6, 3} {
		want := X
		if i%2 == 1 {
			want = O
		}
		if Turn(s.XIsNext) != want {
			t.Fatalf("move %d: turn = %s, want %s", i, Turn(s.XIsNext), want)
		}
		s = play(t, s, cell)
		if s.Board[cell] != want {
			t.Fatalf("move %d: cell %d = %q, want %q", i, cell, s.Board[cell], want)
		}
	}
	if s.Moves != 6 {
		t.Errorf("moves = %d, want 6", s.Moves)
	}
}

func TestRejectedMovesLeaveStateUntouched(t *testing.T) {
	s := play(t, NewState(ada), 4)

	tests := []struct {
		name string
		in   core.Input
		want error
	}{
		{name: "occupied", in: core.Select(4), want: ErrOccupied},
		{name: "past last square", in: core.Select(9), want: core.ErrUnsupported},
		{name: "negative square", in: core.Select(-1), want: core.ErrUnsupported},
		{name: "text input", in: core.Text("x"), want: core.ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(s, tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if diff := cmp.Diff(s, got); diff != "" {
				t.Errorf("state changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestAwaitingPlayer(t *testing.T) {
	s := NewState(identity.Player{})
	if s.Phase() != core.PhaseAwaitingPlayer {
		t.Fatalf("phase = %v, want AwaitingPlayer", s.Phase())
	}
	if _, err := Apply(s, core.Select(0)); !errors.Is(err, core.ErrNoPlayer) {
		t.Errorf("error = %v, want ErrNoPlayer", err)
	}
}

func TestDrawIsTerminal(t *testing.T) {
	// X O X / X O O / O X X
	s := play(t, NewState(ada), 0, 1, 2, 4, 3, 5, 7, 6, 8)
	if !s.Result.Draw || s.Result.Winner != Blank {
		t.Fatalf("result = %+v, want draw", s.Result)
	}
	if got := s.Summary().Outcome; got != core.OutcomeDraw {
		t.Errorf("outcome = %v, want Draw", got)
	}
}

func TestGameRejectionKeepsHint(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Player: ada})
	if res := g.Apply(core.Select(0)); !res.Accepted {
		t.Fatal("first move rejected")
	}
	res := g.Apply(core.Select(0))
	if res.Accepted {
		t.Fatal("move onto taken square accepted")
	}
	if res.State.Hint != ErrOccupied.Error() {
		t.Errorf("hint = %q, want %q", res.State.Hint, ErrOccupied.Error())
	}
	if g.Snapshot().Moves != 1 {
		t.Errorf("moves = %d after rejection, want 1", g.Snapshot().Moves)
	}
}

func TestSquareJSONUsesNullForBlank(t *testing.T) {
	b := Board{X, Blank, O}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `["X",null,"O",null,null,null,null,null,null]`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Board
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if back != b {
		t.Errorf("round trip = %v, want %v", back, b)
	}
	if err := json.Unmarshal([]byte(`["Z"]`), &back); err == nil {
		t.Error("Unmarshal accepted an invalid square")
	}
}
