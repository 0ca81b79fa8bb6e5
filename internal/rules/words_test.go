package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScoreGuess(t *testing.T) {
	tests := []struct {
		guess    string
		solution string
		want     []LetterScore
	}{
		{"ABACK", "ABACK", []LetterScore{Correct, Correct, Correct, Correct, Correct}},
		{"ABBEY", "ABACK", []LetterScore{Correct, Correct, Absent, Absent, Absent}},
		{"LOLLY", "ALLOW", []LetterScore{Present, Present, Correct, Absent, Absent}},
		{"SPEED", "ABIDE", []LetterScore{Absent, Absent, Present, Absent, Present}},
		{"crane", "REACT", []LetterScore{Present, Present, Correct, Absent, Present}},
		{"ZZZZZ", "ABACK", []LetterScore{Absent, Absent, Absent, Absent, Absent}},
	}

	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.solution, func(t *testing.T) {
			got := ScoreGuess(tt.guess, tt.solution)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScoreGuess(%q, %q) mismatch (-want +got):\n%s", tt.guess, tt.solution, diff)
			}
		})
	}
}

func TestSolved(t *testing.T) {
	if !Solved(ScoreGuess("HOUSE", "house")) {
		t.Error("identical words should be solved")
	}
	if Solved(ScoreGuess("HORSE", "HOUSE")) {
		t.Error("different words should not be solved")
	}
	if Solved(nil) {
		t.Error("empty score should not be solved")
	}
}
