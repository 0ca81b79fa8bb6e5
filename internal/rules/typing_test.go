package rules

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTypingProgress(t *testing.T) {
	got := TypingProgress("cat", "cu")
	want := []CharState{Typed, Wrong, Pending}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TypingProgress (-want +got):\n%s", diff)
	}
	if got := TypingProgress("héllo", "hé"); got[1] != Typed {
		t.Errorf("multi-byte rune not matched: %v", got)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		target, input string
		want          int
	}{
		{"hello", "", 100},
		{"hello", "hello", 100},
		{"hello", "hallo", 80},
		{"hi", "hiya", 50}, // extra characters count as misses
	}
	for _, tt := range tests {
		if got := Accuracy(tt.target, tt.input); got != tt.want {
			t.Errorf("Accuracy(%q, %q) = %d, want %d", tt.target, tt.input, got, tt.want)
		}
	}
}

func TestWordsPerMinute(t *testing.T) {
	tests := []struct {
		target  string
		elapsed time.Duration
		want    int
	}{
		{"the quick brown fox", 4 * time.Second, 60},
		{"the quick brown fox", 7 * time.Second, 34}, // 34.28 rounds down
		{"one two three", 4 * time.Second, 45},
		{"anything", 0, 0},
	}
	for _, tt := range tests {
		if got := WordsPerMinute(tt.target, tt.elapsed); got != tt.want {
			t.Errorf("WordsPerMinute(%q, %v) = %d, want %d", tt.target, tt.elapsed, got, tt.want)
		}
	}
}
