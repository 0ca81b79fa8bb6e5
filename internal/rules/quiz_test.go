package rules

import (
	"slices"
	"testing"
)

func TestIsPrime(t *testing.T) {
	for n := -3; n <= 200; n++ {
		want := n > 1
		for d := 2; d < n; d++ {
			if n%d == 0 {
				want = false
				break
			}
		}
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestPairMatch(t *testing.T) {
	a := Card{ID: 0, Face: "🍎"}
	b := Card{ID: 7, Face: "🍎"}
	c := Card{ID: 3, Face: "🍌"}
	if !PairMatch(a, b) {
		t.Error("same faces should match")
	}
	if PairMatch(a, c) {
		t.Error("different faces should not match")
	}
}

func TestAddDotIgnoresDuplicates(t *testing.T) {
	seq, added := AddDot(nil, 4)
	if !added {
		t.Fatal("first dot should be added")
	}
	seq, _ = AddDot(seq, 1)
	next, added := AddDot(seq, 4)
	if added {
		t.Error("duplicate dot was added")
	}
	if !slices.Equal(next, []int{4, 1}) {
		t.Errorf("sequence = %v, want [4 1]", next)
	}
	if !PatternMatch(next, []int{4, 1}) || PatternMatch(next, []int{1, 4}) {
		t.Error("PatternMatch must compare in order")
	}
}

func TestTimedPoints(t *testing.T) {
	if got := TimedPoints(7); got != 70 {
		t.Errorf("TimedPoints(7) = %d, want 70", got)
	}
	if got := TimedPoints(0); got != 0 {
		t.Errorf("TimedPoints(0) = %d, want 0", got)
	}
}
