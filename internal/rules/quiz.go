package rules

import "slices"

// Card is one memory card.
type Card struct {
	ID   int
	Face string
}

// PairMatch reports whether two cards show the same face.
func PairMatch(a, b Card) bool {
	return a.Face == b.Face
}

// IsPrime reports whether n is prime using trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PatternMatch reports exact ordered equality of two dot sequences.
func PatternMatch(input, target []int) bool {
	return slices.Equal(input, target)
}

// AddDot appends dot to seq unless it is already part of it. The returned
// slice is always a fresh copy.
func AddDot(seq []int, dot int) ([]int, bool) {
	if slices.Contains(seq, dot) {
		return slices.Clone(seq), false
	}
	out := make([]int, len(seq), len(seq)+1)
	copy(out, seq)
	return append(out, dot), true
}

// TimedPoints is the award for a correct answer with timeLeft whole
// seconds remaining. Timeouts score nothing.
func TimedPoints(timeLeft int) int {
	if timeLeft <= 0 {
		return 0
	}
	return timeLeft * 10
}
