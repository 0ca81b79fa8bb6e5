package rules

import "strings"

// LetterScore classifies one letter of a guess.
type LetterScore uint8

const (
	Absent LetterScore = iota
	Present
	Correct
)

// String returns a one-word name for the score.
func (s LetterScore) String() string {
	switch s {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// ScoreGuess scores guess against solution, case-insensitively.
//
// Exact matches are marked first and removed from the pool of solution
// letters. Remaining guess letters are then marked present while the pool
// still holds them, so each solution letter is consumed at most once.
func ScoreGuess(guess, solution string) []LetterScore {
	g := []rune(strings.ToUpper(guess))
	s := []rune(strings.ToUpper(solution))
	out := make([]LetterScore, len(g))

	pool := make(map[rune]int, len(s))
	for i, r := range s {
		if i < len(g) && g[i] == r {
			out[i] = Correct
			continue
		}
		pool[r]++
	}
	for i, r := range g {
		if out[i] == Correct {
			continue
		}
		if pool[r] > 0 {
			out[i] = Present
			pool[r]--
		}
	}
	return out
}

// Solved reports whether every letter is correct.
func Solved(scores []LetterScore) bool {
	if len(scores) == 0 {
		return false
	}
	for _, s := range scores {
		if s != Correct {
			return false
		}
	}
	return true
}
