package rules

import (
	"math"
	"strings"
	"time"
)

// CharState is the state of one target character while typing.
type CharState uint8

const (
	Pending CharState = iota
	Typed
	Wrong
)

// TypingProgress compares input against target character by character.
// Characters past the end of input are pending.
func TypingProgress(target, input string) []CharState {
	t := []rune(target)
	in := []rune(input)
	out := make([]CharState, len(t))
	for i := range t {
		switch {
		case i >= len(in):
			out[i] = Pending
		case in[i] == t[i]:
			out[i] = Typed
		default:
			out[i] = Wrong
		}
	}
	return out
}

// Accuracy returns the percentage of typed characters that match target.
func Accuracy(target, input string) int {
	in := []rune(input)
	if len(in) == 0 {
		return 100
	}
	t := []rune(target)
	ok := 0
	for i, r := range in {
		if i < len(t) && t[i] == r {
			ok++
		}
	}
	return ok * 100 / len(in)
}

// WordsPerMinute is round(words / seconds * 60), counting words as
// whitespace-separated fields of target.
func WordsPerMinute(target string, elapsed time.Duration) int {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	words := len(strings.Fields(target))
	return int(math.Round(float64(words) / secs * 60))
}
