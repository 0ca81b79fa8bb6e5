package core

import "math/rand/v2"

// Draw returns a uniform integer in [0, n) derived from seed and the
// draw counter. Games keep the counter in their state, so the same
// state always draws the same value and transitions stay pure.
func Draw(seed int64, draw int, n int) int {
	if n <= 0 {
		return 0
	}
	r := rand.New(rand.NewPCG(uint64(seed), uint64(draw))) //nolint:gosec // game content, not secrets
	return r.IntN(n)
}

// Permutation returns a Fisher-Yates shuffle of 0..n-1 for seed and draw.
func Permutation(seed int64, draw int, n int) []int {
	r := rand.New(rand.NewPCG(uint64(seed), uint64(draw))) //nolint:gosec // game content, not secrets
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
