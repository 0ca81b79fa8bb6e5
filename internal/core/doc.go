// Package core provides fundamental types shared by the portal's games and
// platform: inputs, wakes, game state summaries and a styled text frame.
// It has no terminal or network dependencies so game logic stays pure and
// testable.
package core
