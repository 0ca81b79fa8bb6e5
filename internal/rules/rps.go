package rules

// Throw is a rock-paper-scissors hand.
type Throw uint8

const (
	Rock Throw = iota
	Paper
	Scissors
)

// Throws lists the hands in display order.
var Throws = []Throw{Rock, Paper, Scissors}

func (t Throw) String() string {
	switch t {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}

// Result is a round outcome from the player's side.
type Result int8

const (
	Lose Result = -1
	Tie  Result = 0
	Win  Result = 1
)

// Beats reports whether a defeats b.
func Beats(a, b Throw) bool {
	return (a == Rock && b == Scissors) ||
		(a == Paper && b == Rock) ||
		(a == Scissors && b == Paper)
}

// Judge resolves player against cpu.
func Judge(player, cpu Throw) Result {
	switch {
	case player == cpu:
		return Tie
	case Beats(player, cpu):
		return Win
	default:
		return Lose
	}
}
