package core

import "time"

// InputKind classifies a player or platform input.
type InputKind int

const (
	InputNone   InputKind = iota
	InputSelect           // pick an index: cell, column, card, dot, option, throw
	InputText             // submit text: a word guess or typed characters
	InputAnswer           // yes/no answer (prime or not)
	InputStart            // host starts a lobby
	InputWake             // a scheduled wake fired
)

// String returns a human-readable name for the kind.
func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "None"
	case InputSelect:
		return "Select"
	case InputText:
		return "Text"
	case InputAnswer:
		return "Answer"
	case InputStart:
		return "Start"
	case InputWake:
		return "Wake"
	default:
		return "Unknown"
	}
}

// Input is one action applied to a game. Only the field matching Kind is used.
type Input struct {
	Kind  InputKind
	Index int
	Text  string
	Yes   bool
	Token uint64    // InputWake: the token of the wake that fired
	At    time.Time // when the input happened; zero means "now" is irrelevant
}

// Select builds an InputSelect.
func Select(index int) Input {
	return Input{Kind: InputSelect, Index: index}
}

// Text builds an InputText.
func Text(s string) Input {
	return Input{Kind: InputText, Text: s}
}

// Answer builds an InputAnswer.
func Answer(yes bool) Input {
	return Input{Kind: InputAnswer, Yes: yes}
}

// Start builds an InputStart.
func Start() Input {
	return Input{Kind: InputStart}
}

// WakeInput builds the input delivered when the wake with token fires.
func WakeInput(token uint64) Input {
	return Input{Kind: InputWake, Token: token}
}
