package core

import "strings"

// Span is a run of text with one color.
type Span struct {
	Text  string
	Color Color
	Bold  bool
	// Slot is the 1-based index of the selectable cell this span draws,
	// or 0 when it is not selectable. The platform highlights the slot
	// under its cursor.
	Slot int
}

// Plain returns an uncolored span.
func Plain(text string) Span {
	return Span{Text: text}
}

// Colored returns a span in the given color.
func Colored(text string, c Color) Span {
	return Span{Text: text, Color: c}
}

// SlotSpan returns a span that draws selectable slot index (0-based).
func SlotSpan(index int, text string, c Color) Span {
	return Span{Text: text, Color: c, Slot: index + 1}
}

// Frame is a list of styled lines. Games render into it; the platform
// turns it into terminal output. Frame keeps game rendering free of any
// terminal library.
type Frame struct {
	lines [][]Span
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Clear removes all lines.
func (f *Frame) Clear() {
	f.lines = f.lines[:0]
}

// Line appends one line made of spans.
func (f *Frame) Line(spans ...Span) {
	f.lines = append(f.lines, spans)
}

// Text appends a plain line.
func (f *Frame) Text(text string) {
	f.Line(Plain(text))
}

// Blank appends an empty line.
func (f *Frame) Blank() {
	f.lines = append(f.lines, nil)
}

// Lines returns the rendered lines.
func (f *Frame) Lines() [][]Span {
	return f.lines
}

// String returns the frame without styling, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	for i, line := range f.lines {
		if i > 0 {
			sb.WriteRune('\n')
		}
		for _, s := range line {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}
