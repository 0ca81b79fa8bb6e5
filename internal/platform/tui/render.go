package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-portal/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// RenderFrame converts a Frame to styled terminal text. cursor is the
// 0-based slot under the grid cursor, or -1; that slot is drawn reversed.
func RenderFrame(f *core.Frame, cursor int) string {
	var sb strings.Builder
	for y, line := range f.Lines() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, span := range line {
			style, ok := colorStyles[span.Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			if span.Bold {
				style = style.Bold(true)
			}
			if cursor >= 0 && span.Slot == cursor+1 {
				style = style.Reverse(true)
			}
			sb.WriteString(style.Render(span.Text))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
