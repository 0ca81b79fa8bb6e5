package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-portal/internal/core"
)

func TestRenderFrameKeepsText(t *testing.T) {
	f := core.NewFrame()
	f.Line(core.SlotSpan(0, " X ", core.ColorRed), core.Plain("|"), core.SlotSpan(1, " O ", core.ColorBlue))
	f.Blank()
	f.Line(core.Colored("Next player: X", core.ColorRed))

	out := RenderFrame(f, 1)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if got := lipgloss.Width(lines[0]); got != 7 {
		t.Errorf("first line width = %d, want 7", got)
	}
	if !strings.Contains(out, "Next player: X") {
		t.Errorf("status line missing from %q", out)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abc", 9); got != "   abc" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("text wider than the screen changed: %q", got)
	}
}
