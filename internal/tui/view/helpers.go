package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// PlaceBox places content at the top-left (or vAlign) of a w x h box whose
// empty cells are painted with bg.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg))
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground makes content exactly height lines, each at least
// width columns, filling the gaps with bg. Wider lines are left alone.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	fill := lipgloss.NewStyle().Background(bg)

	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += fill.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Truncate cuts styled content to width display columns.
func Truncate(content string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(content, width, "…")
}

// Center pads plain text with spaces so it sits in the middle of width.
func Center(s string, width int) string {
	s = runewidth.Truncate(s, width, "")
	left := (width - runewidth.StringWidth(s)) / 2
	return runewidth.FillRight(strings.Repeat(" ", left)+s, width)
}
