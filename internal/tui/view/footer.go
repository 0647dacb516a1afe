package view

import "github.com/charmbracelet/lipgloss"

// FooterLine is one styled footer row.
type FooterLine struct {
	Text  string
	Style lipgloss.Style
}

// FooterViewState holds the lines needed to render the footer section.
type FooterViewState struct {
	InnerW int
	Lines  []FooterLine
	VAlign lipgloss.Position
	Bg     lipgloss.Color
}

// RenderFooter renders each line truncated to the inner width and places
// them in a box of exactly len(Lines) rows.
func RenderFooter(state FooterViewState) string {
	if len(state.Lines) == 0 {
		return ""
	}

	var s string
	for i, line := range state.Lines {
		if i > 0 {
			s += "\n"
		}
		s += footerLine(state.InnerW, line.Style, line.Text)
	}

	return PlaceBox(state.InnerW, len(state.Lines), state.VAlign, s, state.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = Truncate(content, contentWidth)
	}
	return style.Render(content)
}
