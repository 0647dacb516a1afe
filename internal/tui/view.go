package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/calpick/internal/classify"
	"github.com/javiermolinar/calpick/internal/grid"
	"github.com/javiermolinar/calpick/internal/selection"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

const (
	appPadX   = 2
	appPadY   = 1
	minInnerH = 14 // header, six week rows, spacer and footer
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	minCell := view.MinCellWidth(m.widget.Headings())
	return view.ViewState{
		Width:     m.width,
		Height:    m.height,
		MinWidth:  minCell*grid.DaysPerWeek + 2*appPadX,
		MinHeight: minInnerH + 2*appPadY,
		Body:      m.renderAppContent,
	}
}

func (m Model) renderAppContent() string {
	innerW := m.width - 2*appPadX
	innerH := m.height - 2*appPadY
	cw := view.CellWidth(innerW, m.widget.Headings())
	gridW := cw * grid.DaysPerWeek

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(gridW, cw),
		m.renderGrid(cw),
		m.blankLine(gridW),
		view.RenderFooter(m.footerViewState(innerW)),
	)
	content = m.placeBox(innerW, innerH, lipgloss.Top, content)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}

func (m Model) blankLine(width int) string {
	return m.styles.DayStyle.Render(strings.Repeat(" ", width))
}

// renderHeader renders the title, the page dots and the weekday headings.
func (m Model) renderHeader(gridW, cw int) string {
	title := m.styles.TitleStyle.Render(view.Center(view.TitleText(m.widget.Title()), gridW))

	// The cursor sits at the center page, so the window holds 2*center+1 pages.
	center := m.widget.CenterPage()
	dots := m.styles.DotsStyle.Render(view.Center(view.PageDots(2*center+1, center), gridW))

	var b strings.Builder
	for _, h := range m.widget.Headings() {
		style := m.styles.HeadingStyle
		if h.Weekend() {
			style = m.styles.WeekendHeadingStyle
		}
		b.WriteString(style.Render(view.HeadingLabel(h, cw)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, dots, b.String())
}

// renderGrid renders the cursor month, padded to six rows so the footer
// keeps its place between months.
func (m Model) renderGrid(cw int) string {
	month := m.widget.Month()
	rows := make([]string, 0, maxWeekRows)
	for _, week := range month.Weeks {
		var b strings.Builder
		for _, c := range week {
			b.WriteString(m.renderCell(c, cw))
		}
		rows = append(rows, b.String())
	}
	for i := m.widget.NumberOfWeeks(); i < maxWeekRows; i++ {
		rows = append(rows, m.blankLine(cw*grid.DaysPerWeek))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCell(c classify.Cell, cw int) string {
	if c.Filler {
		return m.styles.FillerStyle.Render(strings.Repeat(" ", cw))
	}
	mark := " "
	if c.HasEvent && m.indicators {
		mark = "•"
	}
	text := runewidth.FillLeft(strconv.Itoa(c.Date.Day), cw-1) + mark
	return m.cellStyle(c).Render(text)
}

// cellStyle picks the style of a day. The cursor wins, then disabled days,
// then selection, then today, events and weekends.
func (m Model) cellStyle(c classify.Cell) lipgloss.Style {
	switch {
	case c.Date == m.day:
		return m.styles.CursorStyle
	case c.Disabled:
		return m.styles.DisabledStyle
	case c.Selected, c.StartRange, c.EndRange:
		return m.styles.SelectedStyle
	case c.InSelectedBlock:
		return m.styles.BlockStyle
	case c.InRange:
		if m.fadedRange {
			return m.styles.RangeFadedStyle
		}
		return m.styles.RangeStyle
	case c.Today:
		return m.styles.TodayStyle
	case c.HasEvent:
		return m.styles.EventStyle
	case c.Weekend:
		return m.styles.WeekendStyle
	default:
		return m.styles.DayStyle
	}
}

func (m Model) footerViewState(innerW int) view.FooterViewState {
	payload, ok := m.widget.Lookup(m.day)
	dayText := view.EventLine(m.day, payload, ok)
	if m.widget.IsDisabled(m.day) {
		dayText += " · disabled"
	}
	dayStyle := m.styles.HelpStyle
	if ok {
		dayStyle = m.styles.EventStyle
	}

	return view.FooterViewState{
		InnerW: innerW,
		Lines: []view.FooterLine{
			{Text: view.SelectionSummary(m.widget.State()), Style: m.styles.SelectionStyle},
			{Text: dayText, Style: dayStyle},
			m.statusLine(),
			{Text: m.helpText(), Style: m.styles.HelpStyle},
		},
		VAlign: lipgloss.Top,
		Bg:     m.styles.colorBg,
	}
}

// statusLine shows the goto prompt while it is open, otherwise the latest
// status or error message.
func (m Model) statusLine() view.FooterLine {
	if m.mode == ModePrompt {
		text := m.styles.PromptStyle.Render(" Go to ") + " " + m.prompt.View()
		if hint := m.promptHint(); hint != "" {
			text += "  " + m.styles.PromptHintStyle.Render(hint)
		}
		return view.FooterLine{Text: text, Style: m.styles.PromptInputStyle}
	}
	if m.statusMsg == "" {
		return view.FooterLine{Style: m.styles.StatusStyle}
	}
	if m.err != nil {
		return view.FooterLine{Text: m.statusMsg, Style: m.styles.ErrorStyle}
	}
	return view.FooterLine{Text: m.statusMsg, Style: m.styles.StatusStyle}
}

func (m Model) helpText() string {
	if m.mode == ModePrompt {
		return "enter go · tab complete · esc cancel"
	}
	parts := []string{"hjkl move", "n/p month", "[/] page", "enter pick"}
	if m.widget.Mode() == selection.Range {
		parts = append(parts, "s start/end")
	}
	parts = append(parts, "t today", "g goto", "y copy", "q quit")
	return strings.Join(parts, " · ")
}
