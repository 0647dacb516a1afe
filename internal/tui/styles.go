package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/calpick/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorRange       lipgloss.Color
	colorEvent       lipgloss.Color
	colorWeekend     lipgloss.Color
	colorDisabled    lipgloss.Color
	colorWarning     lipgloss.Color

	colorRangeBg      lipgloss.Color
	colorRangeFadedBg lipgloss.Color
	colorBlockBg      lipgloss.Color

	colorTextOnAccent  lipgloss.Color
	colorTextOnRange   lipgloss.Color
	colorTextOnWarning lipgloss.Color

	// Header
	TitleStyle          lipgloss.Style
	DotsStyle           lipgloss.Style
	HeadingStyle        lipgloss.Style
	WeekendHeadingStyle lipgloss.Style

	// Day cells
	DayStyle        lipgloss.Style
	WeekendStyle    lipgloss.Style
	TodayStyle      lipgloss.Style
	SelectedStyle   lipgloss.Style // single pick, range and block endpoints
	RangeStyle      lipgloss.Style
	RangeFadedStyle lipgloss.Style
	BlockStyle      lipgloss.Style // inner days of the selected block
	DisabledStyle   lipgloss.Style
	FillerStyle     lipgloss.Style
	EventMarkStyle  lipgloss.Style

	// Cursor style
	CursorStyle lipgloss.Style

	// Footer
	StatusStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SelectionStyle lipgloss.Style
	EventStyle     lipgloss.Style
	HelpStyle      lipgloss.Style

	// Goto prompt
	PromptStyle      lipgloss.Style
	PromptInputStyle lipgloss.Style
	PromptHintStyle  lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToday = palette.Today
	s.colorRange = palette.Range
	s.colorEvent = palette.Event
	s.colorWeekend = palette.Weekend
	s.colorDisabled = palette.Disabled
	s.colorWarning = palette.Warning

	s.colorRangeBg = palette.RangeBg
	s.colorRangeFadedBg = palette.RangeFadedBg
	s.colorBlockBg = palette.BlockBg

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnRange = palette.TextOnRange
	s.colorTextOnWarning = palette.TextOnWarning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.DotsStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.WeekendHeadingStyle = s.HeadingStyle.
		Foreground(s.colorWeekend)

	s.DayStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.WeekendStyle = s.DayStyle.
		Foreground(s.colorWeekend)

	s.TodayStyle = s.DayStyle.
		Foreground(s.colorToday).
		Bold(true).
		Underline(true)

	s.SelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnRange).
		Background(s.colorRange).
		Bold(true)

	s.RangeStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorRangeBg)

	s.RangeFadedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorRangeFadedBg)

	s.BlockStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBlockBg).
		Bold(true)

	s.DisabledStyle = s.DayStyle.
		Foreground(s.colorDisabled).
		Strikethrough(true)

	s.FillerStyle = s.DayStyle.
		Foreground(s.colorFgMuted)

	s.EventMarkStyle = lipgloss.NewStyle().
		Foreground(s.colorEvent)

	// The cursor keeps the accent foreground so it stays visible over
	// selected and range days.
	s.CursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBgSelection).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnWarning).
		Background(s.colorWarning).
		Bold(true)

	s.SelectionStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	s.EventStyle = lipgloss.NewStyle().
		Foreground(s.colorEvent).
		Background(s.colorBg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true)

	s.PromptInputStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)

	s.PromptHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(1, 2)

	return s
}
