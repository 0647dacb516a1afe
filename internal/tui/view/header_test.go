package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/calpick/internal/grid"
)

func TestPageDots(t *testing.T) {
	tests := []struct {
		pages, current int
		want           string
	}{
		{pages: 1, current: 0, want: ""},
		{pages: 5, current: 2, want: "○ ○ ● ○ ○"},
		{pages: 3, current: 0, want: "● ○ ○"},
	}
	for _, tt := range tests {
		if got := PageDots(tt.pages, tt.current); got != tt.want {
			t.Errorf("PageDots(%d, %d) = %q, want %q", tt.pages, tt.current, got, tt.want)
		}
	}
}

func TestCellWidth(t *testing.T) {
	short := grid.Headings(1, []string{"S", "M", "T", "W", "T", "F", "S"})
	long := grid.Headings(1, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"})

	tests := []struct {
		name     string
		innerW   int
		headings [grid.DaysPerWeek]grid.Heading
		want     int
	}{
		{name: "narrow", innerW: 20, headings: short, want: 4},
		{name: "fits", innerW: 42, headings: short, want: 6},
		{name: "capped", innerW: 200, headings: short, want: 8},
		{name: "wide_headings", innerW: 20, headings: long, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellWidth(tt.innerW, tt.headings); got != tt.want {
				t.Errorf("CellWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHeadingLabel(t *testing.T) {
	h := grid.Heading{Label: "Mon", Weekday: 1}
	if got := HeadingLabel(h, 6); got != " Mon  " {
		t.Errorf("HeadingLabel() = %q", got)
	}
	if got := HeadingLabel(h, 2); got != "Mo" {
		t.Errorf("truncated HeadingLabel() = %q", got)
	}
}

func TestTitleText(t *testing.T) {
	if got := TitleText("March 2024"); got != "‹  March 2024  ›" {
		t.Errorf("TitleText() = %q", got)
	}
}

func TestRenderFooter(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	style := lipgloss.NewStyle().Background(lipgloss.Color("#112233"))
	out := RenderFooter(FooterViewState{
		InnerW: 12,
		Lines: []FooterLine{
			{Text: "short", Style: style},
			{Text: "a line that is far too long", Style: style},
		},
		VAlign: lipgloss.Top,
		Bg:     lipgloss.Color("#112233"),
	})

	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("footer has %d lines, want 2", len(lines))
	}
	if lines[0] != "short       " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "a line that…" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if RenderFooter(FooterViewState{InnerW: 12}) != "" {
		t.Error("empty footer should render nothing")
	}
}

func TestCenterAndTruncate(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center() = %q", got)
	}
	if got := Center("abcdef", 3); got != "abc" {
		t.Errorf("Center() overflow = %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Truncate(0) = %q", got)
	}
}

func TestRender(t *testing.T) {
	body := func() string { return "calendar" }
	tests := []struct {
		name  string
		state ViewState
		want  string
	}{
		{"unsized", ViewState{Body: body}, "Loading..."},
		{"no body", ViewState{Width: 80, Height: 24}, "Loading..."},
		{"too narrow", ViewState{Width: 20, Height: 24, MinWidth: 32, MinHeight: 16, Body: body}, "Terminal too small"},
		{"too short", ViewState{Width: 80, Height: 10, MinWidth: 32, MinHeight: 16, Body: body}, "Terminal too small"},
		{"fits", ViewState{Width: 32, Height: 16, MinWidth: 32, MinHeight: 16, Body: body}, "calendar"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.state); got != tc.want {
				t.Errorf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPadLinesWithBackground(t *testing.T) {
	got := ansi.Strip(PadLinesWithBackground("ab\nabcdef", 4, 3, lipgloss.Color("#000000")))
	want := "ab  \nabcdef\n    "
	if got != want {
		t.Errorf("PadLinesWithBackground() = %q, want %q", got, want)
	}

	if got := PadLinesWithBackground("x", 0, 3, lipgloss.Color("#000000")); got != "x" {
		t.Errorf("zero width should return content unchanged, got %q", got)
	}
}
