package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/calpick/internal/grid"
)

// TitleText frames the month title with navigation arrows.
func TitleText(title string) string {
	return "‹  " + title + "  ›"
}

// PageDots marks the current page of a paging window, e.g. "○ ○ ● ○ ○".
// A single page renders as an empty string.
func PageDots(pages, current int) string {
	if pages <= 1 {
		return ""
	}
	dots := make([]string, pages)
	for i := range dots {
		dots[i] = "○"
		if i == current {
			dots[i] = "●"
		}
	}
	return strings.Join(dots, " ")
}

// HeadingLabel fits a day heading into a cell of width columns.
func HeadingLabel(h grid.Heading, width int) string {
	return Center(runewidth.Truncate(h.Label, width, ""), width)
}

// MinCellWidth is the narrowest day column that still fits the widest
// heading with one column of padding on each side.
func MinCellWidth(headings [grid.DaysPerWeek]grid.Heading) int {
	minW := 4
	for _, h := range headings {
		minW = max(minW, runewidth.StringWidth(h.Label)+2)
	}
	return minW
}

// CellWidth spreads innerW over the seven columns, between MinCellWidth and
// eight columns.
func CellWidth(innerW int, headings [grid.DaysPerWeek]grid.Heading) int {
	return max(min(innerW/grid.DaysPerWeek, 8), MinCellWidth(headings))
}
