package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for the month printer.
var (
	// Today: bold yellow so it stands out from selections
	colorToday = color.New(color.FgYellow, color.Bold)

	// Selected day and range endpoints: inverted cyan
	colorSelected = color.New(color.FgBlack, color.BgCyan, color.Bold)

	// Days strictly inside a range or block
	colorRange = color.New(color.FgCyan)

	// Outside the enabled bounds
	colorDisabled = color.New(color.FgWhite, color.Faint, color.CrossedOut)

	// Days carrying an event
	colorEvent = color.New(color.FgMagenta, color.Underline)

	// Weekend columns
	colorWeekend = color.New(color.FgRed)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatSelected(s string) string {
	return colorSelected.Sprint(s)
}

func formatRange(s string) string {
	return colorRange.Sprint(s)
}

func formatDisabled(s string) string {
	return colorDisabled.Sprint(s)
}

func formatEvent(s string) string {
	return colorEvent.Sprint(s)
}

func formatWeekend(s string) string {
	return colorWeekend.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
