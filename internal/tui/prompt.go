package tui

import (
	"strings"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/tui/input"
)

// gotoKeywords are the relative words offered while typing in the prompt.
var gotoKeywords = append([]input.Keyword{
	{Name: "today", Description: "Jump to today"},
	{Name: "tomorrow", Description: "The day after today"},
	{Name: "yesterday", Description: "The day before today"},
	{Name: "next-week", Description: "Seven days from today"},
	{Name: "last-week", Description: "Seven days ago"},
	{Name: "next-month", Description: "Same day next month"},
	{Name: "last-month", Description: "Same day last month"},
}, weekdayKeywords()...)

func weekdayKeywords() []input.Keyword {
	kws := make([]input.Keyword, 0, 7)
	for i := 0; i < 7; i++ {
		day := time.Weekday((i + 1) % 7) // Monday first
		kws = append(kws, input.Keyword{
			Name:        strings.ToLower(day.String()),
			Description: "Next " + day.String(),
		})
	}
	return kws
}

// parseGoto resolves prompt input to a day. Besides relative keywords and
// YYYY-MM-DD it accepts YYYY-MM, which lands on the first of the month.
func parseGoto(s string, today dateutil.Date) (dateutil.Date, error) {
	s = strings.TrimSpace(s)
	d, err := dateutil.ParseRelativeDate(s, today)
	if err == nil {
		return d, nil
	}
	if month, monthErr := dateutil.ParseMonth(s); monthErr == nil {
		return month, nil
	}
	return dateutil.Date{}, err
}

// promptHint returns the description of the first keyword matching the
// prompt input.
func (m Model) promptHint() string {
	matches := input.Match(m.prompt.Value(), gotoKeywords)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Name + " · " + matches[0].Description
}
