// Package dateutil provides calendar-day arithmetic, parsing and validation.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange represents a validated, inclusive date range.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange creates a new DateRange with validation.
// startDate can be empty (defaults to today) or in YYYY-MM-DD format.
// endDate can be empty (defaults to startDate) or in YYYY-MM-DD format.
// Returns an error if endDate is before startDate.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start, ByDay) {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d Date) bool {
	return d.SameOrAfter(r.Start, ByDay) && d.SameOrBefore(r.End, ByDay)
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Today(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return FromTime(t), nil
}

// ParseMonth parses a month string in YYYY-MM format and returns its first day.
// If the string is empty, returns the first day of the current month.
func ParseMonth(s string) (Date, error) {
	if s == "" {
		return Today().StartOfMonth(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Date{}, ErrInvalidMonthFormat
	}
	return FromTime(t), nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday", "next-week", "next-month"
//   - Last prefixed: "last-week", "last-month"
//
// All inputs are case-insensitive.
// Returns ErrInvalidDateFormat for unrecognized input.
func ParseRelativeDate(s string, relativeTo Date) (Date, error) {
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return relativeTo, nil
	case "tomorrow":
		return relativeTo.AddDays(1), nil
	case "yesterday":
		return relativeTo.AddDays(-1), nil
	case "next-week":
		return relativeTo.AddDays(7), nil
	case "last-week":
		return relativeTo.AddDays(-7), nil
	case "next-month":
		return relativeTo.AddMonths(1), nil
	case "last-month":
		return relativeTo.AddMonths(-1), nil
	}

	// "next-monday", "next-tuesday", etc.
	if strings.HasPrefix(input, "next-") {
		weekdayName := strings.TrimPrefix(input, "next-")
		if targetDay, ok := weekdayMap[weekdayName]; ok {
			return nextWeekday(relativeTo, targetDay), nil
		}
		return Date{}, ErrInvalidDateFormat
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(relativeTo, targetDay), nil
	}

	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return FromTime(t), nil
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today Date, target time.Weekday) Date {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDays(daysUntil)
}
