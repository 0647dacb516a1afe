package dateutil

import (
	"fmt"
	"time"
)

// Granularity selects the unit used when comparing dates.
type Granularity int

const (
	ByDay Granularity = iota
	ByMonth
)

// Date is a calendar day without time or location.
// The zero value means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date. Out-of-range values are normalized the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in the local time zone.
func Today() Date {
	return FromTime(time.Now())
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD. The zero date formats as an empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Format formats d with a time layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty input yields the zero date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months. The day is clamped to the last day
// of the target month, so Jan 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	target := FromTime(first)
	if last := target.DaysInMonth(); d.Day > last {
		target.Day = last
	} else {
		target.Day = d.Day
	}
	return target
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.DaysInMonth()}
}

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayIndex returns the zero-based day of month.
func (d Date) DayIndex() int {
	return d.Day - 1
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func (d Date) ISOWeekday() int {
	wd := int(d.Time().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Weekday returns the time.Weekday of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// WeekNumber returns the ISO 8601 week number of d.
func (d Date) WeekNumber() int {
	_, week := d.Time().ISOWeek()
	return week
}

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

// MonthsBetween returns the number of whole months from a's month to b's month.
func MonthsBetween(a, b Date) int {
	return (b.Year-a.Year)*12 + int(b.Month) - int(a.Month)
}

// compare returns -1, 0 or 1 comparing d to o at granularity g.
func (d Date) compare(o Date, g Granularity) int {
	if d.Year != o.Year {
		return sign(d.Year - o.Year)
	}
	if d.Month != o.Month {
		return sign(int(d.Month) - int(o.Month))
	}
	if g == ByMonth {
		return 0
	}
	return sign(d.Day - o.Day)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly before o at granularity g.
func (d Date) Before(o Date, g Granularity) bool { return d.compare(o, g) < 0 }

// After reports whether d is strictly after o at granularity g.
func (d Date) After(o Date, g Granularity) bool { return d.compare(o, g) > 0 }

// Same reports whether d equals o at granularity g.
func (d Date) Same(o Date, g Granularity) bool { return d.compare(o, g) == 0 }

// SameOrBefore reports whether d is not after o at granularity g.
func (d Date) SameOrBefore(o Date, g Granularity) bool { return d.compare(o, g) <= 0 }

// SameOrAfter reports whether d is not before o at granularity g.
func (d Date) SameOrAfter(o Date, g Granularity) bool { return d.compare(o, g) >= 0 }
