// Package grid lays out a month as week rows of seven cells.
package grid

import (
	"github.com/javiermolinar/calpick/internal/dateutil"
)

// DaysPerWeek is the number of cells in a row.
const DaysPerWeek = 7

// RawCell is one grid position before classification.
type RawCell struct {
	DayIndex int  // zero-based day of month; meaningless for fillers
	Filler   bool // padding before day 1 or after the last day
	Weekday  int  // 0=Sunday .. 6=Saturday
}

// Weekend reports whether the cell sits on a Saturday or Sunday column.
func (c RawCell) Weekend() bool {
	return c.Weekday == 0 || c.Weekday == 6
}

// WeekRow is exactly seven cells.
type WeekRow [DaysPerWeek]RawCell

// Offset returns the number of leading fillers before day 1 of month.
// weekStart is 0=Sunday .. 6=Saturday.
func Offset(month dateutil.Date, weekStart int) int {
	return (month.StartOfMonth().ISOWeekday() - weekStart + 7) % 7
}

// Build returns the week rows for month. Rows stop as soon as one closes on
// or after the last day, so the result has between 4 and 6 rows and never a
// trailing row of fillers.
func Build(month dateutil.Date, weekStart int) []WeekRow {
	offset := Offset(month, weekStart)
	daysCount := month.DaysInMonth()

	var (
		rows []WeekRow
		row  WeekRow
	)
	for index := 0; ; index++ {
		dayIndex := index - offset
		col := index % DaysPerWeek
		row[col] = RawCell{
			DayIndex: dayIndex,
			Filler:   dayIndex < 0 || dayIndex >= daysCount,
			Weekday:  (index + weekStart) % DaysPerWeek,
		}
		if col == DaysPerWeek-1 {
			rows = append(rows, row)
			row = WeekRow{}
			if dayIndex+1 >= daysCount {
				break
			}
		}
	}
	return rows
}

// NumberOfWeeks returns how many rows Build produces for month.
func NumberOfWeeks(month dateutil.Date, weekStart int) int {
	offset := Offset(month, weekStart)
	return (offset + month.DaysInMonth() + DaysPerWeek - 1) / DaysPerWeek
}

// Heading is one column label.
type Heading struct {
	Label   string
	Weekday int // 0=Sunday .. 6=Saturday
}

// Weekend reports whether the column is Saturday or Sunday.
func (h Heading) Weekend() bool {
	return h.Weekday == 0 || h.Weekday == 6
}

// Headings rotates names (Sunday first) so the first column is weekStart.
// Missing names render as empty labels.
func Headings(weekStart int, names []string) [DaysPerWeek]Heading {
	var out [DaysPerWeek]Heading
	for i := 0; i < DaysPerWeek; i++ {
		j := (i + weekStart) % DaysPerWeek
		out[i].Weekday = j
		if j < len(names) {
			out[i].Label = names[j]
		}
	}
	return out
}
