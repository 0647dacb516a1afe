// Package bounds decides which grid days are disabled.
package bounds

import "github.com/javiermolinar/calpick/internal/dateutil"

// Bounds holds optional inclusive limits. A zero date means no limit on that side.
type Bounds struct {
	Before dateutil.Date // days before this one are disabled
	After  dateutil.Date // days after this one are disabled
}

// IsDisabled reports whether dayIndex (zero-based) of the month starting at
// monthStart is outside the bounds. Whole months are checked first and the
// boundary month day by day; the two never mix, so a day in a bound's own
// month is only ever disabled by the day comparison.
func (b Bounds) IsDisabled(dayIndex int, monthStart dateutil.Date) bool {
	hasBefore := !b.Before.IsZero()
	hasAfter := !b.After.IsZero()

	if hasBefore && monthStart.Before(b.Before, dateutil.ByMonth) {
		return true
	}
	if hasAfter && monthStart.After(b.After, dateutil.ByMonth) {
		return true
	}
	if hasBefore && monthStart.Same(b.Before, dateutil.ByMonth) && dayIndex < b.Before.DayIndex() {
		return true
	}
	if hasAfter && monthStart.Same(b.After, dateutil.ByMonth) && dayIndex > b.After.DayIndex() {
		return true
	}
	return false
}

// DateDisabled reports whether d is outside the bounds.
func (b Bounds) DateDisabled(d dateutil.Date) bool {
	return b.IsDisabled(d.DayIndex(), d.StartOfMonth())
}

// IsZero reports whether neither limit is set.
func (b Bounds) IsZero() bool {
	return b.Before.IsZero() && b.After.IsZero()
}
