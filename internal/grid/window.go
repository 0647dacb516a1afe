package grid

import "github.com/javiermolinar/calpick/internal/dateutil"

// WindowRadius is how many months are kept on each side of the cursor when
// paging is enabled. The cursor month sits at page index WindowRadius.
const WindowRadius = 2

// MonthWindow is the contiguous run of months a pager keeps rendered.
// With paging disabled it holds only the cursor month.
type MonthWindow struct {
	months []dateutil.Date
	center int
}

// NewMonthWindow creates a window around cursor.
func NewMonthWindow(cursor dateutil.Date, paging bool) *MonthWindow {
	cursor = cursor.StartOfMonth()
	if !paging {
		return &MonthWindow{months: []dateutil.Date{cursor}}
	}

	w := &MonthWindow{
		months: make([]dateutil.Date, 0, 2*WindowRadius+1),
		center: WindowRadius,
	}
	for i := -WindowRadius; i <= WindowRadius; i++ {
		w.months = append(w.months, cursor.AddMonths(i))
	}
	return w
}

// Months returns the months in display order.
func (w *MonthWindow) Months() []dateutil.Date {
	out := make([]dateutil.Date, len(w.months))
	copy(out, w.months)
	return out
}

// Current returns the cursor month.
func (w *MonthWindow) Current() dateutil.Date {
	return w.months[w.center]
}

// Center returns the page index of the cursor month.
func (w *MonthWindow) Center() int {
	return w.center
}

// Delta converts a settled page index into a month offset from the cursor.
func (w *MonthWindow) Delta(page int) int {
	return page - w.center
}

// ShiftForward moves the window one month ahead.
func (w *MonthWindow) ShiftForward() {
	for i := range w.months {
		w.months[i] = w.months[i].AddMonths(1)
	}
}

// ShiftBackward moves the window one month back.
func (w *MonthWindow) ShiftBackward() {
	for i := range w.months {
		w.months[i] = w.months[i].AddMonths(-1)
	}
}

// Recenter rebuilds the window around cursor, keeping the paging mode.
func (w *MonthWindow) Recenter(cursor dateutil.Date) {
	*w = *NewMonthWindow(cursor, len(w.months) > 1)
}
