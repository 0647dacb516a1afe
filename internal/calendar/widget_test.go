package calendar

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/bounds"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/selection"
)

func date(y, m, d int) dateutil.Date {
	return dateutil.NewDate(y, time.Month(m), d)
}

// recorder captures handler calls as strings in firing order.
type recorder struct {
	calls []string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnDateSelect: func(d, s, e dateutil.Date) {
			r.calls = append(r.calls, "date:"+d.String()+":"+s.String()+":"+e.String())
		},
		OnStartDateSelect: func(d, s dateutil.Date) {
			r.calls = append(r.calls, "start:"+d.String()+":"+s.String())
		},
		OnEndDateSelect: func(d, e dateutil.Date) {
			r.calls = append(r.calls, "end:"+d.String()+":"+e.String())
		},
		OnMultiRangeStartDateSelect: func(d dateutil.Date) {
			r.calls = append(r.calls, "block:"+d.String())
		},
		OnTouchNext: func(c dateutil.Date) { r.calls = append(r.calls, "touch-next:"+c.String()) },
		OnTouchPrev: func(c dateutil.Date) { r.calls = append(r.calls, "touch-prev:"+c.String()) },
		OnSwipeNext: func(c dateutil.Date) { r.calls = append(r.calls, "swipe-next:"+c.String()) },
		OnSwipePrev: func(c dateutil.Date) { r.calls = append(r.calls, "swipe-prev:"+c.String()) },
	}
}

func newWidget(t *testing.T, opts Options, h Handlers) *Widget {
	t.Helper()
	w, err := New(opts, h)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return w
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{name: "week start too large", opts: Options{WeekStart: 7}, wantErr: ErrInvalidWeekStart},
		{name: "negative week start", opts: Options{WeekStart: -1}, wantErr: ErrInvalidWeekStart},
		{name: "short month names", opts: Options{MonthNames: []string{"Jan"}}, wantErr: ErrInvalidMonthNames},
		{name: "long headings", opts: Options{DayHeadings: make([]string, 8)}, wantErr: ErrInvalidDayHeadings},
		{name: "bad block length", opts: Options{Mode: selection.MultiRange}, wantErr: selection.ErrInvalidBlockLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts, Handlers{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	w := newWidget(t, Options{Today: date(2024, 3, 15), Mode: selection.Range}, Handlers{})

	if w.Cursor() != date(2024, 3, 1) {
		t.Errorf("cursor = %v, want start of today's month", w.Cursor())
	}
	st := w.State().(selection.RangeState)
	if st.Start != date(2024, 3, 15) || st.End != date(2024, 3, 15) {
		t.Errorf("range should default to today, got %+v", st)
	}
	if w.Title() != "March 2024" {
		t.Errorf("title = %q", w.Title())
	}
}

func TestNavigation_Touch(t *testing.T) {
	rec := &recorder{}
	w := newWidget(t, Options{Cursor: date(2024, 1, 20), Today: date(2024, 1, 20)}, rec.handlers())

	if got := w.Next(); got != date(2024, 2, 1) {
		t.Errorf("Next() = %v", got)
	}
	w.Prev()
	w.Prev()

	want := []string{"touch-next:2024-02-01", "touch-prev:2024-01-01", "touch-prev:2023-12-01"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestNavigation_Settle(t *testing.T) {
	rec := &recorder{}
	w := newWidget(t, Options{Cursor: date(2024, 6, 1), Today: date(2024, 6, 1), Paging: true}, rec.handlers())

	if len(w.Months()) != 5 || w.CenterPage() != 2 {
		t.Fatalf("expected a five-month window centered on page 2")
	}

	tests := []struct {
		name     string
		page     int
		want     dateutil.Date
		wantCall string
	}{
		{name: "center page does nothing", page: 2, want: date(2024, 6, 1)},
		{name: "one page right", page: 3, want: date(2024, 7, 1), wantCall: "swipe-next:2024-07-01"},
		{name: "two pages left", page: 0, want: date(2024, 5, 1), wantCall: "swipe-prev:2024-05-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.calls = nil
			if got := w.Settle(tt.page); got != tt.want {
				t.Errorf("Settle(%d) = %v, want %v", tt.page, got, tt.want)
			}
			if tt.wantCall == "" {
				if len(rec.calls) != 0 {
					t.Errorf("unexpected calls %v", rec.calls)
				}
				return
			}
			if len(rec.calls) != 1 || rec.calls[0] != tt.wantCall {
				t.Errorf("calls = %v, want [%s]", rec.calls, tt.wantCall)
			}
			months := w.Months()
			if months[w.CenterPage()].Start != tt.want {
				t.Errorf("window not recentered: center = %v", months[w.CenterPage()].Start)
			}
		})
	}
}

func TestGoTo_NoHandlers(t *testing.T) {
	rec := &recorder{}
	w := newWidget(t, Options{Cursor: date(2024, 6, 1), Today: date(2024, 6, 1)}, rec.handlers())
	w.GoTo(date(2025, 2, 14))
	if w.Cursor() != date(2025, 2, 1) {
		t.Errorf("cursor = %v", w.Cursor())
	}
	if len(rec.calls) != 0 {
		t.Errorf("GoTo fired %v", rec.calls)
	}
}

func TestPick_DispatchSingle(t *testing.T) {
	rec := &recorder{}
	w := newWidget(t, Options{Today: date(2024, 1, 1)}, rec.handlers())

	w.Pick(date(2024, 1, 9))
	want := []string{"date:2024-01-09::"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if w.Cursor() != date(2024, 1, 1) {
		t.Error("picks must not move the cursor")
	}
}

func TestPick_DispatchRange(t *testing.T) {
	rec := &recorder{}
	w := newWidget(t, Options{
		Today:      date(2024, 1, 1),
		Mode:       selection.Range,
		RangeStart: date(2024, 1, 10),
	}, rec.handlers())

	w.Pick(date(2024, 1, 15))
	res := w.Pick(date(2024, 1, 5))
	if res.Accepted {
		t.Error("expected rejection")
	}

	want := []string{"end:2024-01-15:2024-01-15"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestPick_DispatchMultiRange(t *testing.T) {
	rec := &recorder{}
	w := newWidget(t, Options{
		Today:       date(2024, 2, 1),
		Mode:        selection.MultiRange,
		BlockLength: 3,
		BlockStarts: []dateutil.Date{date(2024, 2, 10)},
	}, rec.handlers())

	w.Pick(date(2024, 2, 11))
	w.Pick(date(2024, 2, 13))
	w.Pick(date(2024, 2, 9))

	want := []string{"block:2024-02-10", "date:2024-02-13::", "block:2024-02-13"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if got := w.Blocks(); len(got) != 2 {
		t.Errorf("blocks = %v", got)
	}
}

func TestMonth_Classified(t *testing.T) {
	w := newWidget(t, Options{
		Today:          date(2024, 3, 15),
		WeekStart:      1,
		Selected:       date(2024, 3, 9),
		DisabledBefore: date(2024, 3, 5),
		EventDates:     []dateutil.Date{date(2024, 3, 20)},
		Events:         []event.Entry{{Date: date(2024, 3, 20), Payload: event.Payload{"title": "Launch"}}},
	}, Handlers{})

	m := w.Month()
	if len(m.Weeks) != w.NumberOfWeeks() {
		t.Errorf("weeks = %d, NumberOfWeeks = %d", len(m.Weeks), w.NumberOfWeeks())
	}

	flags := map[dateutil.Date]string{}
	for _, week := range m.Weeks {
		for _, c := range week {
			if c.Filler {
				continue
			}
			switch {
			case c.Disabled:
				flags[c.Date] = "disabled"
			case c.Today:
				flags[c.Date] = "today"
			case c.Selected:
				flags[c.Date] = "selected"
			case c.HasEvent:
				flags[c.Date] = c.Event.Title()
			}
		}
	}
	want := map[dateutil.Date]string{
		date(2024, 3, 1):  "disabled",
		date(2024, 3, 2):  "disabled",
		date(2024, 3, 3):  "disabled",
		date(2024, 3, 4):  "disabled",
		date(2024, 3, 9):  "selected",
		date(2024, 3, 15): "today",
		date(2024, 3, 20): "Launch",
	}
	if !reflect.DeepEqual(flags, want) {
		t.Errorf("flags = %v, want %v", flags, want)
	}
	if !w.IsDisabled(date(2024, 3, 4)) || w.IsDisabled(date(2024, 3, 5)) {
		t.Error("IsDisabled disagrees with the bounds")
	}
}

func TestHeadingsAndTitle(t *testing.T) {
	w := newWidget(t, Options{
		Cursor:      date(2024, 5, 1),
		Today:       date(2024, 5, 1),
		WeekStart:   1,
		MonthNames:  []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"},
		DayHeadings: []string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sa"},
	}, Handlers{})

	h := w.Headings()
	if h[0].Label != "Lu" || h[6].Label != "Do" || !h[6].Weekend() || h[0].Weekend() {
		t.Errorf("headings = %+v", h)
	}
	if w.Title() != "May 2024" {
		t.Errorf("title = %q", w.Title())
	}
	w.Next()
	w.Next()
	w.Next()
	if w.Title() != "Ago 2024" {
		t.Errorf("title = %q", w.Title())
	}
}

func TestTitle_ShortMonthLayout(t *testing.T) {
	spanish := []string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

	tests := []struct {
		name   string
		layout string
		names  []string
		want   string
	}{
		{name: "full names", layout: "January 2006", names: spanish, want: "Agosto 2024"},
		{name: "short names", layout: "Jan 2006", names: spanish, want: "Ago 2024"},
		{name: "short english", layout: "Jan 2006", want: "Aug 2024"},
		{name: "numeric layout", layout: "01/2006", names: spanish, want: "08/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWidget(t, Options{
				Cursor:      date(2024, 8, 1),
				Today:       date(2024, 8, 1),
				MonthNames:  tt.names,
				TitleFormat: tt.layout,
			}, Handlers{})
			if got := w.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisibleMonths(t *testing.T) {
	w := newWidget(t, Options{Cursor: date(2024, 6, 15), Today: date(2024, 6, 15), Paging: true}, Handlers{})

	got := w.VisibleMonths()
	want := []dateutil.Date{date(2024, 4, 1), date(2024, 5, 1), date(2024, 6, 1), date(2024, 7, 1), date(2024, 8, 1)}
	if len(got) != len(want) {
		t.Fatalf("VisibleMonths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("month %d = %s, want %s", i, got[i], want[i])
		}
	}

	got[0] = date(1999, 1, 1)
	if w.VisibleMonths()[0] != want[0] {
		t.Error("VisibleMonths exposes the window's backing slice")
	}

	single := newWidget(t, Options{Cursor: date(2024, 6, 15), Today: date(2024, 6, 15)}, Handlers{})
	if months := single.VisibleMonths(); len(months) != 1 || months[0] != date(2024, 6, 1) {
		t.Errorf("without paging VisibleMonths() = %v", months)
	}
}

func TestPropUpdates(t *testing.T) {
	w := newWidget(t, Options{
		Today:           date(2024, 1, 1),
		Mode:            selection.Range,
		RangeStart:      date(2024, 1, 10),
		SelectStartDate: true,
	}, Handlers{})

	w.SetAwaitingStart(false)
	if w.State().(selection.RangeState).AwaitingStart {
		t.Error("SetAwaitingStart(false) did not apply")
	}
	if err := w.SetRange(date(2024, 1, 10), date(2024, 1, 20)); err != nil {
		t.Fatalf("SetRange() error: %v", err)
	}
	w.SetBounds(bounds.Bounds{After: date(2024, 1, 25)})
	if !w.IsDisabled(date(2024, 1, 26)) {
		t.Error("SetBounds did not apply")
	}
	w.SetEvents([]dateutil.Date{date(2024, 1, 12)}, nil)
	if _, ok := w.Lookup(date(2024, 1, 12)); !ok {
		t.Error("SetEvents did not apply")
	}
	w.SetToday(date(2024, 1, 12))
	if w.Today() != date(2024, 1, 12) {
		t.Error("SetToday did not apply")
	}
}
