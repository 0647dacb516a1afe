package view

import (
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/selection"
)

func d(y int, m time.Month, day int) dateutil.Date {
	return dateutil.NewDate(y, m, day)
}

func TestSelectionSummary(t *testing.T) {
	tests := []struct {
		name  string
		state selection.State
		want  string
	}{
		{name: "single_empty", state: selection.SingleState{}, want: "Nothing selected"},
		{name: "single", state: selection.SingleState{Selected: d(2024, time.January, 15)}, want: "Selected Mon Jan 15, 2024"},
		{
			name:  "range_one_day",
			state: selection.RangeState{Start: d(2024, time.January, 10), End: d(2024, time.January, 10), AwaitingStart: true},
			want:  "Range 2024-01-10 → 2024-01-10 (1 day) · picking start",
		},
		{
			name:  "range_across_months",
			state: selection.RangeState{Start: d(2024, time.January, 30), End: d(2024, time.February, 2)},
			want:  "Range 2024-01-30 → 2024-02-02 (4 days) · picking end",
		},
		{name: "no_blocks", state: selection.MultiRangeState{BlockLength: 7}, want: "No blocks · 7-day blocks"},
		{
			name: "blocks",
			state: selection.MultiRangeState{
				BlockLength: 3,
				Starts:      []dateutil.Date{d(2024, time.February, 10), d(2024, time.February, 13)},
				Selected:    d(2024, time.February, 13),
			},
			want: "2 blocks of 3 days · selected 2024-02-13 → 2024-02-15",
		},
		{
			name:  "one_block_unselected",
			state: selection.MultiRangeState{BlockLength: 2, Starts: []dateutil.Date{d(2024, time.February, 10)}},
			want:  "1 block of 2 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectionSummary(tt.state); got != tt.want {
				t.Errorf("SelectionSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCopyText(t *testing.T) {
	tests := []struct {
		name  string
		state selection.State
		want  string
	}{
		{name: "single_empty", state: selection.SingleState{}, want: ""},
		{name: "single", state: selection.SingleState{Selected: d(2024, time.January, 15)}, want: "2024-01-15"},
		{name: "range", state: selection.RangeState{Start: d(2024, time.January, 10), End: d(2024, time.January, 15)}, want: "2024-01-10..2024-01-15"},
		{
			name: "blocks",
			state: selection.MultiRangeState{
				BlockLength: 3,
				Starts:      []dateutil.Date{d(2024, time.February, 10), d(2024, time.February, 13)},
			},
			want: "2024-02-10..2024-02-12, 2024-02-13..2024-02-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CopyText(tt.state); got != tt.want {
				t.Errorf("CopyText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventLine(t *testing.T) {
	day := d(2025, time.February, 1)

	tests := []struct {
		name    string
		payload event.Payload
		ok      bool
		want    string
	}{
		{name: "no_event", want: "Sat Feb 1"},
		{name: "plain_date", payload: event.Payload{}, ok: true, want: "Sat Feb 1 · event"},
		{
			name:    "title_and_tags",
			payload: event.Payload{event.TitleKey: "Launch", event.TagLocation: "Room 4", event.TagSource: "ics"},
			ok:      true,
			want:    "Sat Feb 1 · Launch · location=Room 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventLine(day, tt.payload, tt.ok); got != tt.want {
				t.Errorf("EventLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
