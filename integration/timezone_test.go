package integration

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
)

// Dates are calendar days, so a late-evening timestamp in any zone must land
// on that zone's day and survive a storage round trip unchanged.
func TestDatesSurviveTimezones(t *testing.T) {
	zones := []string{"UTC", "America/Los_Angeles", "Asia/Tokyo", "Pacific/Kiritimati"}

	for _, name := range zones {
		t.Run(name, func(t *testing.T) {
			loc, err := time.LoadLocation(name)
			if err != nil {
				t.Skipf("zone %s unavailable: %v", name, err)
			}

			prevLocal := time.Local
			time.Local = loc
			t.Cleanup(func() { time.Local = prevLocal })

			late := time.Date(2025, time.March, 31, 23, 30, 0, 0, loc)
			day := dateutil.FromTime(late)
			if day != dateutil.NewDate(2025, time.March, 31) {
				t.Fatalf("FromTime(%v) = %s, want 2025-03-31", late, day)
			}

			repo := openRepo(t)
			ctx := context.Background()
			if err := repo.CreateEvent(ctx, &event.Event{Date: day, Title: "Deadline", CreatedAt: late}); err != nil {
				t.Fatalf("CreateEvent failed: %v", err)
			}

			events, err := repo.ListEventsByDateRange(ctx, day.StartOfMonth(), day.EndOfMonth())
			if err != nil {
				t.Fatalf("ListEventsByDateRange failed: %v", err)
			}
			if len(events) != 1 {
				t.Fatalf("expected 1 event in March, got %d", len(events))
			}
			if events[0].Date != day {
				t.Errorf("stored date = %s, want %s", events[0].Date, day)
			}

			april, err := repo.ListEventsByDateRange(ctx, day.AddDays(1), day.AddDays(30))
			if err != nil {
				t.Fatalf("ListEventsByDateRange failed: %v", err)
			}
			if len(april) != 0 {
				t.Errorf("event leaked into April: %v", april[0].Date)
			}
		})
	}
}
