package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
)

func (a *App) eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage the events marked on the calendar",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.ensureRepo()
		},
	}

	cmd.AddCommand(a.eventAddCmd())
	cmd.AddCommand(a.eventListCmd())
	cmd.AddCommand(a.eventRemoveCmd())
	cmd.AddCommand(a.importCmd())

	return cmd
}

func (a *App) eventAddCmd() *cobra.Command {
	var (
		title string
		tags  []string
	)

	cmd := &cobra.Command{
		Use:   "add [date]",
		Short: "Add an event",
		Long: `Add an event on a day. The date defaults to today.

Example:
  calpick event add 2025-01-10 --title "Dentist" --tag location=Downtown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var date string
			if len(args) == 1 {
				date = args[0]
			}

			e, err := event.New(title, date, tags)
			if err != nil {
				return err
			}

			if err := a.repo.CreateEvent(context.Background(), e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Created event #%d: %s on %s\n", e.ID, e.Title, e.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (required)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag in key=value form (repeatable)")

	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (a *App) eventListCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List all events within a date range.

If no dates are specified, lists the current month.
If only --from is specified, lists events for that single day.
If both --from and --to are specified, lists events in that range (inclusive).`,
		Example: `  calpick event list
  calpick event list --from=2025-01-15
  calpick event list --from=2025-01-15 --to=2025-01-20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			var dateRange *dateutil.DateRange
			if startDate == "" && endDate == "" {
				month := dateutil.Today().StartOfMonth()
				dateRange = &dateutil.DateRange{Start: month, End: month.EndOfMonth()}
			} else {
				var err error
				dateRange, err = dateutil.NewDateRange(startDate, endDate)
				if err != nil {
					return err
				}
			}

			events, err := a.repo.ListEventsByDateRange(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			printEvents(os.Stdout, events)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "from", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "to", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}

// printEvents prints events grouped by date.
func printEvents(out io.Writer, events []*event.Event) {
	if len(events) == 0 {
		_, _ = fmt.Fprintln(out, "No events found in the specified date range.")
		return
	}

	var current dateutil.Date
	for i, e := range events {
		if i == 0 || e.Date != current {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintf(out, "=== %s ===\n", formatHeader(e.Date.Format("Mon 2006-01-02")))
			current = e.Date
		}

		tags := event.Payload(e.Tags).String()
		if tags != "" {
			tags = " " + formatMuted("["+tags+"]")
		}
		_, _ = fmt.Fprintf(out, "  #%d %s%s\n", e.ID, e.Title, tags)
	}
}

func (a *App) eventRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "Remove an event",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event ID: %s", args[0])
			}

			if err := a.repo.DeleteEvent(context.Background(), id); err != nil {
				if errors.Is(err, event.ErrEventNotFound) {
					return fmt.Errorf("event #%d not found", id)
				}
				return fmt.Errorf("removing event: %w", err)
			}

			fmt.Printf("Removed event #%d\n", id)
			return nil
		},
	}
}
