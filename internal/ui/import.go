package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
)

func (a *App) importCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "import [file.ics]",
		Short: "Import events from an iCalendar file",
		Long: `Import the VEVENTs of an iCalendar (.ics) file as events.

Each event is placed on its start day. Events already imported with the
same UID on the same day are skipped.

Example:
  calpick event import ~/Downloads/holidays.ics --from 2025-01-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("calendar file does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking calendar file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("calendar path is a directory: %s", sourcePath)
			}

			var window *dateutil.DateRange
			if from != "" || to != "" {
				if from == "" {
					return fmt.Errorf("--to requires --from")
				}
				if window, err = dateutil.NewDateRange(from, to); err != nil {
					return err
				}
			}

			count, err := importEvents(context.Background(), a.repo, sourcePath, window)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d events from %s\n", count, sourcePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Only import events on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Only import events on or before this date (YYYY-MM-DD)")

	return cmd
}

// importEvents parses sourcePath and stores its events in one batch. A nil
// window imports every event. Events whose UID is already stored on the
// same day are skipped.
func importEvents(ctx context.Context, dest event.Repository, sourcePath string, window *dateutil.DateRange) (int, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening calendar file: %w", err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := event.ParseICS(f)
	if err != nil {
		return 0, err
	}

	var candidates []*event.Event
	for _, e := range parsed {
		if window != nil && !window.Contains(e.Date) {
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	seen, err := storedUIDs(ctx, dest, candidates)
	if err != nil {
		return 0, err
	}

	fresh := make([]*event.Event, 0, len(candidates))
	for _, e := range candidates {
		if uid := e.Tags[event.TagUID]; uid != "" {
			key := e.Date.String() + "|" + uid
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		fresh = append(fresh, e)
	}

	if err := dest.CreateEvents(ctx, fresh); err != nil {
		return 0, fmt.Errorf("importing events: %w", err)
	}
	return len(fresh), nil
}

// storedUIDs returns date|uid keys of stored events spanning candidates.
func storedUIDs(ctx context.Context, repo event.Repository, candidates []*event.Event) (map[string]bool, error) {
	first, last := candidates[0].Date, candidates[0].Date
	for _, e := range candidates[1:] {
		if e.Date.Before(first, dateutil.ByDay) {
			first = e.Date
		}
		if e.Date.After(last, dateutil.ByDay) {
			last = e.Date
		}
	}

	existing, err := repo.ListEventsByDateRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("listing existing events: %w", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		if uid := e.Tags[event.TagUID]; uid != "" {
			seen[e.Date.String()+"|"+uid] = true
		}
	}
	return seen, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
