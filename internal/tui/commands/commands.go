// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/selection"
)

// EventsLoadedMsg is sent when the events of the visible months are loaded.
// Cursor is the month the load was issued for.
type EventsLoadedMsg struct {
	Cursor dateutil.Date
	Events []*event.Event
}

// BlocksLoadedMsg is sent when stored multi-range blocks are loaded.
type BlocksLoadedMsg struct {
	Starts []dateutil.Date
}

// BlocksSavedMsg is sent after the block starts are persisted.
type BlocksSavedMsg struct {
	Count int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadEvents loads the events between start and end (inclusive).
func LoadEvents(repo event.Repository, cursor, start, end dateutil.Date) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return EventsLoadedMsg{Cursor: cursor}
		}
		events, err := repo.ListEventsByDateRange(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading events: %w", err)}
		}
		return EventsLoadedMsg{Cursor: cursor, Events: events}
	}
}

// LoadBlocks reads the stored multi-range block starts.
func LoadBlocks(store selection.BlockStore) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return BlocksLoadedMsg{}
		}
		starts, err := store.ListBlocks(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading blocks: %w", err)}
		}
		return BlocksLoadedMsg{Starts: starts}
	}
}

// SaveBlocks replaces the stored block starts.
func SaveBlocks(store selection.BlockStore, starts []dateutil.Date) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		if err := store.SaveBlocks(context.Background(), starts); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving blocks: %w", err)}
		}
		return BlocksSavedMsg{Count: len(starts)}
	}
}

// Status returns a command that shows msg in the status line.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line once d has elapsed.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
