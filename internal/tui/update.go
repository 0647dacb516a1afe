package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.EventsLoadedMsg:
		// A load issued for a month we already left is stale.
		if !msg.Cursor.Same(m.widget.Cursor(), dateutil.ByMonth) {
			return m, nil
		}
		m.widget.SetEvents(nil, event.Entries(msg.Events))
		return m, nil

	case commands.BlocksLoadedMsg:
		m.widget.SetBlocks(msg.Starts)
		return m, nil

	case commands.BlocksSavedMsg:
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), errorDuration)
		m.err = msg.Err
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg, statusDuration)
		return m, cmd

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.err = nil
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
