package ui

import (
	"fmt"

	"github.com/atomicstack/launchpad/internal/logging"
	"github.com/atomicstack/launchpad/internal/logging/events"
	"github.com/atomicstack/launchpad/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleLaunchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.LaunchResult)
	if !ok {
		return nil
	}
	m.loading = false
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Launch.Failed(result.Name, result.Err)
		logging.Error(result.Err)
		return nil
	}
	entry := m.store.At(result.Index)
	m.launched = &entry
	if m.verbose {
		m.setInfo(fmt.Sprintf("Launched %s", result.Name))
	}
	return tea.Quit
}

// handlePasteMsg feeds fetched clipboard text into the query. A clipboard
// failure is diagnostic-only: the edit buffer stays untouched.
func (m *Model) handlePasteMsg(msg tea.Msg) tea.Cmd {
	paste, ok := msg.(command.Paste)
	if !ok {
		return nil
	}
	if paste.Err != nil {
		logging.Error(paste.Err)
		return nil
	}
	m.pasteClipboard(paste.Text)
	return nil
}
