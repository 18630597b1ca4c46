package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pinta/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForBackendEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyBackendEvent re-lists the directory after a change on disk. The
// selection is clamped rather than reset. A query still being typed is
// matched again against the new listing; committed matches are dropped
// because their indexes no longer refer to the same entries.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt, m.lister)
	if res.Err != nil {
		m.setError(res.Err)
		return
	}
	if !res.DirectoryUpdated {
		return
	}
	m.dirList = m.dirList.SetTotal(m.dirs.Len())
	if m.ctl.Searching {
		m.search, m.dirList = m.search.Recompute(m.dirs.Names(), m.dirList)
		return
	}
	m.clearSearch()
}
