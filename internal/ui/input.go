package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pinta/internal/logging/events"
)

func (m *Model) startSearch() {
	before := m.ctl
	m.ctl = m.ctl.StartSearch()
	if !m.ctl.Searching || before.Searching {
		return
	}
	m.search = m.search.Start(m.now())
	m.searchCursor.Focus()
	events.Search.Start()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Search
	names := m.dirs.Names()
	switch {
	case key.Matches(msg, k.Cancel):
		m.search = m.search.Cancel(m.now())
		m.endSearch()
		events.Search.Cancel()
	case key.Matches(msg, k.Commit):
		m.search = m.search.Commit(m.now())
		m.endSearch()
		events.Search.Commit(m.search.Query, len(m.search.Matches))
	case key.Matches(msg, k.Backspace):
		m.search, m.dirList = m.search.Backspace(names, m.dirList, m.now())
		events.Search.Backspace(m.search.Query, len(m.search.Matches))
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			m.search, m.dirList = m.search.Type(r, names, m.dirList, m.now())
		}
		events.Search.Append(m.search.Query, len(m.search.Matches))
	}
	return nil
}

func (m *Model) endSearch() {
	m.ctl = m.ctl.EndSearch()
	m.searchCursor.Blur()
}
