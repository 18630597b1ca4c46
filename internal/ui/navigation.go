package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pinta/internal/directory"
	"github.com/atomicstack/pinta/internal/logging/events"
	uistate "github.com/atomicstack/pinta/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Interrupt) {
		events.App.Exit("interrupt")
		return tea.Quit
	}
	// A hand-off to tmux is in flight; wait for its outcome.
	if m.pending != "" {
		return nil
	}
	switch m.ctl.Route() {
	case uistate.TargetHelp:
		return m.handleHelpKey(keyMsg)
	case uistate.TargetSearch:
		return m.handleSearchKey(keyMsg)
	case uistate.TargetSessions:
		return m.handleSessionKey(keyMsg)
	default:
		return m.handleDirectoryKey(keyMsg)
	}
}

func (m *Model) handleDirectoryKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Directories
	switch {
	case key.Matches(msg, k.Quit):
		events.App.Exit("quit")
		return tea.Quit
	case key.Matches(msg, k.Down):
		m.dismissStatus()
		m.dirList = m.dirList.MoveNext()
		events.Nav.Cursor("directories", m.dirList.Selected, m.dirList.Offset)
	case key.Matches(msg, k.Up):
		m.dismissStatus()
		m.dirList = m.dirList.MovePrev()
		events.Nav.Cursor("directories", m.dirList.Selected, m.dirList.Offset)
	case key.Matches(msg, k.Parent):
		m.dismissStatus()
		m.enterParent()
	case key.Matches(msg, k.Enter):
		m.dismissStatus()
		m.enterSelected()
	case key.Matches(msg, k.Hidden):
		m.dismissStatus()
		m.toggleHidden()
	case key.Matches(msg, k.Search):
		m.dismissStatus()
		m.startSearch()
	case key.Matches(msg, k.Next):
		m.dismissStatus()
		m.search, m.dirList = m.search.Next(m.dirList)
		events.Search.Jump(m.search.Cursor, m.dirList.Selected)
	case key.Matches(msg, k.Prev):
		m.dismissStatus()
		m.search, m.dirList = m.search.Prev(m.dirList)
		events.Search.Jump(m.search.Cursor, m.dirList.Selected)
	case key.Matches(msg, k.Open):
		return m.openSessionCmd(m.dirs.Path())
	case key.Matches(msg, k.Copy):
		return m.copySelectedCmd()
	case key.Matches(msg, k.Refresh):
		return m.refreshSessionsCmd()
	case key.Matches(msg, k.Tab):
		m.switchTab()
	case key.Matches(msg, k.Help):
		m.toggleHelp()
	case key.Matches(msg, k.Dismiss):
		m.dismissStatus()
	}
	return nil
}

func (m *Model) handleSessionKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Sessions
	heights := m.sessions.Heights()
	switch {
	case key.Matches(msg, k.Quit):
		events.App.Exit("quit")
		return tea.Quit
	case key.Matches(msg, k.Down):
		m.dismissStatus()
		m.tree = m.tree.MoveNext(heights)
		events.Nav.Cursor("sessions", m.tree.Selected, m.tree.Offset)
	case key.Matches(msg, k.Up):
		m.dismissStatus()
		m.tree = m.tree.MovePrev(heights)
		events.Nav.Cursor("sessions", m.tree.Selected, m.tree.Offset)
	case key.Matches(msg, k.Attach):
		entries := m.sessions.Entries()
		if m.tree.Selected < 0 || m.tree.Selected >= len(entries) {
			return nil
		}
		return m.attachCmd(entries[m.tree.Selected].Name)
	case key.Matches(msg, k.Refresh):
		return m.refreshSessionsCmd()
	case key.Matches(msg, k.Tab):
		m.switchTab()
	case key.Matches(msg, k.Help):
		m.toggleHelp()
	case key.Matches(msg, k.Dismiss):
		m.dismissStatus()
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Help
	switch {
	case key.Matches(msg, k.Close):
		m.toggleHelp()
	case key.Matches(msg, k.Category):
		m.help = m.help.SelectCategory(int(msg.Runes[0] - '1'))
	case key.Matches(msg, k.Next):
		m.help = m.help.NextCategory()
	case key.Matches(msg, k.Prev):
		m.help = m.help.PrevCategory()
	case key.Matches(msg, k.Down):
		m.help = m.help.ScrollDown()
	case key.Matches(msg, k.Up):
		m.help = m.help.ScrollUp()
	default:
		return nil
	}
	events.Nav.Cursor("help", m.help.Category, m.help.List.Offset)
	return nil
}

func (m *Model) switchTab() {
	m.ctl = m.ctl.SwitchTab()
	events.Nav.Tab(m.ctl.Tab.String())
}

func (m *Model) toggleHelp() {
	m.ctl = m.ctl.ToggleHelp()
	events.Nav.Help(m.ctl.HelpOpen, m.help.Category)
}

func (m *Model) enterSelected() {
	entry, ok := m.dirs.At(m.dirList.Selected)
	if !ok || !entry.IsDir {
		return
	}
	m.changeDirectory(directory.Join(m.dirs.Path(), entry.Name))
}

func (m *Model) enterParent() {
	parent, ok := directory.Parent(m.dirs.Path())
	if !ok {
		return
	}
	m.changeDirectory(parent)
}

// changeDirectory re-lists path and resets the per-directory state. On
// failure the previous listing and selection stay.
func (m *Model) changeDirectory(path string) bool {
	res := m.dispatcher.Load(m.lister, path)
	if res.Err != nil {
		m.setError(fmt.Errorf("open %s: %w", path, res.Err))
		return false
	}
	m.resetListing()
	m.watch(path)
	events.Directory.Enter(path, m.dirs.Len())
	return true
}

func (m *Model) toggleHidden() {
	m.lister.ShowHidden = !m.lister.ShowHidden
	res := m.dispatcher.Load(m.lister, m.dirs.Path())
	if res.Err != nil {
		m.lister.ShowHidden = !m.lister.ShowHidden
		m.setError(res.Err)
		return
	}
	m.resetListing()
	events.Directory.Hidden(m.lister.ShowHidden)
}

func (m *Model) resetListing() {
	m.dirList = m.dirList.SetTotal(m.dirs.Len()).Reset()
	m.clearSearch()
}

func (m *Model) clearSearch() {
	m.search = m.search.Clear()
	m.ctl = m.ctl.EndSearch()
	m.searchCursor.Blur()
}
