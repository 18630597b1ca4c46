package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pinta/internal/directory"
	"github.com/atomicstack/pinta/internal/logging"
	"github.com/atomicstack/pinta/internal/logging/events"
	"github.com/atomicstack/pinta/internal/tmux"
	"github.com/atomicstack/pinta/internal/ui/command"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type tickMsg time.Time

type sessionsLoadedMsg struct {
	sessions []tmux.Session
	err      error
}

type sessionCreatedMsg struct {
	dir  string
	name string
	err  error
}

type attachDoneMsg struct {
	name string
	err  error
}

type clipboardMsg struct {
	path string
	err  error
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	m.currentStatus()
	return m.tickCmd()
}

func (m *Model) loadSessionsCmd() tea.Cmd {
	provider := m.provider
	return m.bus.Execute(command.Request{
		ID:    "sessions:load",
		Label: "list sessions",
		Run: func() tea.Cmd {
			if provider == nil {
				return func() tea.Msg { return sessionsLoadedMsg{} }
			}
			sessions, err := provider.Sessions()
			return func() tea.Msg {
				return sessionsLoadedMsg{sessions: sessions, err: err}
			}
		},
	})
}

func (m *Model) refreshSessionsCmd() tea.Cmd {
	m.dismissStatus()
	events.Session.Refresh()
	return m.loadSessionsCmd()
}

func (m *Model) handleSessionsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(sessionsLoadedMsg)
	if !ok {
		return nil
	}
	res := m.dispatcher.Sessions(loaded.sessions, loaded.err)
	if res.Err != nil {
		m.setError(fmt.Errorf("list tmux sessions: %w", res.Err))
		return nil
	}
	m.tree = m.tree.Clamp(m.sessions.Heights())
	return nil
}

// openSessionCmd creates (or reuses) the session rooted at dir and then
// attaches to it.
func (m *Model) openSessionCmd(dir string) tea.Cmd {
	if m.provider == nil || dir == "" {
		return nil
	}
	provider := m.provider
	m.pending = tmux.SessionName(dir)
	m.setInfo(fmt.Sprintf("Opening session %s…", m.pending))
	return m.bus.Execute(command.Request{
		ID:    "session:create",
		Label: dir,
		Run: func() tea.Cmd {
			name, err := provider.Create(dir)
			return func() tea.Msg {
				return sessionCreatedMsg{dir: dir, name: name, err: err}
			}
		},
	})
}

func (m *Model) handleSessionCreatedMsg(msg tea.Msg) tea.Cmd {
	created, ok := msg.(sessionCreatedMsg)
	if !ok {
		return nil
	}
	if created.err != nil {
		m.pending = ""
		err := fmt.Errorf("create session for %s: %w", created.dir, created.err)
		logging.Error(err)
		m.setError(err)
		return nil
	}
	return m.attachCmd(created.name)
}

// attachCmd suspends the UI and hands the terminal to session name.
func (m *Model) attachCmd(name string) tea.Cmd {
	if m.provider == nil || name == "" {
		return nil
	}
	m.pending = name
	events.Session.Attach(name)
	cmd := m.provider.AttachCommand(name)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return attachDoneMsg{name: name, err: err}
	})
}

func (m *Model) handleAttachDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(attachDoneMsg)
	if !ok {
		return nil
	}
	m.pending = ""
	if done.err != nil {
		err := fmt.Errorf("attach %s: %w", done.name, done.err)
		logging.Error(err)
		m.setError(err)
		return nil
	}
	events.Action.Success(done.name)
	events.App.Exit("attached")
	return tea.Quit
}

func (m *Model) copySelectedCmd() tea.Cmd {
	entry, ok := m.dirs.At(m.dirList.Selected)
	if !ok {
		return nil
	}
	path := directory.Join(m.dirs.Path(), entry.Name)
	return m.bus.Execute(command.Request{
		ID:    "clipboard:copy",
		Label: path,
		Run: func() tea.Cmd {
			err := writeClipboard(path)
			return func() tea.Msg { return clipboardMsg{path: path, err: err} }
		},
	})
}

func (m *Model) handleClipboardMsg(msg tea.Msg) tea.Cmd {
	copied, ok := msg.(clipboardMsg)
	if !ok {
		return nil
	}
	if copied.err != nil {
		logging.Error(copied.err)
		m.setError(fmt.Errorf("copy to clipboard: %w", copied.err))
		return nil
	}
	events.Directory.Copy(copied.path)
	m.setInfo("Copied " + copied.path)
	return nil
}
