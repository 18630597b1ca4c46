package state

import (
	"github.com/atomicstack/pinta/internal/tmux"
	uistate "github.com/atomicstack/pinta/internal/ui/state"
)

// SessionStore holds the last session snapshot the loop received.
type SessionStore interface {
	Entries() []tmux.Session
	SetEntries([]tmux.Session)
	Heights() []int
	Names() []string
	Loaded() bool
}

type sessionStore struct {
	entries []tmux.Session
	heights []int
	loaded  bool
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) Entries() []tmux.Session {
	return cloneSessions(s.entries)
}

// SetEntries replaces the snapshot and marks the store as loaded, even when
// the new snapshot is empty.
func (s *sessionStore) SetEntries(entries []tmux.Session) {
	s.entries = cloneSessions(entries)
	s.heights = uistate.Heights(tmux.WindowCounts(s.entries))
	s.loaded = true
}

// Heights returns the rendered line count of each session.
func (s *sessionStore) Heights() []int {
	return append([]int(nil), s.heights...)
}

func (s *sessionStore) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

func (s *sessionStore) Loaded() bool {
	return s.loaded
}

func cloneSessions(entries []tmux.Session) []tmux.Session {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Session, len(entries))
	for i, e := range entries {
		e.Windows = append([]tmux.Window(nil), e.Windows...)
		dup[i] = e
	}
	return dup
}
