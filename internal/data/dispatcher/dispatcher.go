package dispatcher

import (
	"errors"

	"github.com/atomicstack/pinta/internal/backend"
	"github.com/atomicstack/pinta/internal/directory"
	"github.com/atomicstack/pinta/internal/logging"
	"github.com/atomicstack/pinta/internal/state"
	"github.com/atomicstack/pinta/internal/tmux"
)

// Result tells the UI which snapshots changed and what went wrong, if anything.
type Result struct {
	DirectoryUpdated bool
	SessionsUpdated  bool
	Err              error
}

// Lister reads a directory listing.
type Lister interface {
	List(path string) ([]directory.Entry, error)
}

// Dispatcher applies collaborator output to the stores owned by the loop.
type Dispatcher struct {
	dirs     state.DirectoryStore
	sessions state.SessionStore
}

func New(d state.DirectoryStore, s state.SessionStore) *Dispatcher {
	return &Dispatcher{dirs: d, sessions: s}
}

// Load lists path and, on success, makes it the current directory. On
// failure the previous listing stays in place.
func (d *Dispatcher) Load(lister Lister, path string) Result {
	entries, err := lister.List(path)
	if err != nil {
		logging.Error(err)
		return Result{Err: err}
	}
	d.dirs.Set(path, entries)
	return Result{DirectoryUpdated: true}
}

// Handle re-lists the current directory when the watcher reports a change
// to it. Events for a directory the user already left are ignored.
func (d *Dispatcher) Handle(evt backend.Event, lister Lister) Result {
	if evt.Err != nil {
		logging.Error(evt.Err)
		return Result{Err: evt.Err}
	}
	if evt.Path != d.dirs.Path() {
		return Result{}
	}
	return d.Load(lister, evt.Path)
}

// Sessions stores a session snapshot. A missing tmux server is an empty
// snapshot rather than an error.
func (d *Dispatcher) Sessions(sessions []tmux.Session, err error) Result {
	if errors.Is(err, tmux.ErrNoServer) {
		d.sessions.SetEntries(nil)
		return Result{SessionsUpdated: true}
	}
	if err != nil {
		logging.Error(err)
		return Result{Err: err}
	}
	d.sessions.SetEntries(sessions)
	return Result{SessionsUpdated: true}
}
