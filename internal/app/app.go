package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pinta/internal/backend"
	"github.com/atomicstack/pinta/internal/directory"
	"github.com/atomicstack/pinta/internal/logging"
	"github.com/atomicstack/pinta/internal/theme"
	"github.com/atomicstack/pinta/internal/tmux"
	"github.com/atomicstack/pinta/internal/ui"
	uistate "github.com/atomicstack/pinta/internal/ui/state"
)

// Config describes user-provided application options.
type Config struct {
	StartDir   string
	ShowHidden bool
	Exclude    []string
	SocketPath string
	Tick       time.Duration
	SearchMode string
	Watch      bool
	NoColor    bool
}

const watchInterval = 200 * time.Millisecond

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	theme.Configure(cfg.NoColor)

	start, err := directory.Resolve(cfg.StartDir)
	if err != nil {
		return fmt.Errorf("resolve start directory: %w", err)
	}
	match, err := uistate.MatcherFor(cfg.SearchMode)
	if err != nil {
		return err
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		// tmux falls back to its own default socket.
		logging.Error(fmt.Errorf("resolve socket path: %w", err))
		socketPath = ""
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(watchInterval)
		if err != nil {
			logging.Error(err)
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	model := ui.NewModel(ui.Options{
		StartDir: start,
		Lister:   directory.Lister{ShowHidden: cfg.ShowHidden, Exclude: cfg.Exclude},
		Sessions: tmux.NewClient(socketPath),
		Watcher:  watcher,
		Matcher:  match,
		Tick:     cfg.Tick,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
