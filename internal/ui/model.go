package ui

import (
	"os/exec"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pinta/internal/backend"
	"github.com/atomicstack/pinta/internal/data/dispatcher"
	"github.com/atomicstack/pinta/internal/directory"
	"github.com/atomicstack/pinta/internal/logging"
	"github.com/atomicstack/pinta/internal/logging/events"
	"github.com/atomicstack/pinta/internal/state"
	"github.com/atomicstack/pinta/internal/theme"
	"github.com/atomicstack/pinta/internal/tmux"
	"github.com/atomicstack/pinta/internal/ui/command"
	uistate "github.com/atomicstack/pinta/internal/ui/state"
)

const (
	defaultTick   = 250 * time.Millisecond
	defaultWidth  = 80
	defaultHeight = 24
	statusTTL     = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// SessionProvider enumerates tmux sessions and builds the hand-offs that
// give the terminal to one of them.
type SessionProvider interface {
	Sessions() ([]tmux.Session, error)
	Create(dir string) (string, error)
	AttachCommand(name string) *exec.Cmd
}

// Options configures a Model.
type Options struct {
	StartDir string
	Lister   directory.Lister
	Sessions SessionProvider
	// Watcher is optional. When set, the listing follows changes on disk.
	Watcher *backend.Watcher
	Matcher uistate.Matcher
	Tick    time.Duration
	Width   int
	Height  int
}

type status struct {
	text   string
	err    bool
	expire time.Time
}

// Model implements the Bubble Tea model for the directory and session views.
type Model struct {
	ctl     uistate.Controller
	dirList uistate.List
	search  uistate.Search
	tree    uistate.Tree
	help    uistate.Help

	lister     directory.Lister
	provider   SessionProvider
	watcher    *backend.Watcher
	dirs       state.DirectoryStore
	sessions   state.SessionStore
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus

	keys         keyMap
	helpPages    []helpPage
	aboutCache   map[int][]string
	searchCursor cursor.Model

	status  status
	pending string
	tick    time.Duration
	now     func() time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel lists the start directory and prepares the views. Sessions are
// loaded asynchronously once the program starts.
func NewModel(opts Options) *Model {
	dirs := state.NewDirectoryStore()
	sessions := state.NewSessionStore()
	match := opts.Matcher
	if match == nil {
		match = uistate.SubstringMatcher
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	m := &Model{
		lister:     opts.Lister,
		provider:   opts.Sessions,
		watcher:    opts.Watcher,
		dirs:       dirs,
		sessions:   sessions,
		dispatcher: dispatcher.New(dirs, sessions),
		bus:        command.New(),
		keys:       defaultKeyMap(),
		aboutCache: map[int][]string{},
		search:     uistate.NewSearch(match),
		tick:       tick,
		now:        time.Now,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.helpPages = m.buildHelpPages()
	m.help = uistate.NewHelp(len(m.helpPages))
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	c.Style = *styles.Cursor
	c.TextStyle = *styles.Search
	c.SetChar(" ")
	c.SetMode(cursor.CursorStatic)
	m.searchCursor = c

	if res := m.dispatcher.Load(m.lister, opts.StartDir); res.Err != nil {
		m.setError(res.Err)
	} else {
		events.Directory.Enter(opts.StartDir, m.dirs.Len())
		m.watch(opts.StartDir)
	}
	m.registerHandlers()
	m.syncLayout()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadSessionsCmd(), m.tickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, waitForBackendEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(sessionsLoadedMsg{}): m.handleSessionsLoadedMsg,
		reflect.TypeOf(sessionCreatedMsg{}): m.handleSessionCreatedMsg,
		reflect.TypeOf(attachDoneMsg{}):     m.handleAttachDoneMsg,
		reflect.TypeOf(clipboardMsg{}):      m.handleClipboardMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncLayout()
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// syncLayout re-sets totals and viewports from the current snapshots and
// terminal size. Selection and offsets are only re-clamped.
func (m *Model) syncLayout() {
	l := m.layout()
	m.dirList = m.dirList.SetViewport(l.dirRows).SetTotal(m.dirs.Len())
	m.tree = m.tree.SetViewport(l.sessionRows).Clamp(m.sessions.Heights())
	lines := m.helpLines(m.help.Category, l.helpWidth)
	m.help.List = m.help.List.SetViewport(l.helpRows).SetTotal(len(lines))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.App.Resize(m.width, m.height)
	return nil
}

func (m *Model) watch(path string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(path); err != nil {
		logging.Error(err)
	}
}

// Controller exposes the modal state, mainly for tests and tracing.
func (m *Model) Controller() uistate.Controller {
	return m.ctl
}
