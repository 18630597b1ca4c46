package state

// Tab identifies the view that receives navigation keys.
type Tab int

const (
	TabDirectories Tab = iota
	TabSessions
)

func (t Tab) String() string {
	switch t {
	case TabDirectories:
		return "directories"
	case TabSessions:
		return "sessions"
	default:
		return "unknown"
	}
}

// Mode is the modal layer currently on top.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearching
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearching:
		return "searching"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Target names the engine that should handle the next key.
type Target int

const (
	TargetDirectories Target = iota
	TargetSessions
	TargetSearch
	TargetHelp
)

// Controller is the modal state machine deciding where input goes. Help
// outranks search, and search outranks the active tab.
type Controller struct {
	Tab       Tab
	HelpOpen  bool
	Searching bool
}

// Mode returns the topmost modal layer.
func (c Controller) Mode() Mode {
	switch {
	case c.HelpOpen:
		return ModeHelp
	case c.Searching:
		return ModeSearching
	default:
		return ModeNormal
	}
}

// Route returns the engine that owns the next key.
func (c Controller) Route() Target {
	switch c.Mode() {
	case ModeHelp:
		return TargetHelp
	case ModeSearching:
		return TargetSearch
	}
	if c.Tab == TabSessions {
		return TargetSessions
	}
	return TargetDirectories
}

// ToggleHelp opens help from normal mode or closes it. It is ignored while
// a search is being typed.
func (c Controller) ToggleHelp() Controller {
	if c.HelpOpen {
		c.HelpOpen = false
		return c
	}
	if c.Mode() == ModeNormal {
		c.HelpOpen = true
	}
	return c
}

// SwitchTab flips between the directory and session views in normal mode.
func (c Controller) SwitchTab() Controller {
	if c.Mode() != ModeNormal {
		return c
	}
	if c.Tab == TabDirectories {
		c.Tab = TabSessions
	} else {
		c.Tab = TabDirectories
	}
	return c
}

// StartSearch enters search mode. Only the directory view is searchable.
func (c Controller) StartSearch() Controller {
	if c.Mode() == ModeNormal && c.Tab == TabDirectories {
		c.Searching = true
	}
	return c
}

// EndSearch leaves search mode after a commit or cancel.
func (c Controller) EndSearch() Controller {
	c.Searching = false
	return c
}
