package ui

import "github.com/charmbracelet/bubbles/key"

type directoryKeys struct {
	Quit    key.Binding
	Down    key.Binding
	Up      key.Binding
	Parent  key.Binding
	Enter   key.Binding
	Hidden  key.Binding
	Search  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Open    key.Binding
	Copy    key.Binding
	Refresh key.Binding
	Tab     key.Binding
	Help    key.Binding
	Dismiss key.Binding
}

type sessionKeys struct {
	Quit    key.Binding
	Down    key.Binding
	Up      key.Binding
	Attach  key.Binding
	Refresh key.Binding
	Tab     key.Binding
	Help    key.Binding
	Dismiss key.Binding
}

type searchKeys struct {
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

type helpKeys struct {
	Category key.Binding
	Next     key.Binding
	Prev     key.Binding
	Down     key.Binding
	Up       key.Binding
	Close    key.Binding
}

type keyMap struct {
	Interrupt   key.Binding
	Directories directoryKeys
	Sessions    sessionKeys
	Search      searchKeys
	Help        helpKeys
}

func defaultKeyMap() keyMap {
	return keyMap{
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
		Directories: directoryKeys{
			Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
			Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next entry")),
			Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous entry")),
			Parent:  key.NewBinding(key.WithKeys("h", "left", "backspace"), key.WithHelp("h/←/⌫", "parent directory")),
			Enter:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "enter directory")),
			Hidden:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "toggle hidden files")),
			Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
			Next:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
			Prev:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
			Open:    key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "open a tmux session here")),
			Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selected path")),
			Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh sessions")),
			Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch to sessions")),
			Help:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help")),
			Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss message")),
		},
		Sessions: sessionKeys{
			Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
			Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next session")),
			Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous session")),
			Attach:  key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "attach")),
			Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh sessions")),
			Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch to directories")),
			Help:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help")),
			Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss message")),
		},
		Search: searchKeys{
			Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep matches")),
			Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel search")),
			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete last character")),
		},
		Help: helpKeys{
			Category: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to category")),
			Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "next category")),
			Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "previous category")),
			Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "scroll down")),
			Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "scroll up")),
			Close:    key.NewBinding(key.WithKeys("H", "enter", "o", "esc"), key.WithHelp("H/enter/esc", "close help")),
		},
	}
}

func (k directoryKeys) bindings() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Enter, k.Parent, k.Hidden, k.Open, k.Copy, k.Search, k.Next, k.Prev, k.Tab, k.Refresh, k.Help, k.Dismiss, k.Quit}
}

func (k sessionKeys) bindings() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Attach, k.Refresh, k.Tab, k.Help, k.Dismiss, k.Quit}
}

func (k searchKeys) bindings() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel, k.Backspace}
}

func (k helpKeys) bindings() []key.Binding {
	return []key.Binding{k.Category, k.Next, k.Prev, k.Down, k.Up, k.Close}
}
