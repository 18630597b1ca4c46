package state

import "github.com/atomicstack/pinta/internal/directory"

// DirectoryStore holds the directory being browsed and its listing.
type DirectoryStore interface {
	Path() string
	Entries() []directory.Entry
	Names() []string
	Set(path string, entries []directory.Entry)
	Len() int
	At(i int) (directory.Entry, bool)
}

type directoryStore struct {
	path    string
	entries []directory.Entry
	names   []string
}

func NewDirectoryStore() DirectoryStore {
	return &directoryStore{}
}

func (d *directoryStore) Path() string {
	return d.path
}

func (d *directoryStore) Entries() []directory.Entry {
	return cloneEntries(d.entries)
}

// Names returns the bare entry names in listing order. The slice is shared
// and must not be modified.
func (d *directoryStore) Names() []string {
	return d.names
}

func (d *directoryStore) Set(path string, entries []directory.Entry) {
	d.path = path
	d.entries = cloneEntries(entries)
	d.names = directory.Names(d.entries)
}

func (d *directoryStore) Len() int {
	return len(d.entries)
}

func (d *directoryStore) At(i int) (directory.Entry, bool) {
	if i < 0 || i >= len(d.entries) {
		return directory.Entry{}, false
	}
	return d.entries[i], true
}

func cloneEntries(entries []directory.Entry) []directory.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]directory.Entry, len(entries))
	copy(dup, entries)
	return dup
}
