package directory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotDirectory is returned when a path that must be a directory is not one.
var ErrNotDirectory = errors.New("not a directory")

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Display returns the name as shown in the listing; directories get a
// trailing slash.
func (e Entry) Display() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// Lister reads directories. Entries come back in filesystem enumeration
// order; no sort is applied.
type Lister struct {
	ShowHidden bool
	Exclude    []string
}

// List returns the visible entries of path.
func (l Lister) List(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dirents, err := f.ReadDir(-1)
	if err != nil && len(dirents) == 0 {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if !l.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if l.excluded(name) {
			continue
		}
		entries = append(entries, Entry{Name: name, IsDir: isDir(path, d)})
	}
	return entries, nil
}

// Names projects entries onto their bare names, which is what search matches.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func (l Lister) excluded(name string) bool {
	for _, pattern := range l.Exclude {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ValidatePatterns rejects malformed exclude globs.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return nil
}

func isDir(dir string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, d.Name()))
	return err == nil && info.IsDir()
}

// Resolve turns the configured start directory into an absolute directory
// path, falling back to the working directory when start is empty.
func Resolve(start string) (string, error) {
	if start == "" {
		return Current()
	}
	if strings.HasPrefix(start, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			start = filepath.Join(home, strings.TrimPrefix(start, "~"))
		}
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", abs, ErrNotDirectory)
	}
	return abs, nil
}

// Current returns the working directory.
func Current() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return wd, nil
}

// Parent returns the parent of path and whether it differs from path.
func Parent(path string) (string, bool) {
	parent := filepath.Dir(filepath.Clean(path))
	return parent, parent != filepath.Clean(path)
}

// Join returns the path of entry name inside dir.
func Join(dir, name string) string {
	return filepath.Join(dir, name)
}
