package tmux

import (
	"fmt"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"

	"github.com/atomicstack/pinta/internal/logging/events"
)

// SessionName derives a session name from a directory. tmux rejects '.'
// and ':' in names, so both become '_'.
func SessionName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == string(filepath.Separator) || base == "." {
		base = "root"
	}
	return strings.NewReplacer(".", "_", ":", "_").Replace(base)
}

// Create ensures a session rooted at dir exists and returns its name. An
// existing session with the derived name is reused as is.
func (c *Client) Create(dir string) (string, error) {
	name := SessionName(dir)
	client, err := newTmux(c.socketPath)
	if err != nil {
		// Control mode needs a running server; start the first one directly.
		events.Session.Fallback(name, err)
		if runErr := runExecCommand("tmux", c.args("new-session", "-d", "-s", name, "-c", dir)...).Run(); runErr != nil {
			return "", fmt.Errorf("create session %s: %w", name, runErr)
		}
		events.Session.Create(dir, name)
		return name, nil
	}
	defer client.Close()

	if existing, err := client.GetSessionByName(name); err == nil && existing != nil {
		events.Session.Reuse(name)
		return name, nil
	}
	if _, err := client.NewSession(&gotmux.SessionOptions{Name: name, StartDirectory: dir}); err != nil {
		return "", fmt.Errorf("create session %s: %w", name, err)
	}
	events.Session.Create(dir, name)
	return name, nil
}
