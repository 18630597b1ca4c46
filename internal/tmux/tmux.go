package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/pinta/internal/logging"
	"github.com/atomicstack/pinta/internal/logging/events"
)

// ErrNoServer means no tmux server is listening on the socket.
var ErrNoServer = errors.New("tmux: no server running")

// InvalidTimestamp is shown in place of a creation time tmux reported badly.
const InvalidTimestamp = "Invalid timestamp"

const (
	timestampLayout = "2006-01-02 15:04:05"
	sessionFormat   = "#{session_name}:#{session_created}"
	windowFormat    = "#{window_index}:#{window_name}:#{window_active}"
)

// Client talks to one tmux server.
type Client struct {
	socketPath string
	nested     bool
}

// NewClient returns a client for socketPath. An empty path lets tmux pick
// its default server.
func NewClient(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		nested:     os.Getenv("TMUX") != "",
	}
}

// SocketPath returns the socket the client was built for.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Sessions enumerates every session and its windows. Lines that do not
// parse are skipped, and a session whose windows cannot be listed keeps
// an empty window list. ErrNoServer is returned when tmux is not running.
func (c *Client) Sessions() ([]Session, error) {
	out, err := runExecCommand("tmux", c.args("list-sessions", "-F", sessionFormat)...).Output()
	if err != nil {
		if isNoServer(err) {
			return nil, ErrNoServer
		}
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := parseSessions(string(out))
	for i := range sessions {
		windows, err := c.windows(sessions[i].Name)
		if err != nil {
			logging.Error(err)
			events.Session.Skip("windows", sessions[i].Name)
		}
		sessions[i].Windows = windows
	}
	events.Session.Loaded(len(sessions))
	return sessions, nil
}

func (c *Client) windows(session string) ([]Window, error) {
	out, err := runExecCommand("tmux", c.args("list-windows", "-t", session, "-F", windowFormat)...).Output()
	if err != nil {
		return nil, fmt.Errorf("list windows of %s: %w", session, err)
	}
	return parseWindows(string(out)), nil
}

func parseSessions(out string) []Session {
	var sessions []Session
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			events.Session.Skip("session", line)
			continue
		}
		created, label := ParseTimestamp(parts[1])
		sessions = append(sessions, Session{
			Name:         parts[0],
			Created:      created,
			CreatedLabel: label,
		})
	}
	return sessions
}

// parseWindows reads index:name:active lines. The name sits between the
// first and last colon so names containing colons survive.
func parseWindows(out string) []Window {
	var windows []Window
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		first := strings.Index(line, ":")
		last := strings.LastIndex(line, ":")
		if first <= 0 || last == first {
			events.Session.Skip("window", line)
			continue
		}
		windows = append(windows, Window{
			Index:  line[:first],
			Name:   line[first+1 : last],
			Active: line[last+1:] == "1",
		})
	}
	return windows
}

// ParseTimestamp converts tmux's epoch seconds into a time and its local
// display form. Unparseable input yields the zero time and InvalidTimestamp.
func ParseTimestamp(raw string) (time.Time, string) {
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return time.Time{}, InvalidTimestamp
	}
	t := time.Unix(secs, 0).Local()
	return t, t.Format(timestampLayout)
}

// AttachCommand builds the command that hands the terminal to session name.
// Inside tmux the current client is switched instead of nesting an attach.
func (c *Client) AttachCommand(name string) *exec.Cmd {
	verb := "attach-session"
	if c.nested {
		verb = "switch-client"
	}
	return exec.Command("tmux", c.args(verb, "-t", name)...)
}

// ResolveSocketPath picks the tmux socket: the flag value, then $TMUX when
// running inside tmux, then the default socket under $TMUX_TMPDIR.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
