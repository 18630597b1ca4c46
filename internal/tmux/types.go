package tmux

import (
	"os/exec"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Window is one window line of a session.
type Window struct {
	Index  string
	Name   string
	Active bool
}

// Session is a snapshot of one tmux session and its windows.
type Session struct {
	Name    string
	Created time.Time
	// CreatedLabel is the display form of Created, or a placeholder when the
	// timestamp could not be parsed.
	CreatedLabel string
	Windows      []Window
}

// WindowCounts returns the number of windows of each session, in order.
func WindowCounts(sessions []Session) []int {
	counts := make([]int, len(sessions))
	for i, s := range sessions {
		counts[i] = len(s.Windows)
	}
	return counts
}

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}
)

type tmuxClient interface {
	GetSessionByName(string) (*gotmux.Session, error)
	NewSession(*gotmux.SessionOptions) (*gotmux.Session, error)
	Close() error
}

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}
