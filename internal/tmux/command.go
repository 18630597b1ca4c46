package tmux

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

func (c *Client) args(args ...string) []string {
	return append(baseArgs(c.socketPath), args...)
}

// isNoServer reports whether err is tmux complaining that nothing is
// listening on the socket, which just means there are no sessions yet.
func isNoServer(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	stderr := exitErr.Stderr
	return bytes.Contains(stderr, []byte("no server running")) ||
		bytes.Contains(stderr, []byte("error connecting to")) ||
		bytes.Contains(stderr, []byte("No such file or directory"))
}
