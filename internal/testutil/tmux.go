package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var ErrPaneUnavailable = errors.New("tmux pane unavailable")

// Server is a throwaway tmux server bound to its own socket.
type Server struct {
	Socket string
	LogDir string
}

// RequireTmux aborts the calling test when tmux is not present on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// StartTmuxServer boots a temporary tmux server bound to a unique socket.
// The server is killed and its files removed when the test finishes.
func StartTmuxServer(t *testing.T) *Server {
	t.Helper()
	RequireTmux(t)
	baseDir, err := os.MkdirTemp("/tmp", "pinta-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(baseDir) })
	srv := &Server{Socket: filepath.Join(baseDir, "tmux-test.sock"), LogDir: baseDir}
	cmd := srv.Command("-f", "/dev/null", "new-session", "-d", "-s", "pinta-test", "sleep", "600")
	cmd.Dir = baseDir
	if err := cmd.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := killServerControl(ctx, srv.Socket); err != nil {
			t.Logf("control-mode kill failed for socket %s: %v; falling back to tmux kill-server", srv.Socket, err)
			_ = srv.Command("kill-server").Run()
		}
		srv.assertNoCrash(t)
	})
	return srv
}

// Command builds a tmux command aimed at the server with the caller's
// $TMUX scrubbed so nothing leaks into the user's own tmux.
func (s *Server) Command(extra ...string) *exec.Cmd {
	args := append([]string{"-S", s.Socket}, extra...)
	cmd := exec.Command("tmux", args...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") {
			continue
		}
		env = append(env, entry)
	}
	env = append(env, "TMUX=", "TMUX_TMPDIR="+filepath.Dir(s.Socket))
	cmd.Env = env
	return cmd
}

// HasSession reports whether name exists on the server.
func (s *Server) HasSession(name string) bool {
	return s.Command("has-session", "-t", name).Run() == nil
}

// SessionPath returns the start directory tmux recorded for session name.
func (s *Server) SessionPath(name string) (string, error) {
	out, err := s.Command("display-message", "-p", "-t", name, "#{session_path}").Output()
	if err != nil {
		return "", fmt.Errorf("display-message failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CapturePane returns the rendered contents of a pane.
func (s *Server) CapturePane(target string) (string, error) {
	args := []string{"capture-pane", "-p"}
	if target != "" {
		args = append(args, "-t", target)
	}
	output, err := s.Command(args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane failed: %w", err)
	}
	return string(output), nil
}

func (s *Server) assertNoCrash(t *testing.T) {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(s.LogDir, "tmux-server-*.log"))
	if err != nil {
		t.Fatalf("failed to glob tmux logs: %v", err)
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read tmux server log %s: %v", path, err)
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			t.Fatalf("tmux server reported unexpected exit; see %s", path)
		}
	}
}

func killServerControl(ctx context.Context, socket string) error {
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err != nil {
		return err
	}
	defer client.Close()
	return client.KillServer()
}
