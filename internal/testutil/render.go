package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// BuildBinary compiles the pinta command into a temp dir and returns its path.
func BuildBinary(t *testing.T) string {
	t.Helper()
	RequireTmux(t)
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("skipping: go toolchain not available")
	}
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "pinta")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// WaitForRender polls target until its pane shows want. exitPath, when set,
// names a file the launcher writes the exit code to; a non-zero code fails
// the test early.
func WaitForRender(t *testing.T, ctx context.Context, srv *Server, target, want, exitPath string) string {
	t.Helper()
	var last string
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for %q in pane %s: %v\nlast capture:\n%s", want, target, ctx.Err(), last)
		case <-time.After(50 * time.Millisecond):
			if exitPath != "" {
				if data, err := os.ReadFile(exitPath); err == nil {
					code := strings.TrimSpace(string(data))
					if code != "" && code != "0" {
						t.Fatalf("pinta exited early with code %s", code)
					}
				}
			}
			out, err := srv.CapturePane(target)
			if err != nil {
				if errors.Is(err, ErrPaneUnavailable) {
					continue
				}
				t.Fatalf("capture-pane error: %v", err)
			}
			last = out
			if strings.Contains(out, want) {
				return out
			}
		}
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
