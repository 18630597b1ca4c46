package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestOpenCreatesThenAttaches(t *testing.T) {
	provider := &fakeProvider{}
	dir := makeDir(t, "my.project/")
	project := filepath.Join(dir, "my.project")
	m := newTestModel(t, project, provider)
	h := NewHarness(m)
	h.Press(tea.KeyEnter)
	if len(provider.created) != 1 || provider.created[0] != project {
		t.Fatalf("expected create for %s, got %v", project, provider.created)
	}
	if len(provider.attached) != 1 || provider.attached[0] != "my_project" {
		t.Fatalf("expected attach to my_project, got %v", provider.attached)
	}
	if m.pending != "my_project" {
		t.Fatalf("expected pending hand-off, got %q", m.pending)
	}
	h.Type("j")
	if m.dirList.Selected != 0 {
		t.Fatalf("expected keys to be ignored while pending")
	}
	h.Send(attachDoneMsg{name: "my_project"})
	if !h.Quitting() {
		t.Fatalf("expected a successful attach to quit")
	}
}

func TestOpenFailureStaysInUI(t *testing.T) {
	provider := &fakeProvider{createErr: errors.New("tmux: command not found")}
	h := NewHarness(newTestModel(t, makeDir(t, "a/"), provider))
	h.Type("o")
	m := h.Model()
	if len(provider.attached) != 0 {
		t.Fatalf("expected no attach after a failed create")
	}
	if m.pending != "" || !strings.Contains(m.Status(), "command not found") {
		t.Fatalf("expected failure status, got pending %q status %q", m.pending, m.Status())
	}
	if h.Quitting() {
		t.Fatalf("expected to stay in the UI")
	}
}

func TestAttachSelectedSession(t *testing.T) {
	provider := &fakeProvider{sessions: sampleSessions()}
	h := NewHarness(newTestModel(t, makeDir(t, "a/"), provider))
	h.Send(sessionsLoadedMsg{sessions: provider.sessions})
	h.Press(tea.KeyTab)
	h.Type("j")
	h.Type("o")
	if len(provider.attached) != 1 || provider.attached[0] != "ops" {
		t.Fatalf("expected attach to ops, got %v", provider.attached)
	}
	if len(provider.created) != 0 {
		t.Fatalf("expected no create from the sessions tab")
	}
	h.Send(attachDoneMsg{name: "ops", err: errors.New("exit status 1")})
	m := h.Model()
	if h.Quitting() || m.pending != "" {
		t.Fatalf("expected failed attach to return control")
	}
	if !strings.Contains(m.Status(), "attach ops") {
		t.Fatalf("expected attach failure status, got %q", m.Status())
	}
}

func TestRefreshReloadsSessions(t *testing.T) {
	provider := &fakeProvider{}
	h := NewHarness(newTestModel(t, makeDir(t, "a/"), provider))
	h.Send(sessionsLoadedMsg{})
	provider.sessions = sampleSessions()
	h.Type("R")
	if got := h.Model().sessions.Names(); len(got) != 2 {
		t.Fatalf("expected refreshed sessions, got %v", got)
	}
}

func TestCopySelectedPath(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	dir := makeDir(t, "alpha/")
	h := NewHarness(newTestModel(t, dir, nil))
	h.Type("y")
	want := filepath.Join(dir, "alpha")
	if copied != want {
		t.Fatalf("expected %s copied, got %q", want, copied)
	}
	if !strings.Contains(h.Model().Status(), want) {
		t.Fatalf("expected copy notice, got %q", h.Model().Status())
	}

	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	h.Type("y")
	if !strings.Contains(h.Model().Status(), "no clipboard utility") {
		t.Fatalf("expected clipboard failure status, got %q", h.Model().Status())
	}
}
