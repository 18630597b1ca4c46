package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ name string }

func TestExecuteForwardsResult(t *testing.T) {
	ran := false
	cmd := New().Execute(Request{
		ID:    "attach",
		Label: "work",
		Run: func() tea.Cmd {
			ran = true
			return func() tea.Msg { return doneMsg{name: "work"} }
		},
	})
	if ran {
		t.Fatalf("expected work to be deferred until the command runs")
	}
	msg := cmd()
	if !ran {
		t.Fatalf("expected request to run")
	}
	if got, ok := msg.(doneMsg); !ok || got.name != "work" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestExecuteSkipsEmptyRequests(t *testing.T) {
	if msg := New().Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil message for missing handler, got %#v", msg)
	}
	noop := Request{ID: "noop", Run: func() tea.Cmd { return nil }}
	if msg := New().Execute(noop)(); msg != nil {
		t.Fatalf("expected nil message for nil command, got %#v", msg)
	}
}
