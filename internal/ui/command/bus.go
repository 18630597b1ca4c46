package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pinta/internal/logging/events"
)

// Request describes a side effect the UI wants performed off the update loop.
type Request struct {
	ID    string
	Label string
	// Run performs the work and returns the command whose message reports
	// the outcome. A nil command means there is nothing to report.
	Run func() tea.Cmd
}

// Bus turns requests into Bubble Tea commands while emitting trace logs.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps req into a command. The returned command runs req.Run on
// Bubble Tea's command goroutine and forwards the resulting message.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Run()
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
