package ui

import tea "github.com/charmbracelet/bubbletea"

// maxHarnessSteps bounds the commands one Send may chain, so a command that
// keeps rescheduling itself cannot hang a test.
const maxHarnessSteps = 64

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model    *Model
	quitting bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	steps := 0
	h.processCmd(h.update(msg), &steps)
}

func (h *Harness) update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.QuitMsg); ok {
		h.quitting = true
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

func (h *Harness) processCmd(cmd tea.Cmd, steps *int) {
	for cmd != nil && *steps < maxHarnessSteps {
		*steps++
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c, steps)
			}
			return
		}
		cmd = h.update(msg)
	}
}

// Type sends each rune of s as its own key press.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a special key such as tea.KeyEnter.
func (h *Harness) Press(k tea.KeyType) {
	h.Send(tea.KeyMsg{Type: k})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Quitting reports whether the model asked the program to exit.
func (h *Harness) Quitting() bool {
	return h.quitting
}
