package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the model the way the Bubble Tea runtime would, minus the
// terminal: messages go through Update, returned commands run synchronously,
// and their messages feed back in until the stream drains or the program
// quits. A launch ends the program, so the harness records the quit instead
// of dropping it.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes one message through the model and drains whatever commands it
// produced. Messages after a quit are ignored, like a stopped program.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	h.deliver(msg)
}

// Type feeds text into the query line one key at a time.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) deliver(msg tea.Msg) {
	switch typed := msg.(type) {
	case tea.QuitMsg:
		h.quit = true
		return
	case tea.BatchMsg:
		for _, cmd := range typed {
			h.run(cmd)
		}
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd)
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil || h.quit {
		return
	}
	if msg := cmd(); msg != nil {
		h.deliver(msg)
	}
}

// Quit reports whether the program asked to exit.
func (h *Harness) Quit() bool { return h.quit }

// View returns the current frame.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model for state assertions.
func (h *Harness) Model() *Model {
	return h.model
}
