package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or a modal with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// InputCapturer is implemented by screens that own a focused text input.
// While CapturesInput is true, global keybinds other than ctrl+c are
// bypassed so typed characters reach the input.
type InputCapturer interface {
	CapturesInput() bool
}

func capturesInput(v View) bool {
	c, ok := v.(InputCapturer)
	return ok && c.CapturesInput()
}
