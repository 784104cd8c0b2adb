package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help view shown after SPC,
// filtered by screen. When the handler has a buffered sequence, the
// next-level hints are shown instead.
func RenderKeybindHelp(keyHandler *KeyHandler, screen Screen) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, screen)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := "SPC"
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	content := Styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return boxStyle.Render(content)
}
