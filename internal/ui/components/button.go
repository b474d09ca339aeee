package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/ui/theme"
)

// Button renders a bordered label; the focused one is highlighted and
// marked with an arrow.
func Button(label string, focused bool) string {
	if focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow lays labels out side by side with the selected one focused.
func ButtonRow(labels []string, selected int) string {
	buttons := make([]string, len(labels))
	for i, l := range labels {
		buttons[i] = Button(l, i == selected)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, interleave(buttons, " ")...)
}
