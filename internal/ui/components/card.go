package components

import (
	"github.com/abhisek/maturity/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards so that
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border card at width cw.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// Panel frames content under a title. A cw of 0 sizes the panel to fit.
func Panel(title, content string, cw int) string {
	style := theme.Card
	if cw > 0 {
		style = style.Width(cw)
	}
	return style.Render(theme.Selected.Render(title) + "\n\n" + content)
}
