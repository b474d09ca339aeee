package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders md for the terminal, wrapped to width. On renderer
// failure the raw text is returned.
func Markdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
