// Package layout draws the frame shared by every screen: a header bar with
// the screen title, the screen body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Below these content sizes screens switch to their compact rendering.
const (
	compactWidth  = 100
	compactHeight = 24
)

const appName = "Maturity"

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// StatusProvider is implemented by screens that show a short status at the
// right edge of the header.
type StatusProvider interface {
	Status() string
}

// IsTooSmall reports whether the terminal cannot fit the frame.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompact reports whether a screen body of the given size should use
// its condensed layout.
func IsCompact(width, height int) bool {
	return width < compactWidth || height < compactHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}

// RenderHeader lays the app name, title and status out in three columns
// with the title centered.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 3)
	side := inner / 3
	middle := inner - 2*side

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(side).Foreground(theme.Primary).Bold(true).Render(appName),
		lipgloss.NewStyle().Width(middle).Align(lipgloss.Center).Foreground(theme.Text).Render(title),
		lipgloss.NewStyle().Width(side).Align(lipgloss.Right).Foreground(theme.Accent).Render(status),
	)
	return bar(width).Render(cols)
}

// RenderFooter renders key hints separated by wide gaps.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render(strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer so the result is exactly
// height lines tall; the body is clipped or padded to fit.
func RenderFrame(header, body, footer string, width, height int) string {
	room := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(room).MaxHeight(room).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Centered centers content horizontally within width.
func Centered(content string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
