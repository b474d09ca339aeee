// Package theme holds the palette and shared lipgloss styles. The palette
// follows the assessment's rose brand colour on a dark slate background.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   color.Color = lipgloss.Color("#DB536A")
	Secondary color.Color = lipgloss.Color("#14B8A6")
	Accent    color.Color = lipgloss.Color("#F59E0B")
	Success   color.Color = lipgloss.Color("#22C55E")
	Error     color.Color = lipgloss.Color("#EF4444")

	Text    color.Color = lipgloss.Color("#F8FAFC")
	TextDim color.Color = lipgloss.Color("#94A3B8")
	BgCard  color.Color = lipgloss.Color("#1E293B")
	Border  color.Color = lipgloss.Color("#334155")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func boxed(border color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
}

// Text styles.
var (
	Title      = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle   = fg(TextDim).Align(lipgloss.Center)
	Body       = fg(Text)
	Hint       = fg(TextDim).Italic(true)
	ErrorText  = fg(Error)
	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)
)

// Box styles.
var (
	Card           = boxed(Border).Padding(1, 2)
	Focused        = boxed(Primary).Padding(0, 1)
	Blurred        = boxed(Border).Padding(0, 1)
	ButtonActive   = boxed(Primary).Foreground(Primary).Bold(true).Padding(0, 2)
	ButtonInactive = boxed(Border).Foreground(TextDim).Padding(0, 2)
)

// LevelColor colours a 5-point average: red below 2, amber below 3.5,
// teal below 4.5 and green from there up.
func LevelColor(avg float64) color.Color {
	switch {
	case avg >= 4.5:
		return Success
	case avg >= 3.5:
		return Secondary
	case avg >= 2:
		return Accent
	default:
		return Error
	}
}
