package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/store"
	"github.com/abhisek/maturity/internal/ui/components"
	"github.com/abhisek/maturity/internal/ui/theme"
)

const titleFull = `┳┳┓┏┓┏┳┓┳┳┳┓┳┏┳┓┓┏
┃┃┃┣┫ ┃ ┃┃┣┫┃ ┃ ┗┫
┛ ┗┛┗ ┻ ┗┛┛┗┻ ┻ ┗┛`

const titleCompact = "M · A · T · U · R · I · T · Y"

// contentWidth is the width every section is drawn at so the boxes line
// up inside the frame.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + theme.Hint.Render("Competency self-assessment"))
}

// renderLatestBar summarizes the most recent saved result in a bordered box.
func renderLatestBar(rec *store.ResultRecord, cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var body string
	if rec == nil || rec.Results == nil {
		body = dim.Render("No saved results yet")
	} else {
		avg := rec.Results.OverallAverage()
		score := lipgloss.NewStyle().Foreground(theme.LevelColor(avg)).Bold(true).
			Render(scoring.FormatAverage(avg) + "/5")
		body = fmt.Sprintf("%s %s  %s",
			dim.Render("Last result"),
			score,
			dim.Render(rec.SavedAt.Local().Format("Jan 02, 2006")))
		if s, ok := rec.Results.Strongest(); ok {
			body += "\n" + dim.Render("Strongest: ") + theme.Body.Render(string(s.Name))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}

const buttonWidth = 24

// renderMenu draws each menu item as a fixed-width bordered button.
func renderMenu(m components.Menu, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			buttons[i] = base.Foreground(theme.TextDim).Render(item.Label)
		case i == m.Selected:
			buttons[i] = base.Bold(true).Foreground(theme.Primary).BorderForeground(theme.Primary).Render("▸ " + item.Label)
		default:
			buttons[i] = base.Foreground(theme.Text).Render(item.Label)
		}
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, buttons...))
}

// renderServicesNote shows where results go and whether AI insights are on.
func renderServicesNote(svc screen.Services, cw int) string {
	saving := "Results are not saved"
	if svc.Sink != nil && svc.Sink.Enabled() {
		saving = "Saving to " + svc.Sink.Name()
	}
	ai := "AI insights off"
	if svc.Insights.Enabled() {
		ai = "AI insights on"
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(saving + "  ·  " + ai)
}

// renderFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
