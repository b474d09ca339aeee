package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/ui/components"
	"github.com/abhisek/maturity/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// wideThreshold is the width at which chart and summary sit side by side.
const wideThreshold = 110

func (s *ResultsScreen) renderBody(width int) string {
	res := s.in.Results

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Your Maturity Assessment Results"))
	b.WriteString("\n")
	sub := fmt.Sprintf("A breakdown of your strengths across %d competencies", len(res.Competencies))
	if !s.in.Profile.IsZero() {
		sub += fmt.Sprintf("  ·  %s, %s", s.in.Profile.Role, s.in.Profile.CompanyName)
	}
	b.WriteString(theme.Subtitle.Width(width).Render(sub))
	b.WriteString("\n\n")

	radius := 5
	if width >= wideThreshold {
		radius = 6
	}
	chart := components.Panel("Competency Profile", radarFor(res, radius).View(), 0)
	summary := lipgloss.JoinVertical(lipgloss.Left,
		renderOverall(res),
		renderStrength(res, 36),
	)

	var top string
	if width >= wideThreshold {
		top = lipgloss.JoinHorizontal(lipgloss.Top, chart, "  ", summary)
	} else {
		top = lipgloss.JoinVertical(lipgloss.Center, chart, summary)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, top))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ResultsTable(res)))
	b.WriteString("\n")

	if plan := s.renderPlan(width); plan != "" {
		b.WriteString("\n")
		b.WriteString(plan)
		b.WriteString("\n")
	}
	return b.String()
}

func radarFor(res *scoring.Results, radius int) components.Radar {
	axes := make([]components.RadarAxis, 0, len(res.Competencies))
	for _, c := range res.Competencies {
		axes = append(axes, components.RadarAxis{Label: string(c.Name), Value: c.Average()})
	}
	return components.Radar{Axes: axes, Max: 5, Radius: radius}
}

func renderOverall(res *scoring.Results) string {
	avg := res.OverallAverage()
	score := lipgloss.NewStyle().Foreground(theme.LevelColor(avg)).Bold(true).
		Render(scoring.FormatAverage(avg) + "/5")
	body := lipgloss.JoinVertical(lipgloss.Center,
		score,
		theme.Hint.Render("Average maturity level"),
		theme.Body.Render(scoring.Level(avg)),
		theme.Hint.Render(fmt.Sprintf("%d of %d points", res.OverallScore, res.MaxPossibleScore)),
	)
	return components.Panel("Overall Score", lipgloss.PlaceHorizontal(32, lipgloss.Center, body), 0)
}

// renderStrength lists competencies strongest first with a bar each.
func renderStrength(res *scoring.Results, barWidth int) string {
	var lines []string
	for _, c := range res.ByStrength() {
		bar := components.NewProgressBar("", int(c.Percentage+0.5), false, barWidth)
		bar.Fill = theme.LevelColor(c.Average())
		lines = append(lines,
			theme.Body.Render(string(c.Name))+theme.Hint.Render("  "+scoring.FormatAverage(c.Average())),
			bar.View(),
		)
	}
	return components.Panel("Competency Breakdown", strings.Join(lines, "\n"), 0)
}

func (s *ResultsScreen) renderPlan(width int) string {
	switch {
	case s.planLoading:
		frame := spinnerFrames[s.spinner%len(spinnerFrames)]
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(frame+" Generating your development plan..."))
	case s.plan != nil:
		return components.Markdown(s.plan.Markdown(), min(width-4, 100))
	}
	return ""
}

func renderButtons(labels []string, selected int) string {
	return components.ButtonRow(labels, selected)
}

func renderStatus(msg string, isErr bool) string {
	if isErr {
		return theme.ErrorText.Render(msg)
	}
	return lipgloss.NewStyle().Foreground(theme.Success).Render(msg)
}
