package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/ui/theme"
)

var resultsHeaders = []string{"Competency", "Score", "Max", "Average", "Level"}

// ResultsRows returns the table body: one row per competency in results
// order, then the overall row.
func ResultsRows(res *scoring.Results) [][]string {
	if res == nil {
		return nil
	}
	rows := make([][]string, 0, len(res.Competencies)+1)
	for _, c := range res.Competencies {
		rows = append(rows, []string{
			string(c.Name),
			fmt.Sprintf("%d", c.Score),
			fmt.Sprintf("%d", c.MaxScore),
			scoring.FormatAverage(c.Average()),
			scoring.Level(c.Average()),
		})
	}
	rows = append(rows, []string{
		"Overall",
		fmt.Sprintf("%d", res.OverallScore),
		fmt.Sprintf("%d", res.MaxPossibleScore),
		scoring.FormatAverage(res.OverallAverage()),
		scoring.Level(res.OverallAverage()),
	})
	return rows
}

// ResultsTable renders the per-competency breakdown as a bordered table.
func ResultsTable(res *scoring.Results) string {
	rows := ResultsRows(res)
	if len(rows) == 0 {
		return ""
	}
	last := len(rows) - 1

	averages := make([]float64, len(rows))
	for i, c := range res.Competencies {
		averages[i] = c.Average()
	}
	averages[last] = res.OverallAverage()

	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(resultsHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cell.Foreground(theme.Primary).Bold(true)
			case col == 3 || col == 4:
				return cell.Foreground(theme.LevelColor(averages[row]))
			case row == last:
				return cell.Foreground(theme.Text).Bold(true)
			default:
				return cell.Foreground(theme.Text)
			}
		})
	return t.String()
}
