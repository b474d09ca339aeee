package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/abhisek/maturity/internal/scoring"
)

// CSVHeader is the header row of the CSV export.
var CSVHeader = []string{"Competency", "Score", "Max Score", "Average (out of 5)"}

// OverallLabel names the totals row.
const OverallLabel = "OVERALL"

// WriteCSV writes one row per competency followed by the OVERALL totals row.
// Averages are on the 5-point scale with one decimal. Fields containing
// commas or quotes are quoted.
func WriteCSV(w io.Writer, results *scoring.Results) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range results.Competencies {
		row := csvRow(string(c.Name), c.Score, c.MaxScore, c.Average())
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %q: %w", c.Name, err)
		}
	}
	overall := csvRow(OverallLabel, results.OverallScore, results.MaxPossibleScore, results.OverallAverage())
	if err := cw.Write(overall); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(name string, score, maxScore int, avg float64) []string {
	return []string{
		name,
		strconv.Itoa(score),
		strconv.Itoa(maxScore),
		scoring.FormatAverage(avg),
	}
}
