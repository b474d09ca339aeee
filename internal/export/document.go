package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/scoring"
)

// Document is the structured export shape shared by JSON and YAML.
type Document struct {
	Profile      *assessment.Profile `json:"profile,omitempty" yaml:"profile,omitempty"`
	CompletedAt  time.Time           `json:"completed_at" yaml:"completed_at"`
	Competencies []DocumentRow       `json:"competencies" yaml:"competencies"`
	Overall      DocumentRow         `json:"overall" yaml:"overall"`
}

// DocumentRow is one competency (or the overall totals).
type DocumentRow struct {
	Name       string  `json:"name" yaml:"name"`
	Score      int     `json:"score" yaml:"score"`
	MaxScore   int     `json:"max_score" yaml:"max_score"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Average    float64 `json:"average" yaml:"average"`
	Level      string  `json:"level" yaml:"level"`
}

// NewDocument builds the export document. A zero profile is omitted.
func NewDocument(results *scoring.Results, profile assessment.Profile) Document {
	doc := Document{
		CompletedAt: results.CompletedAt,
		Overall: row(OverallLabel, results.OverallScore, results.MaxPossibleScore,
			results.OverallPercentage(), results.OverallAverage()),
	}
	if !profile.IsZero() {
		p := profile
		doc.Profile = &p
	}
	doc.Competencies = make([]DocumentRow, 0, len(results.Competencies))
	for _, c := range results.Competencies {
		doc.Competencies = append(doc.Competencies,
			row(string(c.Name), c.Score, c.MaxScore, c.Percentage, c.Average()))
	}
	return doc
}

func row(name string, score, maxScore int, pct, avg float64) DocumentRow {
	return DocumentRow{
		Name:       name,
		Score:      score,
		MaxScore:   maxScore,
		Percentage: round(pct, 1),
		Average:    scoring.RoundAverage(avg),
		Level:      scoring.Level(avg),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// WriteJSON writes the results as an indented JSON document.
func WriteJSON(w io.Writer, results *scoring.Results, profile assessment.Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(results, profile)); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteYAML writes the results as a YAML document.
func WriteYAML(w io.Writer, results *scoring.Results, profile assessment.Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(results, profile)); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}
