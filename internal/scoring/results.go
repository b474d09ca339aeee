package scoring

import (
	"sort"
	"time"

	"github.com/abhisek/maturity/internal/questionbank"
)

// CompetencyResult holds the aggregated ratings for one competency.
type CompetencyResult struct {
	Name       questionbank.Competency `json:"name"`
	Score      int                     `json:"score"`
	MaxScore   int                     `json:"max_score"`
	Percentage float64                 `json:"percentage"`
}

// Average returns the score on the 5-point scale (0 when MaxScore is 0).
func (c CompetencyResult) Average() float64 {
	return average(c.Score, c.MaxScore)
}

// ratio is Score/MaxScore, 0 when there is nothing to score.
func (c CompetencyResult) ratio() float64 {
	if c.MaxScore == 0 {
		return 0
	}
	return float64(c.Score) / float64(c.MaxScore)
}

// Results is the full, derived outcome of an assessment.
type Results struct {
	Competencies     []CompetencyResult `json:"competencies"`
	OverallScore     int                `json:"overall_score"`
	MaxPossibleScore int                `json:"max_possible_score"`
	CompletedAt      time.Time          `json:"completed_at"`
}

// OverallPercentage returns OverallScore as a percentage of MaxPossibleScore.
func (r *Results) OverallPercentage() float64 {
	return percentage(r.OverallScore, r.MaxPossibleScore)
}

// OverallAverage returns the overall score on the 5-point scale.
func (r *Results) OverallAverage() float64 {
	return average(r.OverallScore, r.MaxPossibleScore)
}

// Find returns the result for the named competency.
func (r *Results) Find(name questionbank.Competency) (CompetencyResult, bool) {
	for _, c := range r.Competencies {
		if c.Name == name {
			return c, true
		}
	}
	return CompetencyResult{}, false
}

// ByStrength returns the competencies ordered from strongest to weakest.
// Ties keep their original order. The receiver is not modified.
func (r *Results) ByStrength() []CompetencyResult {
	out := make([]CompetencyResult, len(r.Competencies))
	copy(out, r.Competencies)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ratio() > out[j].ratio()
	})
	return out
}

// Strongest returns the highest scoring competency.
func (r *Results) Strongest() (CompetencyResult, bool) {
	ranked := r.ByStrength()
	if len(ranked) == 0 {
		return CompetencyResult{}, false
	}
	return ranked[0], true
}

// Weakest returns the lowest scoring competency.
func (r *Results) Weakest() (CompetencyResult, bool) {
	ranked := r.ByStrength()
	if len(ranked) == 0 {
		return CompetencyResult{}, false
	}
	return ranked[len(ranked)-1], true
}

func percentage(score, maxScore int) float64 {
	if maxScore == 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}

func average(score, maxScore int) float64 {
	if maxScore == 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * questionbank.MaxRating
}
