package scoring

import (
	"time"

	"github.com/abhisek/maturity/internal/questionbank"
)

// Calculate aggregates answers into per-competency and overall scores.
//
// It is pure and total: it can be called with any number of answers.
// Answers for question IDs the bank does not know are ignored, so
// OverallScore always equals the sum of the competency scores. Each call
// recomputes everything from scratch; only CompletedAt depends on now.
func Calculate(bank *questionbank.Bank, answers []questionbank.Answer, now time.Time) *Results {
	ratings := make(map[int]int, len(answers))
	for _, a := range answers {
		if !bank.Contains(a.QuestionID) {
			continue
		}
		// Last write wins, matching upsert semantics.
		ratings[a.QuestionID] = a.Rating
	}

	res := &Results{
		MaxPossibleScore: bank.MaxScore(),
		CompletedAt:      now,
	}

	for _, c := range bank.Competencies() {
		questions := bank.ByCompetency(c)
		score := 0
		for _, q := range questions {
			score += ratings[q.ID]
		}
		maxScore := len(questions) * questionbank.MaxRating

		res.Competencies = append(res.Competencies, CompetencyResult{
			Name:       c,
			Score:      score,
			MaxScore:   maxScore,
			Percentage: percentage(score, maxScore),
		})
		res.OverallScore += score
	}

	return res
}
