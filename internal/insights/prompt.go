package insights

import (
	"fmt"
	"strings"

	"github.com/abhisek/maturity/internal/scoring"
)

const planSystemPrompt = `You are an experienced leadership development coach. You turn competency self-assessment scores into a short, practical development plan. Be specific and constructive. Never invent scores.`

func buildPlanUserMessage(input Input) string {
	var b strings.Builder

	p := input.Profile
	if p.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", p.Industry)
	}
	if p.Role != "" {
		fmt.Fprintf(&b, "Role: %s\n", p.Role)
	}

	res := input.Results
	fmt.Fprintf(&b, "\nOverall: %d/%d (%s out of 5)\n",
		res.OverallScore, res.MaxPossibleScore, scoring.FormatAverage(res.OverallAverage()))

	b.WriteString("\nCompetencies (strongest first):\n")
	for _, c := range res.ByStrength() {
		fmt.Fprintf(&b, "- %s: %d/%d, %s out of 5 (%s)\n",
			c.Name, c.Score, c.MaxScore, scoring.FormatAverage(c.Average()), scoring.Level(c.Average()))
	}

	b.WriteString(`
Instructions:
1. Summarize the overall maturity profile in 3-4 sentences.
2. Name up to 3 strengths, taken from the highest scoring competencies.
3. Name up to 3 focus areas, taken from the lowest scoring competencies, each with a short reason.
4. For every competency listed above, give 1-3 concrete actions the respondent could start within the next quarter. Use the competency name exactly as written.
5. Use plain text. No markdown.`)

	return b.String()
}
