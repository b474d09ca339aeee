package insights

import (
	"time"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/scoring"
)

// Plan is an LLM-generated development plan for a completed assessment.
type Plan struct {
	Summary     string
	Strengths   []string
	FocusAreas  []string
	Actions     []CompetencyActions
	Model       string
	GeneratedAt time.Time
}

// CompetencyActions lists suggested next steps for one competency.
type CompetencyActions struct {
	Competency string
	Actions    []string
}

// Input is everything the plan is generated from.
type Input struct {
	Profile assessment.Profile
	Results *scoring.Results
}
