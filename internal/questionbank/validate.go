package questionbank

import (
	"fmt"
	"strings"
)

// validateQuestions performs all structural checks on the given question
// set. Returns a combined error describing every problem found, or nil.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "question set is empty")
	}

	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if q.ID <= 0 {
			errs = append(errs, fmt.Sprintf("question ID must be positive, got %d", q.ID))
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %d has empty text", q.ID))
		}
		if strings.TrimSpace(string(q.Competency)) == "" {
			errs = append(errs, fmt.Sprintf("question %d has no competency", q.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks the seeded question set.
func Validate() error {
	return validateQuestions(seedQuestions())
}
