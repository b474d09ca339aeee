package insights

import "github.com/abhisek/maturity/internal/llm"

// PlanSchema defines the JSON schema for development plan generation.
var PlanSchema = &llm.Schema{
	Name:        "development-plan",
	Description: "A personal development plan built from competency self-assessment scores",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-4 sentence overview of the respondent's maturity profile",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "1-3 strengths, each naming a competency",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "1-3 competencies to develop first, each with a short reason",
			},
			"actions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"competency": map[string]any{
							"type":        "string",
							"description": "Competency name exactly as given",
						},
						"actions": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    1,
							"maxItems":    3,
							"description": "Concrete next steps (one sentence each)",
						},
					},
					"required":             []any{"competency", "actions"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"summary", "strengths", "focus_areas", "actions"},
		"additionalProperties": false,
	},
}
