package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
	}{
		{"gpt-4o-mini", true},
		{"openai/gpt-4o-mini", true},
		{"google/gemini-2.0-flash-001", true},
		{"mock", false},
		{"vendor/unknown-model", false},
	}
	for _, tt := range tests {
		if got := LookupCost(tt.model); (got != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, got != nil, tt.found)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	got := c.Cost(1_000_000, 200_000)
	if math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Cost() = %v, want 2.0", got)
	}
}
