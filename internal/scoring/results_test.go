package scoring

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompetencyResult_Average(t *testing.T) {
	tests := []struct {
		name string
		c    CompetencyResult
		want float64
	}{
		{"six of ten", CompetencyResult{Score: 6, MaxScore: 10}, 3.0},
		{"perfect", CompetencyResult{Score: 5, MaxScore: 5}, 5.0},
		{"empty", CompetencyResult{Score: 0, MaxScore: 0}, 0},
		{"seventeen of twenty-five", CompetencyResult{Score: 17, MaxScore: 25}, 3.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Average(); !approx(got, tt.want) {
				t.Errorf("Average() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResults_Overall(t *testing.T) {
	r := &Results{OverallScore: 11, MaxPossibleScore: 15}
	if got := r.OverallAverage(); !approx(got, 11.0/15*5) {
		t.Errorf("OverallAverage() = %v", got)
	}
	if got := r.OverallPercentage(); !approx(got, 11.0/15*100) {
		t.Errorf("OverallPercentage() = %v", got)
	}

	empty := &Results{}
	if empty.OverallAverage() != 0 || empty.OverallPercentage() != 0 {
		t.Error("zero Results should report 0 averages")
	}
}

func TestResults_ByStrength(t *testing.T) {
	r := &Results{
		Competencies: []CompetencyResult{
			{Name: "A", Score: 6, MaxScore: 10},
			{Name: "B", Score: 5, MaxScore: 5},
			{Name: "C", Score: 3, MaxScore: 5},
			{Name: "D", Score: 2, MaxScore: 10},
		},
	}

	got := r.ByStrength()
	want := []string{"B", "A", "C", "D"}
	for i, name := range want {
		if string(got[i].Name) != name {
			t.Errorf("ByStrength()[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
	if r.Competencies[0].Name != "A" {
		t.Error("ByStrength() modified the receiver")
	}

	strongest, _ := r.Strongest()
	weakest, _ := r.Weakest()
	if strongest.Name != "B" || weakest.Name != "D" {
		t.Errorf("Strongest/Weakest = %s/%s, want B/D", strongest.Name, weakest.Name)
	}
}

func TestResults_Find(t *testing.T) {
	r := &Results{Competencies: []CompetencyResult{{Name: "A", Score: 1, MaxScore: 5}}}
	if c, ok := r.Find("A"); !ok || c.Score != 1 {
		t.Errorf("Find(A) = %+v, %v", c, ok)
	}
	if _, ok := r.Find("Z"); ok {
		t.Error("Find(Z) should be absent")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{0, "Not rated"},
		{1.2, "Novice"},
		{2.5, "Competent"},
		{3.4, "Competent"},
		{4.6, "Expert"},
		{5, "Expert"},
	}
	for _, tt := range tests {
		if got := Level(tt.avg); got != tt.want {
			t.Errorf("Level(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestRoundAverage(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{3.25, "3.3"},
		{65.0 / 100 * 5, "3.3"},
		{85.0 / 100 * 5, "4.3"},
		{1.25, "1.3"},
		{11.0 / 15 * 5, "3.7"},
		{3.24, "3.2"},
		{0, "0.0"},
		{5, "5.0"},
	}

	for _, tt := range tests {
		if got := FormatAverage(tt.avg); got != tt.want {
			t.Errorf("FormatAverage(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
	if got := RoundAverage(2.25); !approx(got, 2.3) {
		t.Errorf("RoundAverage(2.25) = %v, want 2.3", got)
	}
}
