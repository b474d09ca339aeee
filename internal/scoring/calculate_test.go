package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/maturity/internal/questionbank"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func twoCompetencyBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	b, err := questionbank.New([]questionbank.Question{
		{ID: 1, Text: "q1", Competency: "A"},
		{ID: 2, Text: "q2", Competency: "A"},
		{ID: 3, Text: "q3", Competency: "B"},
	})
	if err != nil {
		t.Fatalf("questionbank.New: %v", err)
	}
	return b
}

func TestCalculate_TwoCompetencies(t *testing.T) {
	answers := []questionbank.Answer{
		{QuestionID: 1, Rating: 4},
		{QuestionID: 2, Rating: 2},
		{QuestionID: 3, Rating: 5},
	}

	got := Calculate(twoCompetencyBank(t), answers, fixedNow)

	want := &Results{
		Competencies: []CompetencyResult{
			{Name: "A", Score: 6, MaxScore: 10, Percentage: 60},
			{Name: "B", Score: 5, MaxScore: 5, Percentage: 100},
		},
		OverallScore:     11,
		MaxPossibleScore: 15,
		CompletedAt:      fixedNow,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_Empty(t *testing.T) {
	got := Calculate(twoCompetencyBank(t), nil, fixedNow)

	if got.OverallScore != 0 {
		t.Errorf("OverallScore = %d, want 0", got.OverallScore)
	}
	if got.MaxPossibleScore != 15 {
		t.Errorf("MaxPossibleScore = %d, want 15", got.MaxPossibleScore)
	}
	for _, c := range got.Competencies {
		if c.Score != 0 || c.Percentage != 0 {
			t.Errorf("%s: score = %d, pct = %v; want 0, 0", c.Name, c.Score, c.Percentage)
		}
	}
}

func TestCalculate_IgnoresUnknownQuestions(t *testing.T) {
	answers := []questionbank.Answer{
		{QuestionID: 1, Rating: 3},
		{QuestionID: 42, Rating: 5},
	}
	got := Calculate(twoCompetencyBank(t), answers, fixedNow)
	if got.OverallScore != 3 {
		t.Errorf("OverallScore = %d, want 3", got.OverallScore)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	b := questionbank.Default()
	answers := make([]questionbank.Answer, 0, b.Len())
	for i, q := range b.All() {
		answers = append(answers, questionbank.Answer{QuestionID: q.ID, Rating: i%5 + 1})
	}

	first := Calculate(b, answers, fixedNow)
	second := Calculate(b, answers, fixedNow)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Calculate() differs (-first +second):\n%s", diff)
	}
}

func TestCalculate_Invariants(t *testing.T) {
	b := questionbank.Default()
	answers := make([]questionbank.Answer, 0, b.Len())
	for i, q := range b.All() {
		if i%3 == 0 {
			continue
		}
		answers = append(answers, questionbank.Answer{QuestionID: q.ID, Rating: (i*7)%5 + 1})
	}

	res := Calculate(b, answers, fixedNow)

	sum, maxSum := 0, 0
	for _, c := range res.Competencies {
		if c.Score < 0 || c.Score > c.MaxScore {
			t.Errorf("%s: score %d outside [0, %d]", c.Name, c.Score, c.MaxScore)
		}
		if c.MaxScore != len(b.ByCompetency(c.Name))*questionbank.MaxRating {
			t.Errorf("%s: MaxScore = %d, want count x 5", c.Name, c.MaxScore)
		}
		wantPct := float64(c.Score) / float64(c.MaxScore) * 100
		if math.Abs(c.Percentage-wantPct) > 1e-9 {
			t.Errorf("%s: Percentage = %v, want %v", c.Name, c.Percentage, wantPct)
		}
		sum += c.Score
		maxSum += c.MaxScore
	}
	if res.OverallScore != sum {
		t.Errorf("OverallScore = %d, want sum of competencies %d", res.OverallScore, sum)
	}
	if res.MaxPossibleScore != maxSum || res.MaxPossibleScore != b.Len()*5 {
		t.Errorf("MaxPossibleScore = %d, want %d", res.MaxPossibleScore, b.Len()*5)
	}
	if len(res.Competencies) != len(b.Competencies()) {
		t.Errorf("len(Competencies) = %d, want %d", len(res.Competencies), len(b.Competencies()))
	}
}

func TestCalculate_CompetencyOrderFollowsQuestions(t *testing.T) {
	b, err := questionbank.New([]questionbank.Question{
		{ID: 1, Text: "q1", Competency: "Zeta"},
		{ID: 2, Text: "q2", Competency: "Alpha"},
		{ID: 3, Text: "q3", Competency: "Zeta"},
	})
	if err != nil {
		t.Fatalf("questionbank.New: %v", err)
	}

	res := Calculate(b, nil, fixedNow)
	names := []questionbank.Competency{res.Competencies[0].Name, res.Competencies[1].Name}
	want := []questionbank.Competency{"Zeta", "Alpha"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
