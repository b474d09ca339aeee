package insights

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/llm"
	"github.com/abhisek/maturity/internal/scoring"
)

func validPlanJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "A strategic thinker who should invest in innovation.",
		"strengths": ["Strategic Thinking"],
		"focus_areas": ["Innovation: few experiments run"],
		"actions": [
			{"competency": "Strategic Thinking", "actions": ["Share the three-year plan with the team."]},
			{"competency": "Innovation", "actions": ["Run one small pilot per quarter.", "Join an industry forum."]}
		]
	}`)
}

func testInput() Input {
	return Input{
		Profile: assessment.Profile{Industry: "Retail", CompanyName: "Acme", Role: "Buyer"},
		Results: &scoring.Results{
			Competencies: []scoring.CompetencyResult{
				{Name: "Strategic Thinking", Score: 20, MaxScore: 25, Percentage: 80},
				{Name: "Innovation", Score: 6, MaxScore: 15, Percentage: 40},
			},
			OverallScore:     26,
			MaxPossibleScore: 40,
		},
	}
}

func waitForOutcome(t *testing.T, svc *Service) Outcome {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if out, ok := svc.Consume(); ok {
			return out
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for plan")
	return Outcome{}
}

// The genai client's opencensus dependency starts a stats worker at init.
var ignoreOpenCensus = goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start")

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, ignoreOpenCensus)
}

func TestService_GeneratesPlan(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig(), zap.NewNop())

	svc.Request(context.Background(), testInput())
	out := waitForOutcome(t, svc)
	svc.Wait()

	require.NoError(t, out.Err)
	require.NotNil(t, out.Plan)
	assert.Equal(t, []string{"Strategic Thinking"}, out.Plan.Strengths)
	require.Len(t, out.Plan.Actions, 2)
	assert.Equal(t, "Innovation", out.Plan.Actions[1].Competency)
	assert.Len(t, out.Plan.Actions[1].Actions, 2)
	assert.Equal(t, "mock", out.Plan.Model)
	assert.False(t, svc.Busy())

	_, ok := svc.Consume()
	assert.False(t, ok, "second Consume should find nothing")
}

func TestService_PromptCarriesScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Generate(context.Background(), testInput())
	require.NoError(t, err)
	require.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	assert.Equal(t, PlanSchema, req.Schema)
	msg := req.Messages[0].Content
	for _, want := range []string{"Industry: Retail", "Role: Buyer", "Overall: 26/40", "Strategic Thinking: 20/25, 4.0 out of 5 (Proficient)"} {
		assert.True(t, strings.Contains(msg, want), "prompt missing %q:\n%s", want, msg)
	}
	assert.NotContains(t, msg, "Acme")
}

func TestService_ProviderError(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig(), zap.NewNop())

	svc.Request(context.Background(), testInput())
	out := waitForOutcome(t, svc)
	svc.Wait()

	assert.Nil(t, out.Plan)
	var unavail *llm.ErrProviderUnavailable
	assert.True(t, errors.As(out.Err, &unavail))
}

func TestService_LatestRequestWins(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	first := json.RawMessage(`{"summary":"first","strengths":["a"],"focus_areas":["b"],"actions":[]}`)
	second := json.RawMessage(`{"summary":"second","strengths":["a"],"focus_areas":["b"],"actions":[]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: first}, llm.MockResponse{Content: second})
	svc := NewService(mock, DefaultConfig(), zap.NewNop())

	svc.Request(context.Background(), testInput())
	svc.Request(context.Background(), testInput())
	svc.Wait()

	out, ok := svc.Consume()
	require.True(t, ok)
	require.NoError(t, out.Err)
	require.NotNil(t, out.Plan)
	_, ok = svc.Consume()
	assert.False(t, ok)
}

func TestService_Disabled(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	assert.False(t, svc.Enabled())

	_, err := svc.Generate(context.Background(), testInput())
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestPlanMarkdown(t *testing.T) {
	p := &Plan{
		Summary:    "Solid foundation.",
		Strengths:  []string{"Communication"},
		FocusAreas: []string{"Innovation"},
		Actions: []CompetencyActions{
			{Competency: "Innovation", Actions: []string{"Run a monthly idea review"}},
		},
		Model:       "mock",
		GeneratedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	md := p.Markdown()
	for _, want := range []string{
		"## Development plan",
		"Solid foundation.",
		"### Strengths\n\n- Communication",
		"### Focus areas\n\n- Innovation",
		"### Next steps: Innovation\n\n- Run a monthly idea review",
		"*Generated by mock on Mar 01, 2026*",
	} {
		assert.Contains(t, md, want)
	}

	var nilPlan *Plan
	assert.Empty(t, nilPlan.Markdown())
}
