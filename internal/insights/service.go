package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/llm"
)

// ErrDisabled is returned when no LLM provider is configured.
var ErrDisabled = errors.New("insights disabled: no LLM provider configured")

// Service generates development plans. A nil provider makes it inert.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger

	wg sync.WaitGroup

	mu      sync.Mutex
	gen     int // id of the latest request; older results are dropped
	pending *Plan
	err     error
	ready   bool
	busy    bool
}

// NewService creates a plan generation service.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Enabled reports whether a provider is available.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Request starts asynchronous plan generation. Only one plan is in flight
// at a time; a new request supersedes any pending one.
func (s *Service) Request(ctx context.Context, input Input) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending, s.err, s.ready = nil, nil, false
	s.busy = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		plan, err := s.Generate(ctx, input)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = plan
		s.err = err
		s.ready = true
		s.busy = false
	}()
}

// Outcome is the result of a finished request.
type Outcome struct {
	Plan *Plan
	Err  error
}

// Consume returns the outcome of the latest request once it has completed,
// or false while nothing is ready. Consuming clears the slot.
func (s *Service) Consume() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Outcome{}, false
	}
	out := Outcome{Plan: s.pending, Err: s.err}
	s.pending, s.err, s.ready = nil, nil, false
	return out, true
}

// Busy reports whether a request is in flight.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Wait blocks until every started request has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

type planOutput struct {
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	FocusAreas []string `json:"focus_areas"`
	Actions    []struct {
		Competency string   `json:"competency"`
		Actions    []string `json:"actions"`
	} `json:"actions"`
}

// Generate builds a plan synchronously.
func (s *Service) Generate(ctx context.Context, input Input) (*Plan, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if input.Results == nil {
		return nil, fmt.Errorf("plan generation: no results")
	}

	ctx = llm.WithPurpose(ctx, "insights")
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(input)},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.logger.Warn("plan generation failed", zap.Error(err))
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	plan := &Plan{
		Summary:     out.Summary,
		Strengths:   out.Strengths,
		FocusAreas:  out.FocusAreas,
		Model:       resp.Model,
		GeneratedAt: time.Now(),
	}
	for _, a := range out.Actions {
		plan.Actions = append(plan.Actions, CompetencyActions{
			Competency: a.Competency,
			Actions:    a.Actions,
		})
	}

	s.logger.Info("plan generated",
		zap.String("model", resp.Model),
		zap.Int("actions", len(plan.Actions)),
	)
	return plan, nil
}
