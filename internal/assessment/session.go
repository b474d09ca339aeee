package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/maturity/internal/questionbank"
	"github.com/abhisek/maturity/internal/scoring"
)

// Session is one run through the question bank. A finished session is never
// reopened; starting over means creating a new Session.
type Session struct {
	*Store

	// ID is a UUID identifying the session in history and remote sinks.
	ID string

	// Profile is the respondent's details from the profile form.
	Profile Profile

	// StartedAt is when the session was created.
	StartedAt time.Time

	// CompletedAt is when the last question was first answered (zero until then).
	CompletedAt time.Time

	// Now returns the current time. Tests replace it for determinism.
	Now func() time.Time

	phase   Phase
	results *scoring.Results
}

// NewSession creates a session over bank for the given profile.
func NewSession(bank *questionbank.Bank, profile Profile) *Session {
	return &Session{
		Store:     NewStore(bank),
		ID:        uuid.New().String(),
		Profile:   profile,
		StartedAt: time.Now(),
		Now:       time.Now,
		phase:     PhaseNotStarted,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// UpsertAnswer records a rating and advances the phase. Once complete,
// results are recomputed on every change.
func (s *Session) UpsertAnswer(a questionbank.Answer) error {
	if err := s.Store.UpsertAnswer(a); err != nil {
		return err
	}

	switch {
	case s.phase == PhaseComplete:
		s.results = s.Calculate(s.CompletedAt)
	case s.Store.IsComplete():
		s.phase = PhaseComplete
		s.CompletedAt = s.Now()
		s.results = s.Calculate(s.CompletedAt)
	default:
		s.phase = PhaseInProgress
	}
	return nil
}

// Calculate scores the answers given so far.
func (s *Session) Calculate(now time.Time) *scoring.Results {
	return scoring.Calculate(s.Bank(), s.Answers(), now)
}

// Results returns the results from completion, or nil before that.
func (s *Session) Results() *scoring.Results {
	return s.results
}
