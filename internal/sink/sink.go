// Package sink writes completed assessment results to an external store.
//
// Persistence is optional. A Disabled sink stands in when nothing is
// configured, and a failed write never affects the in-memory results.
package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/scoring"
)

var (
	// ErrNotConfigured is returned by Save on a Disabled sink.
	ErrNotConfigured = errors.New("results sink not configured")

	// ErrPersistenceFailure matches any *PersistenceError via errors.Is.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// PersistenceError reports a failed write to a configured sink.
type PersistenceError struct {
	Sink string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save results to %s: %v", e.Sink, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrPersistenceFailure) true for every PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailure
}

// Submission is one completed assessment to persist.
type Submission struct {
	SessionID string
	Profile   assessment.Profile
	Results   *scoring.Results
}

func (s Submission) validate() error {
	if s.SessionID == "" {
		return fmt.Errorf("submission has no session ID: %w", assessment.ErrInvalidInput)
	}
	if s.Results == nil {
		return fmt.Errorf("submission %s has no results: %w", s.SessionID, assessment.ErrInvalidInput)
	}
	return nil
}

// ResultsSink persists completed results. Save makes a single attempt.
type ResultsSink interface {
	// Name identifies the sink in messages and logs.
	Name() string

	// Enabled reports whether Save can succeed at all.
	Enabled() bool

	// Save writes the submission. Failures are *PersistenceError values,
	// except on a Disabled sink which returns ErrNotConfigured.
	Save(ctx context.Context, sub Submission) error
}

// Disabled is the inert sink used when persistence is not configured.
type Disabled struct{}

func (Disabled) Name() string  { return "disabled" }
func (Disabled) Enabled() bool { return false }

func (Disabled) Save(context.Context, Submission) error {
	return ErrNotConfigured
}

// Close releases resources held by s, if any.
func Close(s ResultsSink) {
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}
