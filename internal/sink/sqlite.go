package sink

import (
	"context"

	"github.com/abhisek/maturity/internal/store"
)

// SQLite saves results to the local history database.
type SQLite struct {
	repo store.ResultRepo
}

// NewSQLite creates a sink over repo.
func NewSQLite(repo store.ResultRepo) *SQLite {
	return &SQLite{repo: repo}
}

func (s *SQLite) Name() string  { return "local history" }
func (s *SQLite) Enabled() bool { return s.repo != nil }

func (s *SQLite) Save(ctx context.Context, sub Submission) error {
	if err := sub.validate(); err != nil {
		return err
	}
	if s.repo == nil {
		return ErrNotConfigured
	}

	rec := &store.ResultRecord{
		SessionID: sub.SessionID,
		Profile:   sub.Profile,
		Results:   sub.Results,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return &PersistenceError{Sink: s.Name(), Err: err}
	}
	return nil
}
