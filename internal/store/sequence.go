package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequence numbers rows across all tables, so a saved result and the
// insight request made for it can be ordered against each other even
// though each table has its own auto-increment IDs.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequence seeds the counter row if the database is new. The table
// itself is created by the migration.
func newSequence(ctx context.Context, db *sql.DB) (*sequence, error) {
	query, args := builder().Insert(SequenceTable.Name).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequence{db: db}, nil
}

// Next returns the current value and advances the counter. The first value
// handed out is 1.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	row := s.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
