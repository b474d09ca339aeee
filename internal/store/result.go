package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/maturity/internal/scoring"
)

var resultColumns = []string{
	"id", "sequence", "session_id", "completed_at", "saved_at",
	"industry", "company_name", "role",
	"overall_score", "max_possible_score", "competencies",
}

// resultRepo implements ResultRepo with ent's SQL builder and the global
// sequence counter.
type resultRepo struct {
	db  *sql.DB
	seq *sequence
}

func (r *resultRepo) Save(ctx context.Context, rec *ResultRecord) error {
	if rec.Results == nil {
		return fmt.Errorf("save result %s: no results", rec.SessionID)
	}

	comps, err := json.Marshal(rec.Results.Competencies)
	if err != nil {
		return fmt.Errorf("marshal competencies: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	savedAt := time.Now().UTC()

	query, args := builder().Insert(ResultsTable.Name).
		Columns(resultColumns[1:]...).
		Values(
			seqNum,
			rec.SessionID,
			rec.Results.CompletedAt.UTC(),
			savedAt,
			rec.Profile.Industry,
			rec.Profile.CompanyName,
			rec.Profile.Role,
			rec.Results.OverallScore,
			rec.Results.MaxPossibleScore,
			string(comps),
		).
		OnConflict(
			entsql.ConflictColumns("session_id"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	query, args = builder().Select("id").
		From(entsql.Table(ResultsTable.Name)).
		Where(entsql.EQ("session_id", rec.SessionID)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		return fmt.Errorf("read saved result id: %w", err)
	}
	rec.Sequence = seqNum
	rec.SavedAt = savedAt
	return nil
}

func (r *resultRepo) Latest(ctx context.Context) (*ResultRecord, error) {
	sel := builder().Select(resultColumns...).
		From(entsql.Table(ResultsTable.Name)).
		OrderBy(entsql.Desc("completed_at"), entsql.Desc("sequence")).
		Limit(1)
	return r.one(ctx, sel)
}

func (r *resultRepo) Get(ctx context.Context, id int) (*ResultRecord, error) {
	sel := builder().Select(resultColumns...).
		From(entsql.Table(ResultsTable.Name)).
		Where(entsql.EQ("id", id))
	return r.one(ctx, sel)
}

func (r *resultRepo) List(ctx context.Context, opts QueryOpts) ([]ResultRecord, error) {
	sel := builder().Select(resultColumns...).From(entsql.Table(ResultsTable.Name))
	query, args := applyQueryOpts(sel, opts, "completed_at").Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		rec, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

func (r *resultRepo) one(ctx context.Context, sel *entsql.Selector) (*ResultRecord, error) {
	query, args := sel.Query()
	rec, err := scanResult(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*ResultRecord, error) {
	var (
		rec         ResultRecord
		res         scoring.Results
		completedAt time.Time
		comps       string
	)
	err := row.Scan(
		&rec.ID,
		&rec.Sequence,
		&rec.SessionID,
		&completedAt,
		&rec.SavedAt,
		&rec.Profile.Industry,
		&rec.Profile.CompanyName,
		&rec.Profile.Role,
		&res.OverallScore,
		&res.MaxPossibleScore,
		&comps,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan result: %w", err)
	}
	if err := json.Unmarshal([]byte(comps), &res.Competencies); err != nil {
		return nil, fmt.Errorf("unmarshal competencies: %w", err)
	}
	res.CompletedAt = completedAt
	rec.Results = &res
	return &rec, nil
}
