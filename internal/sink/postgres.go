package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisek/maturity/internal/scoring"
)

// DefaultTable is the Postgres table results are written to.
const DefaultTable = "maturity_assessments"

// execer is the subset of *pgxpool.Pool the sink needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres writes results to a remote Postgres table, one row per session.
type Postgres struct {
	db    execer
	close func()
	table string

	mu       sync.Mutex
	migrated bool
}

// NewPostgres parses dsn and prepares a connection pool. The pool connects
// lazily, so an unreachable server surfaces on the first Save.
func NewPostgres(ctx context.Context, dsn, table string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres sink: DSN is required")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres DSN: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	return newPostgres(pool, pool.Close, table), nil
}

func newPostgres(db execer, closeFn func(), table string) *Postgres {
	if table == "" {
		table = DefaultTable
	}
	return &Postgres{db: db, close: closeFn, table: table}
}

func (p *Postgres) Name() string  { return "postgres" }
func (p *Postgres) Enabled() bool { return true }

// Close releases the connection pool.
func (p *Postgres) Close() {
	if p.close != nil {
		p.close()
	}
}

type competencyRow struct {
	Name       string  `json:"name"`
	Score      int     `json:"score"`
	MaxScore   int     `json:"max_score"`
	Percentage float64 `json:"percentage"`
	Average    float64 `json:"average"`
}

func competencyRows(res *scoring.Results) []competencyRow {
	rows := make([]competencyRow, 0, len(res.Competencies))
	for _, c := range res.Competencies {
		rows = append(rows, competencyRow{
			Name:       string(c.Name),
			Score:      c.Score,
			MaxScore:   c.MaxScore,
			Percentage: c.Percentage,
			Average:    c.Average(),
		})
	}
	return rows
}

func (p *Postgres) Save(ctx context.Context, sub Submission) error {
	if err := sub.validate(); err != nil {
		return err
	}

	if err := p.ensureSchema(ctx); err != nil {
		return &PersistenceError{Sink: p.Name(), Err: err}
	}

	comps, err := json.Marshal(competencyRows(sub.Results))
	if err != nil {
		return &PersistenceError{Sink: p.Name(), Err: fmt.Errorf("marshal competencies: %w", err)}
	}

	_, err = p.db.Exec(ctx, fmt.Sprintf(`
INSERT INTO %s (session_id, industry, company_name, role, overall_score, max_possible_score, competencies, completed_at, saved_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (session_id)
DO UPDATE SET industry=EXCLUDED.industry, company_name=EXCLUDED.company_name, role=EXCLUDED.role,
	overall_score=EXCLUDED.overall_score, max_possible_score=EXCLUDED.max_possible_score,
	competencies=EXCLUDED.competencies, completed_at=EXCLUDED.completed_at, saved_at=EXCLUDED.saved_at;`,
		p.ident()),
		sub.SessionID,
		sub.Profile.Industry,
		sub.Profile.CompanyName,
		sub.Profile.Role,
		sub.Results.OverallScore,
		sub.Results.MaxPossibleScore,
		comps,
		sub.Results.CompletedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return &PersistenceError{Sink: p.Name(), Err: err}
	}
	return nil
}

func (p *Postgres) ident() string {
	return pgx.Identifier{p.table}.Sanitize()
}

// ensureSchema creates the table on first use. A failed attempt is tried
// again on the next Save.
func (p *Postgres) ensureSchema(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.migrated {
		return nil
	}

	_, err := p.db.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id bigserial primary key,
	session_id text not null unique,
	industry text not null default '',
	company_name text not null default '',
	role text not null default '',
	overall_score integer not null,
	max_possible_score integer not null,
	competencies jsonb not null,
	completed_at timestamptz not null,
	saved_at timestamptz not null default now()
);`, p.ident()))
	if err != nil {
		return fmt.Errorf("create table %s: %w", p.table, err)
	}
	p.migrated = true
	return nil
}
