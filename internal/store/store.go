// Package store keeps local history in SQLite: saved assessment results
// and a log of insight requests. Tables are declared with ent's schema
// package and migrated on open; queries use ent's SQL builder.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	_ "modernc.org/sqlite"
)

var pragmas = []string{
	"journal_mode = WAL",
	"busy_timeout = 5000",
	"foreign_keys = ON",
	"synchronous = NORMAL",
}

type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequence
}

// Open connects to the SQLite database at dsn, creating and migrating it
// as needed.
func Open(dsn string) (*Store, error) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection; one connection keeps them in force.
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, "PRAGMA "+p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	migrate, err := schema.NewMigrate(drv)
	if err == nil {
		err = migrate.Create(ctx, Tables...)
	}
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequence(ctx, db)
	if err != nil {
		drv.Close()
		return nil, err
	}
	return &Store{db: db, drv: drv, seq: seq}, nil
}

// DB exposes the connection for ad-hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.drv.Close() }

func (s *Store) ResultRepo() ResultRepo { return &resultRepo{db: s.db, seq: s.seq} }

func (s *Store) EventRepo() EventRepo { return &eventRepo{db: s.db, seq: s.seq} }

// DefaultDBPath picks the database file: $MATURITY_DB if set, otherwise
// maturity/maturity.db under $XDG_DATA_HOME (default ~/.local/share). The
// parent directory is created.
func DefaultDBPath() (string, error) {
	path := os.Getenv("MATURITY_DB")
	if path == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		path = filepath.Join(dataHome, "maturity", "maturity.db")
	}
	return path, EnsureDir(path)
}

// EnsureDir creates the directory that will hold path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
