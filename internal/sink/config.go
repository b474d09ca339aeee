package sink

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/store"
)

// Sink kinds accepted in Config.Kind.
const (
	KindDisabled = "disabled"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
	KindBoth     = "both" // sqlite and postgres
)

// Config selects and configures the results sink.
type Config struct {
	Kind     string `yaml:"kind"`
	Postgres struct {
		DSN   string `yaml:"dsn"`
		Table string `yaml:"table"`
	} `yaml:"postgres"`
}

// FromConfig builds the configured sink. An empty kind means disabled.
// repo may be nil when no local store is open; the sqlite kind then falls
// back to Disabled.
func FromConfig(ctx context.Context, cfg Config, repo store.ResultRepo, logger *zap.Logger) (ResultsSink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sqlite := func() ResultsSink {
		if repo == nil {
			logger.Warn("sqlite sink requested without a local store; persistence disabled")
			return Disabled{}
		}
		return NewSQLite(repo)
	}

	switch cfg.Kind {
	case "", KindDisabled:
		return Disabled{}, nil
	case KindSQLite:
		return sqlite(), nil
	case KindPostgres, KindBoth:
		if cfg.Postgres.DSN == "" {
			logger.Warn("postgres sink requested without a DSN; remote persistence disabled", zap.String("kind", cfg.Kind))
			if cfg.Kind == KindBoth {
				return sqlite(), nil
			}
			return Disabled{}, nil
		}
		pg, err := NewPostgres(ctx, cfg.Postgres.DSN, cfg.Postgres.Table)
		if err != nil {
			return nil, err
		}
		logger.Info("postgres sink configured", zap.String("table", pg.table))
		if cfg.Kind == KindPostgres {
			return pg, nil
		}
		return Multi{sqlite(), pg}, nil
	default:
		return nil, fmt.Errorf("unknown sink kind %q", cfg.Kind)
	}
}
