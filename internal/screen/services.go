package screen

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/export"
	"github.com/abhisek/maturity/internal/insights"
	"github.com/abhisek/maturity/internal/questionbank"
	"github.com/abhisek/maturity/internal/sink"
	"github.com/abhisek/maturity/internal/store"
)

// Services bundles the dependencies screens share. Zero fields are valid:
// a nil Results repo hides history and a nil Sink behaves as disabled.
type Services struct {
	Bank     *questionbank.Bank
	Results  store.ResultRepo
	Sink     sink.ResultsSink
	Insights *insights.Service
	Logger   *zap.Logger

	ExportDir    string
	ExportFormat export.Format

	Now func() time.Time
}

// WithDefaults fills unset fields.
func (s Services) WithDefaults() Services {
	if s.Bank == nil {
		s.Bank = questionbank.Default()
	}
	if s.Sink == nil {
		s.Sink = sink.Disabled{}
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	if s.ExportFormat == "" {
		s.ExportFormat = export.FormatCSV
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	return s
}
