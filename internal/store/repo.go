package store

import (
	"context"
	"time"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/scoring"
)

// QueryOpts configures queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ResultRecord is a saved assessment outcome.
type ResultRecord struct {
	ID        int
	Sequence  int64
	SessionID string
	Profile   assessment.Profile
	Results   *scoring.Results
	SavedAt   time.Time
}

// ResultRepo manages saved assessment results.
type ResultRepo interface {
	// Save stores rec, replacing any earlier record for the same session.
	// ID, Sequence and SavedAt are filled in on success.
	Save(ctx context.Context, rec *ResultRecord) error

	// Latest returns the most recently completed result, or nil if none exist.
	Latest(ctx context.Context) (*ResultRecord, error)

	// List returns saved results, newest first.
	List(ctx context.Context, opts QueryOpts) ([]ResultRecord, error)

	// Get returns a result by ID, or nil if it does not exist.
	Get(ctx context.Context, id int) (*ResultRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
