package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/store"
)

// LoggingProvider records each Generate call in the event store so it can
// be inspected later with `maturity llm`.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	logger   *zap.Logger
}

// WithLogging wraps p. provider is the configured provider name stored
// with each event.
func WithLogging(p Provider, provider string, events store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, provider: provider, events: events, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	ev := l.event(ctx, req, resp, err, time.Since(start))

	l.logger.Debug("llm request",
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
		zap.Error(err),
	)
	// A failed write only costs us the audit record.
	if werr := l.events.AppendLLMRequest(ctx, ev); werr != nil {
		l.logger.Warn("record LLM request event", zap.Error(werr))
	}
	return resp, err
}

func (l *LoggingProvider) event(ctx context.Context, req Request, resp *Response, err error, took time.Duration) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	return ev
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// transcript renders a request as labelled blocks: [system], one block per
// message named after its role, and the schema when one is set.
func transcript(req Request) string {
	var blocks []string
	if req.System != "" {
		blocks = append(blocks, "[system]\n"+req.System)
	}
	for _, m := range req.Messages {
		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", m.Role, m.Content))
	}
	if req.Schema != nil {
		if def, err := json.MarshalIndent(req.Schema.Definition, "", "  "); err == nil {
			blocks = append(blocks, fmt.Sprintf("[schema: %s]\n%s", req.Schema.Name, def))
		}
	}
	return strings.Join(blocks, "\n\n")
}
