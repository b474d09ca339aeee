package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var okResponse = MockResponse{Content: json.RawMessage(`{"ok":true}`)}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
}

func malformed() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{`), Err: errors.New("unexpected EOF")}}
}

// retrying wraps mock and records the waits instead of sleeping.
func retrying(mock *MockProvider, attempts int) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	p := WithRetry(mock, RetryConfig{
		MaxAttempts: attempts,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2,
	}, zap.NewNop()).(*RetryProvider)
	p.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return p, &waits
}

func TestRetryProvider(t *testing.T) {
	tests := []struct {
		name      string
		script    []MockResponse
		wantCalls int
		wantErr   any
	}{
		{"first attempt succeeds", []MockResponse{okResponse}, 1, nil},
		{"transient then success", []MockResponse{unavailable(), unavailable(), okResponse}, 3, nil},
		{"attempts exhausted", []MockResponse{unavailable(), unavailable(), unavailable(), okResponse}, 3, new(*ErrProviderUnavailable)},
		{"truncation is final", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, okResponse}, 1, new(*ErrMaxTokensExceeded)},
		{"auth is final", []MockResponse{{Err: &ErrAuth{Err: errors.New("401")}}, okResponse}, 1, new(*ErrAuth)},
		{"malformed gets one more try", []MockResponse{malformed(), okResponse}, 2, nil},
		{"malformed twice gives up", []MockResponse{malformed(), malformed(), okResponse}, 2, new(*ErrInvalidResponse)},
		{"plain errors are transient", []MockResponse{{Err: errors.New("connection reset")}, okResponse}, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			p, waits := retrying(mock, 3)

			resp, err := p.Generate(context.Background(), Request{})
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			assert.Len(t, *waits, tt.wantCalls-1)
			if tt.wantErr != nil {
				assert.ErrorAs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
		})
	}
}

func TestRetryProvider_Backoff(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), unavailable(), okResponse)
	p, waits := retrying(mock, 4)

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, *waits, 3)

	// 100ms, 200ms, then capped at 300ms, each within 20% jitter.
	for i, base := range []time.Duration{100, 200, 300} {
		base *= time.Millisecond
		assert.InDelta(t, float64(base), float64((*waits)[i]), float64(base)/5+1)
	}
}

func TestRetryProvider_RetryAfterWins(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 2 * time.Second}}, okResponse)
	p, waits := retrying(mock, 3)

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second}, *waits)
}

func TestRetryProvider_Cancelled(t *testing.T) {
	mock := NewMockProvider(unavailable(), okResponse)
	p, _ := retrying(mock, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestWithRetry_Defaults(t *testing.T) {
	mock := NewMockProvider(unavailable(), okResponse)
	p := WithRetry(mock, RetryConfig{}, nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "mock", p.ModelID())
}

func TestSleepCtx(t *testing.T) {
	assert.NoError(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
}
