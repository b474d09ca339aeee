package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"one"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"summary":"two"}`), StopReason: StopMaxTokens},
		MockResponse{Err: &ErrRateLimit{}},
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "coach", Messages: []Message{{Role: RoleUser, Content: "a"}}})
	require.NoError(t, err)
	assert.Equal(t, &Response{
		Content:    json.RawMessage(`{"summary":"one"}`),
		Usage:      Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		Model:      "mock",
		StopReason: StopEnd,
	}, first)

	second, err := mock.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, second.StopReason)

	_, err = mock.Generate(ctx, Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.True(t, errors.Is(err, errScriptExhausted))

	assert.Equal(t, 4, mock.CallCount())
	assert.Equal(t, "coach", mock.Calls[0].System)
}

func TestMockProvider_Concurrent(t *testing.T) {
	script := make([]MockResponse, 20)
	for i := range script {
		script[i] = MockResponse{Content: json.RawMessage(`{}`)}
	}
	mock := NewMockProvider(script...)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = mock.Generate(context.Background(), Request{})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, mock.CallCount())
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "insights", PurposeFrom(WithPurpose(ctx, "insights")))
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err  error
		want string
	}{
		{&ErrProviderUnavailable{}, "LLM provider unavailable"},
		{&ErrProviderUnavailable{Err: cause}, "LLM provider unavailable: boom"},
		{&ErrAuth{Err: cause}, "LLM provider rejected credentials: boom"},
		{&ErrInvalidResponse{Err: cause}, "invalid LLM response: boom"},
		{&ErrMaxTokensExceeded{}, "LLM response truncated: max tokens exceeded"},
	}
	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
	assert.ErrorIs(t, &ErrRateLimit{Err: cause}, cause)
}
