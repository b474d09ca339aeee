package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

var errScriptExhausted = errors.New("mock provider has no scripted responses left")

// MockResponse is one scripted outcome of MockProvider.Generate. Err wins
// over the other fields; an empty StopReason means StopEnd.
type MockResponse struct {
	Content    json.RawMessage
	Usage      Usage
	StopReason string
	Err        error
}

// MockProvider replays scripted responses in order and records every
// request it receives. Safe for concurrent use.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	next, ok := m.record(req)
	if !ok {
		return nil, &ErrProviderUnavailable{Err: errScriptExhausted}
	}
	if next.Err != nil {
		return nil, next.Err
	}
	resp := &Response{Content: next.Content, Usage: next.Usage, Model: m.ModelID(), StopReason: next.StopReason}
	if resp.StopReason == "" {
		resp.StopReason = StopEnd
	}
	return resp, nil
}

func (m *MockProvider) record(req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if len(m.script) == 0 {
		return MockResponse{}, false
	}
	next := m.script[0]
	m.script = m.script[1:]
	return next, true
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many times Generate has been called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
