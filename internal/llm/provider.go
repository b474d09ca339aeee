// Package llm is a small provider-neutral client for structured JSON
// generation. Concrete providers wrap the Anthropic, OpenAI (and
// OpenRouter) and Gemini SDKs; decorators add validation, retries and
// request logging. NewProvider assembles the full chain from a Config.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response for a request.
type Provider interface {
	// Generate runs req. With a Schema set, providers use their native
	// structured output mode and WithValidation checks the result.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model.
	ModelID() string
}

type Request struct {
	System   string
	Messages []Message

	// Schema, when set, is the shape Content must take. Without it
	// Content is whatever text the model produced.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Schema is a named JSON Schema. Name must suit every provider's naming
// rules, so keep it kebab-case.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that actually served the request
	StopReason string // StopEnd or StopMaxTokens
}

// Stop reasons, normalised across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
