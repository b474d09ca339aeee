package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Provider failures are reported as the typed errors below so the retry
// decorator and callers can tell them apart with errors.As.

// ErrRateLimit is an HTTP 429. RetryAfter is the server's hint, or zero.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrAuth means the API key was rejected.
type ErrAuth struct{ Err error }

func (e *ErrAuth) Error() string { return fmt.Sprintf("LLM provider rejected credentials: %v", e.Err) }

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers outages, network failures and any other
// provider error without a more specific type.
type ErrProviderUnavailable struct{ Err error }

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return "LLM provider unavailable: " + e.Err.Error()
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse carries output that is empty, refused, not JSON, or
// does not match the request schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string { return fmt.Sprintf("invalid LLM response: %v", e.Err) }

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is structured output cut off by MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string { return "LLM response truncated: max tokens exceeded" }
