package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// retryClass says how the retry loop treats a failed attempt.
type retryClass int

const (
	retryNever retryClass = iota
	retryOnce
	retryTransient
)

// classify maps an attempt error to its retry class. Cancellation,
// truncation and rejected credentials are final; a malformed response is
// worth one more try; everything else is assumed transient.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var (
		maxTok *ErrMaxTokensExceeded
		auth   *ErrAuth
		inv    *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &maxTok), errors.As(err, &auth):
		return retryNever
	case errors.As(err, &inv):
		return retryOnce
	default:
		return retryTransient
	}
}

// RetryProvider retries failed Generate calls according to a RetryConfig.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps p with retries. MaxAttempts below one means a single
// attempt.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryProvider{inner: p, config: cfg, logger: logger, sleep: sleepCtx}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	usedOnce := false
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if usedOnce {
				return nil, err
			}
			usedOnce = true
		}
		if attempt >= r.config.MaxAttempts {
			return nil, err
		}

		wait := r.config.delay(attempt, err)
		r.logger.Info("retrying LLM request",
			zap.String("purpose", PurposeFrom(ctx)),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		if err := r.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// delay is the wait before the attempt following attempt n (1-based). A
// rate limit with a Retry-After hint wins over the exponential schedule,
// which is capped at MaxWait and jittered by up to 20% either way.
func (c RetryConfig) delay(n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	base := math.Min(
		float64(c.InitialWait)*math.Pow(c.Multiplier, float64(n-1)),
		float64(c.MaxWait),
	)
	jittered := base * (0.8 + 0.4*rand.Float64())
	return time.Duration(math.Max(jittered, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
