package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier decorates a Provider with exponential backoff on transient
// failures. Context cancellation always wins over a pending wait.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p so transient errors are retried per cfg. Rate limits
// honor the provider's RetryAfter, schema-invalid responses get exactly
// one more try, and context or max-token errors fail immediately.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidBudget) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

// retryable decides whether err is worth another attempt. invalidBudget
// limits schema failures to a single retry; regenerating rarely helps
// twice.
func retryable(err error, invalidBudget *int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		// Too small a cap is a configuration problem, not transient.
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidBudget == 0 {
			return false
		}
		*invalidBudget--
		return true
	}

	// Rate limits, unavailability and unknown network errors all get the
	// full backoff schedule.
	return true
}

// wait computes the sleep before the next attempt: the provider's own
// RetryAfter when present, otherwise capped exponential backoff with
// ±20% jitter.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}
