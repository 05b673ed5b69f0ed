package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// RetryProvider retries transient failures with capped exponential backoff
// and ±20% jitter.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p. MaxAttempts below one means a single attempt.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	var policy retryPolicy

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt == attempts || !policy.retryable(err) {
			return nil, err
		}

		wait := r.delay(attempt, err)
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Str("model", r.inner.ModelID()).
			Msg("retrying llm request")
		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// retryPolicy decides which failures earn another attempt within one
// Generate call.
type retryPolicy struct {
	invalidSeen bool
}

func (p *retryPolicy) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		// Plain transport errors.
		return true
	}
	switch kind {
	case KindTruncated, KindRefused:
		return false
	case KindInvalid:
		// A second sample often comes back well formed; a third rarely does.
		if p.invalidSeen {
			return false
		}
		p.invalidSeen = true
	}
	return true
}

// delay is the wait before attempt+1. A server-sent Retry-After wins.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt-1))
	if limit := float64(r.cfg.MaxWait); limit > 0 && d > limit {
		d = limit
	}
	return time.Duration(d * (0.8 + 0.4*rand.Float64()))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
