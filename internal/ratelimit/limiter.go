// Package ratelimit paces enrichment requests to a configured
// requests-per-minute cap.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Waiter blocks the caller until the next request may proceed. The
// orchestrator depends on this interface only, so a token-bucket or
// adaptive limiter can be swapped in without touching it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// FixedInterval enforces one request per fixed interval. No burst
// credit accrues and there is no backoff on failures.
type FixedInterval struct {
	limiter  *rate.Limiter
	interval time.Duration
}

// NewFixedInterval builds a limiter for the given requests-per-minute cap.
func NewFixedInterval(requestsPerMinute int) (*FixedInterval, error) {
	if requestsPerMinute <= 0 {
		return nil, fmt.Errorf("requests per minute must be positive, got %d", requestsPerMinute)
	}

	interval := time.Minute / time.Duration(requestsPerMinute)
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	// Drain the initial token so the first Wait blocks a full interval.
	// The orchestrator waits after each request, not before.
	limiter.Allow()

	return &FixedInterval{limiter: limiter, interval: interval}, nil
}

// Interval returns the enforced gap between requests.
func (f *FixedInterval) Interval() time.Duration {
	return f.interval
}

// Wait blocks until the interval since the previous request has elapsed,
// or the context is cancelled.
func (f *FixedInterval) Wait(ctx context.Context) error {
	return f.limiter.Wait(ctx)
}
