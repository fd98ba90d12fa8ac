package scraper

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// MinRequestInterval is the minimum delay between outbound fetches.
const MinRequestInterval = 1000 * time.Millisecond

// Limiter serializes outbound fetches system-wide. It is injected rather
// than held as package state so tests can substitute deterministic fakes
// and multiple pipeline instances can run in isolation.
type Limiter interface {
	Wait(ctx context.Context) error
}

// IntervalLimiter enforces a minimum interval between requests using a
// token bucket with burst 1.
type IntervalLimiter struct {
	bucket *rate.Limiter
}

var _ Limiter = &IntervalLimiter{}

func NewIntervalLimiter(minInterval time.Duration) *IntervalLimiter {
	if minInterval <= 0 {
		minInterval = MinRequestInterval
	}
	return &IntervalLimiter{
		bucket: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

func (l *IntervalLimiter) Wait(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}

// NopLimiter never waits. Used in tests.
type NopLimiter struct{}

func (NopLimiter) Wait(ctx context.Context) error { return nil }
