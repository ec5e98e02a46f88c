package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skychart/pkg/ephemeris"
	"skychart/pkg/logger"

	"go.uber.org/zap"
)

// budget is a cooperative limiter shared by every job of a worker. It never lets
// more requests run than the upstream reported as remaining in its window.
//
// The effective remaining budget is
//
//	remaining := last.Remaining
//	if now > last.ResetAt { remaining = last.Limit }
//
// and a request may start while remaining - inFlight > 0. Waiters wake up when
// the window resets or when any in-flight request finishes.
//
// Until the first response arrives the budget is a synthetic Limit=1,
// Remaining=1 window with a far-future reset, so exactly one probe request
// goes out to learn the real limits.
//
// Merging: a new ResetAt is always adopted; within the same window Remaining
// only ever decreases, since concurrent responses may report stale counts.
type budget struct {
	// mu guards inFlight and last.
	mu       sync.Mutex
	inFlight int
	last     *ephemeris.RateLimitStatus
	// finished wakes one waiter in reserve; sends are dropped when nobody waits.
	finished chan struct{}
}

func newBudget() *budget {
	return &budget{finished: make(chan struct{})}
}

// reserve takes one unit of budget, blocking until one is available or ctx is done.
func (b *budget) reserve(ctx context.Context) error {
	for {
		b.mu.Lock()

		if b.last == nil {
			b.last = &ephemeris.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := b.last.Remaining
		if time.Now().UTC().After(b.last.ResetAt) {
			remaining = b.last.Limit
		}

		if remaining-b.inFlight > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", b.last.Limit),
				zap.Time("resetAt", b.last.ResetAt),
				zap.Int("inFlight", b.inFlight))
			b.inFlight++
			b.mu.Unlock()

			return nil
		}

		resetAt := b.last.ResetAt
		limit := b.last.Limit
		inFlight := b.inFlight
		b.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Int("limit", limit),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-b.finished:
		case <-time.After(time.Until(resetAt)):
		}
	}
}

// release returns a unit reserved by reserve and merges the status reported by
// the finished request. A zero ResetAt means the response carried no limits.
func (b *budget) release(ctx context.Context, status ephemeris.RateLimitStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.inFlight > 0 {
		b.inFlight--
	}

	select {
	case b.finished <- struct{}{}:
	default:
	}

	if status.ResetAt.IsZero() {
		return
	}

	adopt := b.last == nil ||
		!b.last.ResetAt.Equal(status.ResetAt) ||
		status.Remaining < b.last.Remaining
	if !adopt {
		return
	}

	b.last = &status
	logger.Debug(ctx, "received rate limit status",
		zap.Int("limit", status.Limit),
		zap.Int("remaining", status.Remaining),
		zap.Time("resetAt", status.ResetAt),
		zap.Int("inFlight", b.inFlight))
}
