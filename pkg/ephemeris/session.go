package ephemeris

import (
	"context"
	"sync"
	"sync/atomic"

	"skychart/pkg/serrors"
)

// Session owns the process-wide lifecycle of an ephemeris client: it is opened
// once, shared by any number of goroutines, and closed exactly once.
type Session struct {
	client    Client
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Open starts a session around client.
func Open(client Client) *Session {
	return &Session{client: client}
}

// Positions forwards to the underlying client unless the session is closed.
func (s *Session) Positions(ctx context.Context, q Query) (Batch, RateLimitStatus, error) {
	if s.closed.Load() {
		return Batch{}, RateLimitStatus{}, serrors.With(serrors.ErrUnavailable, "ephemeris session is closed")
	}

	return s.client.Positions(ctx, q) //nolint: wrapcheck
}

// Close closes the underlying client on the first call and returns that result
// on every call.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.client.Close()
	})

	return s.closeErr
}

var _ Client = (*Session)(nil)
