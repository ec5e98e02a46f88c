package chart

import (
	"strings"
	"time"

	"skychart/pkg/ephemeris"
	"skychart/pkg/serrors"
)

// Key returns the canonical identity of a chart request: the instant in UTC,
// truncated to whole seconds, and the frame, e.g. "2000-01-01T12:00:00Z/geocentric".
// Requests with the same key share one computation.
func Key(at time.Time, frame ephemeris.Frame) string {
	return at.UTC().Truncate(time.Second).Format(time.RFC3339) + "/" + string(frame)
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (time.Time, ephemeris.Frame, error) {
	instant, frameName, ok := strings.Cut(key, "/")
	if !ok {
		return time.Time{}, "", serrors.With(serrors.ErrBadRequest, "malformed chart key %q", key)
	}

	at, err := time.Parse(time.RFC3339, instant)
	if err != nil {
		return time.Time{}, "", serrors.Wrap(serrors.ErrBadRequest, err, "malformed chart key instant")
	}

	frame, err := ephemeris.ParseFrame(frameName)
	if err != nil || frameName == "" {
		return time.Time{}, "", serrors.With(serrors.ErrBadRequest, "malformed chart key frame %q", frameName)
	}

	return at.UTC(), frame, nil
}

// ParseInstant accepts RFC 3339 timestamps, with or without fractional seconds,
// and a bare date meaning midnight UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, serrors.With(serrors.ErrBadRequest, "invalid instant %q", s)
}
