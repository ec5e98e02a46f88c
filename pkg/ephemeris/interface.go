// Package ephemeris defines the boundary to the external ephemeris service that
// computes body positions. Implementations live in sub-packages; callers only
// see positions, per-body failures and the upstream rate-limit status.
package ephemeris

import (
	"context"
	"time"
)

// RateLimitStatus is the upstream API budget reported with a response.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of requests allowed in the window.
	Remaining int       // Remaining is how many requests are left in the window.
	ResetAt   time.Time // ResetAt is when the window resets.
}

// Query asks for the positions of Bodies at instant At in Frame.
type Query struct {
	At     time.Time
	Frame  Frame
	Bodies []Body
}

// Position is the raw ephemeris output for one body. Angles are in degrees,
// distances in AU, speeds per day. Longitude is not guaranteed to be in [0, 360).
type Position struct {
	Body           Body
	Name           string
	Longitude      float64
	Latitude       float64
	Distance       float64
	LongitudeSpeed float64
	LatitudeSpeed  float64
	DistanceSpeed  float64
}

// Failure reports a body the upstream could not compute.
type Failure struct {
	Body Body
	Err  error
}

// Batch holds the positions computed for a query and the bodies that failed.
// Every queried body appears in exactly one of the two slices.
type Batch struct {
	Positions []Position
	Failures  []Failure
}

// Client computes positions through an external ephemeris.
//
//go:generate mockgen -package mockephemeris -source=interface.go -destination=mock/mockephemeris.go *
type Client interface {
	// Positions computes every body of q in a single upstream call. A non-nil
	// error means nothing was computed; per-body problems are Batch.Failures.
	Positions(ctx context.Context, q Query) (Batch, RateLimitStatus, error)
	// Close releases the ephemeris resources. The client is unusable afterwards.
	Close() error
}
