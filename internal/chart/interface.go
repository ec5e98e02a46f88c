package chart

import (
	"context"
	"time"

	"skychart/pkg/domain"
	"skychart/pkg/ephemeris"
	"skychart/pkg/zodiac"
)

//go:generate mockgen -package mockchart -source=interface.go -destination=mock/mockchart.go *
type Service interface {
	// Enqueue records a chart request for the instant and frame. The result is
	// computed in the background, or reused from an identical completed request.
	Enqueue(ctx context.Context, userID domain.UserID, at time.Time, frame ephemeris.Frame) (*domain.Chart, error)
	UserCharts(ctx context.Context,
		userID domain.UserID,
		status domain.ChartStatus,
		cursor string,
		limit uint) ([]domain.Chart, string, error)
	Result(ctx context.Context, userID domain.UserID, chartID domain.ChartID) (*domain.Chart, error)
	Delete(ctx context.Context, userID domain.UserID, chartID domain.ChartID) error
	// Compute fetches the positions for key and completes every pending chart
	// sharing it. It returns the upstream rate-limit status seen, if any.
	Compute(ctx context.Context, key string) (ephemeris.RateLimitStatus, error)
	// Snapshot enqueues a chart of the sky at the given instant for the system user.
	Snapshot(ctx context.Context, at time.Time) (*domain.Chart, error)
	Classify(longitude, speed float64) (zodiac.Classification, error)
}
