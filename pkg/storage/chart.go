package storage

import (
	"context"
	"time"

	"skychart/pkg/domain"
)

// ChartUpdates describes the fields to change on existing charts. Zero-valued
// fields are left untouched.
type ChartUpdates struct {
	// Status is the new status. Empty keeps the current one.
	Status domain.ChartStatus
	// Result replaces the stored result when non-nil.
	Result *domain.ChartResult
	// LastError sets the last error text when non-nil; an empty string clears it.
	LastError *string
	// MaxAttempts guards a transition to Failed: the status only changes once
	// the incremented attempts reach this value. A value <= 0 disables the guard.
	MaxAttempts int
}

// UserCharts is one page of a user's charts.
type UserCharts struct {
	Charts []domain.Chart
	// NextCursor is the creation time to continue from, nil on the last page.
	NextCursor *time.Time
}

// ChartStorage persists charts. Deleted charts are soft-deleted and invisible to
// every read.
type ChartStorage interface {
	// StoreCharts inserts charts and returns them with generated fields filled.
	StoreCharts(ctx context.Context, charts ...domain.Chart) ([]domain.Chart, error)
	// UpdatePendingChartsByKey applies updates to every pending chart with the
	// given key, across users, incrementing attempts.
	UpdatePendingChartsByKey(ctx context.Context, key string, updates ChartUpdates) error
	// PendingChartCountByKey counts pending charts with the given key across users.
	PendingChartCountByKey(ctx context.Context, key string) (int64, error)
	// UpdateChartByID applies updates to one chart and returns it, or nil when
	// it does not exist.
	UpdateChartByID(ctx context.Context, id domain.ChartID, updates ChartUpdates) (*domain.Chart, error)
	// DeleteChart soft-deletes a user's chart and returns it, or nil when not found.
	DeleteChart(ctx context.Context, userID domain.UserID, id domain.ChartID) (*domain.Chart, error)
	// UserCharts returns a page of a user's charts created before cursor (zero
	// for the first page), newest first, optionally filtered by status.
	UserCharts(ctx context.Context,
		userID domain.UserID,
		status domain.ChartStatus,
		cursor time.Time,
		limit uint) (UserCharts, error)
	// ChartByID returns a user's chart, or nil when not found.
	ChartByID(ctx context.Context, userID domain.UserID, id domain.ChartID) (*domain.Chart, error)
	// LastCompletedChartByKey returns the newest completed chart with the given
	// key across users, or nil.
	LastCompletedChartByKey(ctx context.Context, key string) (*domain.Chart, error)
}
