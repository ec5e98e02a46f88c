package chart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skychart/internal/config"
	"skychart/pkg/domain"
	"skychart/pkg/ephemeris"
	"skychart/pkg/logger"
	"skychart/pkg/serrors"
	"skychart/pkg/storage"
	"skychart/pkg/zodiac"

	"go.uber.org/zap"
)

// Options configure how chart jobs are enqueued and how results are cached.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when computing a chart before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed result makes new
	// requests for the same key reuse that result instead of enqueueing a
	// duplicate job.
	ResultCacheTTL time.Duration
	// SnapshotFrame is the frame used by Snapshot.
	SnapshotFrame ephemeris.Frame
	// DefaultFrame is used for requests naming no frame.
	DefaultFrame ephemeris.Frame
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	frame, err := ephemeris.ParseFrame(cfg.Worker.SnapshotFrame)
	if err != nil {
		frame = ephemeris.Geocentric
	}
	defaultFrame, err := ephemeris.ParseFrame(cfg.Charts.DefaultFrame)
	if err != nil {
		defaultFrame = ephemeris.Geocentric
	}

	return Options{
		MaxAttempts:    cfg.Charts.MaxAttempts,
		ResultCacheTTL: cfg.Charts.ResultCacheTTL,
		SnapshotFrame:  frame,
		DefaultFrame:   defaultFrame,
	}
}

type service struct {
	options   Options
	storage   storage.Storage
	ephemeris ephemeris.Client
}

// Enqueue stores a new chart request and, in the same transaction, enqueues a
// background job for its key. If a job for the key already exists and a
// completed chart for the key is available, the new chart is completed
// immediately with that result.
func (s service) Enqueue(ctx context.Context,
	userID domain.UserID,
	at time.Time,
	frame ephemeris.Frame) (*domain.Chart, error) {
	if at.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "instant is required")
	}
	if frame == "" {
		frame = s.options.DefaultFrame
	}
	if frame == "" {
		frame = ephemeris.Geocentric
	}
	if _, err := ephemeris.ParseFrame(string(frame)); err != nil {
		return nil, err //nolint: wrapcheck
	}

	key := Key(at, frame)
	var chart *domain.Chart
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreCharts(ctx, domain.Chart{
			UserID: userID,
			Key:    key,
			At:     at.UTC().Truncate(time.Second),
			Frame:  string(frame),
			Status: domain.ChartStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store chart: %w", err)
		}
		chart = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			Key:             key,
			maxAttempts:     s.options.MaxAttempts,
			uniqueJobPeriod: s.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// a unique job for the key exists; if it already finished, reuse its result
		if !jobAdded {
			lastResult, err := tx.LastCompletedChartByKey(ctx, key)
			if err != nil {
				return fmt.Errorf("could not get last completed chart: %w", err)
			}

			if lastResult != nil {
				updated, err := tx.UpdateChartByID(ctx, chart.ID, storage.ChartUpdates{
					Status: domain.ChartStatusCompleted,
					Result: &lastResult.Result,
				})
				if err != nil {
					return fmt.Errorf("could not update chart: %w", err)
				}
				chart = updated
			} // else: the queued job completes every pending chart of the key
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue chart: %w", err)
	}

	return chart, nil
}

// UserCharts returns a page of charts for the given user filtered by status.
// The cursor is the RFC 3339 creation time returned with the previous page.
func (s service) UserCharts(ctx context.Context,
	userID domain.UserID,
	status domain.ChartStatus,
	cursor string,
	limit uint) ([]domain.Chart, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserCharts(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user charts: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.UTC().Format(time.RFC3339Nano)
	}

	return page.Charts, next, nil
}

func (s service) Result(ctx context.Context, userID domain.UserID, chartID domain.ChartID) (*domain.Chart, error) {
	res, err := s.storage.ChartByID(ctx, userID, chartID)
	if err != nil {
		return nil, fmt.Errorf("could not get chart: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "chart not found")
	}

	return res, nil
}

// Delete removes a chart belonging to the given user. Its job stays queued
// since other charts may share the key; Compute skips keys with no pending charts.
func (s service) Delete(ctx context.Context, userID domain.UserID, chartID domain.ChartID) error {
	res, err := s.storage.DeleteChart(ctx, userID, chartID)
	if err != nil {
		return fmt.Errorf("could not delete chart: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "chart not found")
	}

	return nil
}

// Compute fetches every body for key in one ephemeris call and completes all
// pending charts of the key. Per-body failures do not fail the chart; they are
// listed in its result. Whole-request failures are recorded on the charts,
// which turn failed once MaxAttempts is reached, except for rate limiting,
// which is retried without counting an attempt.
func (s service) Compute(ctx context.Context, key string) (ephemeris.RateLimitStatus, error) {
	var rl ephemeris.RateLimitStatus

	at, frame, err := ParseKey(key)
	if err != nil {
		return rl, serrors.Wrap(serrors.ErrConflict, err, "cannot compute chart key")
	}

	pending, err := s.storage.PendingChartCountByKey(ctx, key)
	if err != nil {
		return rl, fmt.Errorf("could not count pending charts: %w", err)
	}
	if pending == 0 {
		return rl, serrors.With(serrors.ErrConflict, "no pending charts for key %s", key)
	}

	batch, rl, err := s.ephemeris.Positions(ctx, ephemeris.Query{
		At:     at,
		Frame:  frame,
		Bodies: ephemeris.DefaultBodies(),
	})
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			return rl, fmt.Errorf("could not fetch positions: %w", err)
		}

		msg := err.Error()
		if uErr := s.storage.UpdatePendingChartsByKey(ctx, key, storage.ChartUpdates{
			Status:      domain.ChartStatusFailed,
			LastError:   &msg,
			MaxAttempts: s.options.MaxAttempts,
		}); uErr != nil {
			logger.Error(ctx, "could not record chart failure", zap.Error(uErr))
		}

		return rl, fmt.Errorf("could not fetch positions: %w", err)
	}

	result := Build(batch)
	if len(result.Skipped) > 0 {
		logger.Warn(ctx, "some bodies were skipped",
			zap.Int("placed", len(result.Placements)),
			zap.Int("skipped", len(result.Skipped)))
	}

	noError := ""
	if err := s.storage.UpdatePendingChartsByKey(ctx, key, storage.ChartUpdates{
		Status:    domain.ChartStatusCompleted,
		Result:    &result,
		LastError: &noError,
	}); err != nil {
		return rl, fmt.Errorf("could not complete charts: %w", err)
	}

	return rl, nil
}

func (s service) Snapshot(ctx context.Context, at time.Time) (*domain.Chart, error) {
	return s.Enqueue(ctx, domain.SystemUserID, at, s.options.SnapshotFrame)
}

// Classify classifies a single longitude without touching the ephemeris.
func (s service) Classify(longitude, speed float64) (zodiac.Classification, error) {
	c, err := zodiac.Classify(longitude, speed)
	if err != nil {
		return zodiac.Classification{}, fmt.Errorf("could not classify longitude: %w", err)
	}

	return c, nil
}

// New creates a chart Service backed by storage and the ephemeris client.
func New(storage storage.Storage, client ephemeris.Client, options Options) Service {
	return &service{
		options:   options,
		storage:   storage,
		ephemeris: client,
	}
}
