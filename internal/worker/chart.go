package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skychart/internal/chart"
	"skychart/pkg/logger"
	"skychart/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ChartWorker computes charts, one job per chart key, without exceeding the
// ephemeris rate limit across its concurrent jobs.
//
// A conflict from the service (no pending charts left, or an unusable key)
// cancels the job. Upstream rate limiting snoozes it until the window resets.
// Any other error is returned so River retries it.
type ChartWorker struct {
	river.WorkerDefaults[chart.JobArgs]

	service chart.Service
	budget  *budget
}

// NewChartWorker creates a ChartWorker computing charts through service.
func NewChartWorker(service chart.Service) *ChartWorker {
	return &ChartWorker{
		service: service,
		budget:  newBudget(),
	}
}

func (w *ChartWorker) Work(ctx context.Context, job *river.Job[chart.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("key", job.Args.Key))

	if err := w.budget.reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	rl, err := w.service.Compute(ctx, job.Args.Key)
	w.budget.release(ctx, rl)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			logger.Info(ctx, "chart job no longer needed", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error computing chart", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(max(time.Until(rl.ResetAt), 0)) //nolint: wrapcheck
		}

		return fmt.Errorf("could not compute chart: %w", err)
	}

	logger.Info(ctx, "chart computed successfully")

	return nil
}
