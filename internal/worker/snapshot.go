package worker

import (
	"context"
	"fmt"
	"time"

	"skychart/internal/chart"
	"skychart/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SnapshotWorker records the current sky for the system user. It runs as a
// periodic job.
type SnapshotWorker struct {
	river.WorkerDefaults[chart.SnapshotJobArgs]

	service chart.Service
	now     func() time.Time
}

// NewSnapshotWorker creates a SnapshotWorker enqueueing charts through service.
func NewSnapshotWorker(service chart.Service) *SnapshotWorker {
	return &SnapshotWorker{service: service, now: time.Now}
}

func (w *SnapshotWorker) Work(ctx context.Context, job *river.Job[chart.SnapshotJobArgs]) error {
	at := w.now().UTC().Truncate(time.Minute)
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Time("at", at))

	c, err := w.service.Snapshot(ctx, at)
	if err != nil {
		logger.Error(ctx, "error enqueueing sky snapshot", zap.Error(err))

		return fmt.Errorf("could not enqueue sky snapshot: %w", err)
	}

	logger.Info(ctx, "sky snapshot enqueued", zap.Stringer("chartID", c.ID), zap.String("status", string(c.Status)))

	return nil
}

// ParseSchedule parses a standard five-field cron expression, or a descriptor
// such as "@hourly", into a River periodic schedule.
func ParseSchedule(expr string) (river.PeriodicSchedule, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("could not parse cron schedule %q: %w", expr, err)
	}

	return schedule, nil
}

func snapshotJob(schedule river.PeriodicSchedule) *river.PeriodicJob {
	return river.NewPeriodicJob(schedule, func() (river.JobArgs, *river.InsertOpts) {
		return chart.SnapshotJobArgs{}, nil
	}, nil)
}
