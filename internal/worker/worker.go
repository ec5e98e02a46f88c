package worker

import (
	"context"
	"fmt"
	"log/slog"

	"skychart/internal/chart"
	"skychart/internal/config"
	"skychart/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client running the workers.
type Options struct {
	// MaxWorkers bounds the jobs processed concurrently on the default queue.
	MaxWorkers int
	// SnapshotSchedule is the cron expression of the sky snapshot. Empty disables it.
	SnapshotSchedule string
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:       cfg.Worker.MaxWorkers,
		SnapshotSchedule: cfg.Worker.SnapshotSchedule,
	}
}

// Start registers the chart and snapshot workers and starts processing jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, service chart.Service, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewChartWorker(service))
	river.AddWorker(workers, NewSnapshotWorker(service))

	var periodic []*river.PeriodicJob
	if options.SnapshotSchedule != "" {
		schedule, err := ParseSchedule(options.SnapshotSchedule)
		if err != nil {
			return nil, err
		}
		periodic = append(periodic, snapshotJob(schedule))
		logger.Info(ctx, "sky snapshot scheduled", zap.String("schedule", options.SnapshotSchedule))
	}

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
