package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue tables of the same
// database, so a job can be inserted atomically with the rows it refers to.
//
//	added, err := tx.AddJob(ctx, chart.JobArgs{Key: "2000-01-01T12:00:00Z/geocentric"}, nil)
type JobStorage interface {
	// AddJob enqueues a job. It reports false when a unique job with the same
	// arguments already exists and nothing was inserted.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
