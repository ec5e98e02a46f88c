package chart

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a chart job submitted to River.
// The struct is used as the unique key for jobs to prevent duplicate work per chart key.
type JobArgs struct {
	// Key is the canonical instant/frame key, see Key. It is marked as unique so
	// River enforces one job per key according to InsertOpts.UniqueOpts.
	Key string `json:"key" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the chart worker.
func (args JobArgs) Kind() string { return "ComputeChartJob" }

// InsertOpts keeps at most one job per key in any live or recently completed state.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// SnapshotJobArgs triggers a chart of the current sky for the system user.
type SnapshotJobArgs struct{}

func (SnapshotJobArgs) Kind() string { return "SkySnapshotJob" }

func (SnapshotJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 1}
}
