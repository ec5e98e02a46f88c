package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"skychart/internal/chart"
	mockchart "skychart/internal/chart/mock"
	"skychart/internal/worker"
	"skychart/pkg/ephemeris"
	"skychart/pkg/serrors"
)

const (
	keyOK       = "2000-01-01T12:00:00Z/geocentric"
	keyConflict = "2000-01-02T12:00:00Z/geocentric"
	keyRL       = "2000-01-03T12:00:00Z/geocentric"
	keyErr      = "2000-01-04T12:00:00Z/geocentric"
	keyA        = "2001-01-01T00:00:00Z/geocentric"
	keyB        = "2001-01-02T00:00:00Z/geocentric"
	keyC        = "2001-01-03T00:00:00Z/geocentric"
	keyD        = "2001-01-04T00:00:00Z/geocentric"
	keyPrime    = "2001-01-05T00:00:00Z/heliocentric"
	keyFail     = "2001-01-06T00:00:00Z/geocentric"
	keyNext     = "2001-01-07T00:00:00Z/geocentric"
)

func makeJob(id int64, key string) *river.Job[chart.JobArgs] {
	return &river.Job[chart.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   chart.JobArgs{Key: key},
	}
}

func TestChartWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	// Return some RL status that should be adopted on first success
	rl := ephemeris.RateLimitStatus{Limit: 100, Remaining: 99, ResetAt: time.Now().Add(time.Minute)}
	svc.EXPECT().Compute(gomock.Any(), keyOK).Return(rl, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, keyOK)))
}

func TestChartWorker_Work_ConflictCancels(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	rl := ephemeris.RateLimitStatus{Limit: 100, Remaining: 100, ResetAt: time.Now().Add(time.Minute)}
	svc.EXPECT().Compute(gomock.Any(), keyConflict).Return(rl, serrors.With(serrors.ErrConflict, "dupe"))

	err := w.Work(context.Background(), makeJob(2, keyConflict))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestChartWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	resetAt := time.Now().Add(1500 * time.Millisecond)
	rl := ephemeris.RateLimitStatus{Limit: 100, Remaining: 0, ResetAt: resetAt}
	svc.EXPECT().Compute(gomock.Any(), keyRL).Return(rl, serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makeJob(3, keyRL))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	// Duration should be around time.Until(resetAt)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestChartWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	rl := ephemeris.RateLimitStatus{Limit: 100, Remaining: 100, ResetAt: time.Now().Add(time.Minute)}
	computeErr := errors.New("boom")
	svc.EXPECT().Compute(gomock.Any(), keyErr).Return(rl, computeErr)

	err := w.Work(context.Background(), makeJob(4, keyErr))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestChartWorker_CooperativeRateLimit_BlocksSecondUntilFirstFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	firstStarted := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondComputeStarted := make(chan struct{})

	// First Compute blocks until we allow it to finish.
	svc.EXPECT().Compute(gomock.Any(), keyA).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(firstStarted)
			<-allowFirstToFinish

			return ephemeris.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	// Second Compute should not be called until the first finishes and requestFinished wakes it.
	svc.EXPECT().Compute(gomock.Any(), keyB).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(secondComputeStarted)

			return ephemeris.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Start first work which should proceed immediately.
	go func() { _ = w.Work(ctx, makeJob(10, keyA)) }()
	// Wait until first Compute has started.
	<-firstStarted

	// Start second work, which should block before Compute due to RL.
	go func() { _ = w.Work(ctx, makeJob(11, keyB)) }()

	// Ensure second Compute does NOT start within 100ms while first is still running.
	select {
	case <-secondComputeStarted:
		t.Fatal("second chart started before first finished; RL not enforced")
	case <-time.After(100 * time.Millisecond):
		// expected: still blocked
	}

	// Now let the first Compute finish; this should wake the waiter and allow second to start.
	close(allowFirstToFinish)

	select {
	case <-secondComputeStarted:
		// success
	case <-time.After(2 * time.Second):
		t.Fatal("second chart did not start after first finished")
	}
}

func TestChartWorker_RL_AllowsUpToRemainingConcurrent_ThenBlocksExtra(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	// Prime the worker with RL Remaining=2 so two in-flight can start immediately.
	rlPrime := ephemeris.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)}
	svc.EXPECT().Compute(gomock.Any(), keyPrime).Return(rlPrime, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(20, keyPrime)))

	bStarted := make(chan struct{})
	cStarted := make(chan struct{})
	dStarted := make(chan struct{})
	finishB := make(chan struct{})
	finishC := make(chan struct{})

	// B and C should both be able to start concurrently under Remaining=2.
	svc.EXPECT().Compute(gomock.Any(), keyB).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(bStarted)
			<-finishB

			// Return Remaining=2 so after B finishes, remaining - inFlight (1) > 0 allowing D to start.
			return ephemeris.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	svc.EXPECT().Compute(gomock.Any(), keyC).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(cStarted)
			<-finishC

			return ephemeris.RateLimitStatus{Limit: 2, Remaining: 0, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	// D should be blocked until either B or C finishes and wakes a waiter.
	svc.EXPECT().Compute(gomock.Any(), keyD).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(dStarted)

			return ephemeris.RateLimitStatus{Limit: 2, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, makeJob(21, keyB)) }()
	go func() { _ = w.Work(ctx, makeJob(22, keyC)) }()

	// Wait until both B and C are in-flight.
	select {
	case <-bStarted:
	case <-time.After(time.Second):
		t.Fatal("b did not start in time")
	}
	select {
	case <-cStarted:
	case <-time.After(time.Second):
		t.Fatal("c did not start in time")
	}

	// Start D, which should block before Compute until one finishes.
	go func() { _ = w.Work(ctx, makeJob(23, keyD)) }()

	select {
	case <-dStarted:
		t.Fatal("d started before any in-flight finished; RL not enforced for Remaining=2")
	case <-time.After(150 * time.Millisecond):
		// expected: still blocked
	}

	// Unblock one (B), which should allow D to start.
	close(finishB)

	select {
	case <-dStarted:
		// success
	case <-time.After(2 * time.Second):
		t.Fatal("d did not start after one request finished")
	}

	// Let C finish to avoid goroutine leaks.
	close(finishC)
}

func TestChartWorker_RL_WaitsForReset_WhenRemainingZero(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	// First call returns Remaining=0 with a short ResetAt in the future.
	resetDelay := 300 * time.Millisecond
	resetAt := time.Now().Add(resetDelay)
	rlZero := ephemeris.RateLimitStatus{Limit: 5, Remaining: 0, ResetAt: resetAt}
	svc.EXPECT().Compute(gomock.Any(), keyA).Return(rlZero, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(30, keyA)))

	started := make(chan struct{})
	start := time.Now()
	svc.EXPECT().Compute(gomock.Any(), keyB).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(started)
			// Return any RL status; here we simulate a reset having happened.
			return ephemeris.RateLimitStatus{Limit: 5, Remaining: 4, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	// Start B; it should not invoke Compute until roughly after resetDelay.
	go func() { _ = w.Work(context.Background(), makeJob(31, keyB)) }()

	select {
	case <-started:
		elapsed := time.Since(start)
		require.GreaterOrEqual(t,
			elapsed,
			resetDelay-75*time.Millisecond,
			"Compute started too early before reset window elapsed")
	case <-time.After(2 * time.Second):
		t.Fatal("b did not start after reset window elapsed")
	}
}

func TestChartWorker_RL_UnblocksOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	firstStarted := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondStarted := make(chan struct{})

	// First returns a generic error after we allow it to finish.
	svc.EXPECT().Compute(gomock.Any(), keyFail).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(firstStarted)
			<-allowFirstToFinish

			return ephemeris.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, errors.New("boom")
		})
	svc.EXPECT().Compute(gomock.Any(), keyNext).
		DoAndReturn(func(ctx context.Context, _ string) (ephemeris.RateLimitStatus, error) {
			close(secondStarted)

			return ephemeris.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, makeJob(40, keyFail)) }()
	<-firstStarted

	go func() { _ = w.Work(ctx, makeJob(41, keyNext)) }()

	select {
	case <-secondStarted:
		t.Fatal("second started before first failed; RL not enforced")
	case <-time.After(100 * time.Millisecond):
		// expected
	}

	close(allowFirstToFinish)

	select {
	case <-secondStarted:
		// ok
	case <-time.After(2 * time.Second):
		t.Fatal("second did not start after first finished with error")
	}
}

func TestChartWorker_RL_ContextCanceledWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	// exhaust the window for a long time
	rl := ephemeris.RateLimitStatus{Limit: 5, Remaining: 0, ResetAt: time.Now().Add(time.Hour)}
	svc.EXPECT().Compute(gomock.Any(), keyA).Return(rl, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(50, keyA)))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Compute must not be called for keyB
	err := w.Work(ctx, makeJob(51, keyB))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChartWorker_RL_MissingHeadersKeepBudget(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := mockchart.NewMockService(ctrl)
	w := worker.NewChartWorker(svc)

	rl := ephemeris.RateLimitStatus{Limit: 3, Remaining: 3, ResetAt: time.Now().Add(time.Minute)}
	svc.EXPECT().Compute(gomock.Any(), keyA).Return(rl, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(60, keyA)))

	// a response without rate-limit headers (e.g. the fixture provider) does not
	// shrink or reset the window
	svc.EXPECT().Compute(gomock.Any(), keyB).Return(ephemeris.RateLimitStatus{}, nil).Times(3)
	for i := range 3 {
		require.NoError(t, w.Work(context.Background(), makeJob(int64(61+i), keyB)))
	}
}
