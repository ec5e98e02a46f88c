package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skychart/pkg/metrics"
	"skychart/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrumented decorates a Client with request, failure and latency metrics.
type Instrumented struct {
	Client

	requests metric.Int64Counter
	failures metric.Int64Counter
	latency  metric.Float64Histogram
}

// Instrument wraps client with metrics recorded through meter.
func Instrument(client Client, meter metric.Meter) (*Instrumented, error) {
	requests, err := meter.Int64Counter("ephemeris_requests_total",
		metric.WithDescription("Ephemeris position requests by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	failures, err := meter.Int64Counter("ephemeris_body_failures_total",
		metric.WithDescription("Bodies the ephemeris could not compute"))
	if err != nil {
		return nil, fmt.Errorf("could not create failures counter: %w", err)
	}
	latency, err := meter.Float64Histogram("ephemeris_request_duration_seconds",
		metric.WithDescription("Ephemeris request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return &Instrumented{Client: client, requests: requests, failures: failures, latency: latency}, nil
}

// Positions records the outcome of the wrapped call.
func (i *Instrumented) Positions(ctx context.Context, q Query) (Batch, RateLimitStatus, error) {
	start := time.Now()
	batch, rl, err := i.Client.Positions(ctx, q)

	frame := attribute.String("frame", string(q.Frame))
	i.latency.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(frame))
	i.requests.Add(ctx, 1, metric.WithAttributes(frame, attribute.String("outcome", outcome(err))))
	if len(batch.Failures) > 0 {
		i.failures.Add(ctx, int64(len(batch.Failures)), metric.WithAttributes(frame))
	}

	return batch, rl, err
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}

	return "ERROR"
}
