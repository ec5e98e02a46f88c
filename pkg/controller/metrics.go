package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"skychart/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware counting requests by method and status code
// and recording their latency.
func WithMetrics(meter metric.Meter) (func(http.Handler) http.Handler, error) {
	requests, err := meter.Int64Counter("http_requests_total",
		metric.WithDescription("HTTP requests by method and status code"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	latency, err := meter.Float64Histogram("http_request_duration_seconds",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("code", strconv.Itoa(rec.status)),
			)
			requests.Add(r.Context(), 1, attrs)
			latency.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
