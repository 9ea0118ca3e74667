package controller

import (
	"net/http"
	"time"

	"breachwatch/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware that records request count and duration
// per method, path and status code on the given meter provider.
func WithMetrics(provider otelmetric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := provider.Meter("breachwatch/http")

	requests, err := meter.Int64Counter("http_server_requests_total",
		otelmetric.WithDescription("Total number of handled HTTP requests"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	duration, err := meter.Float64Histogram("http_server_request_duration_seconds",
		otelmetric.WithDescription("HTTP request handling duration in seconds"),
		otelmetric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := otelmetric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("path", r.URL.Path),
			attribute.Int("status", rec.status),
		)
		requests.Add(r.Context(), 1, attrs)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
