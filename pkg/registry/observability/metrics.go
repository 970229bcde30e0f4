package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry and lookup metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordReinitialize records an explicit replacement of a registry instance.
	RecordReinitialize(ctx context.Context, variant string)

	// RecordSlotCreated records lazy population of a registry slot.
	RecordSlotCreated(ctx context.Context, variant string)

	// RecordLookup records a person lookup with its outcome and duration.
	RecordLookup(ctx context.Context, finder string, found bool, durationMs float64, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	reinitializations metric.Int64Counter
	slotsCreated      metric.Int64Counter
	lookups           metric.Int64Counter
	lookupErrors      metric.Int64Counter
	lookupLatency     metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("poeaa-registry")

	reinitializations, err := meter.Int64Counter("registry.reinitializations",
		metric.WithDescription("Number of explicit registry reinitializations"),
	)
	if err != nil {
		return nil, err
	}

	slotsCreated, err := meter.Int64Counter("registry.slots.created",
		metric.WithDescription("Number of lazily created registry slots"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("finder.lookups",
		metric.WithDescription("Number of person lookups"),
	)
	if err != nil {
		return nil, err
	}

	lookupErrors, err := meter.Int64Counter("finder.lookup.errors",
		metric.WithDescription("Number of person lookups that failed"),
	)
	if err != nil {
		return nil, err
	}

	lookupLatency, err := meter.Float64Histogram("finder.lookup.latency_ms",
		metric.WithDescription("Person lookup latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		reinitializations: reinitializations,
		slotsCreated:      slotsCreated,
		lookups:           lookups,
		lookupErrors:      lookupErrors,
		lookupLatency:     lookupLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordReinitialize implements MetricsRecorder.
func (m *otelMetrics) RecordReinitialize(ctx context.Context, variant string) {
	m.reinitializations.Add(ctx, 1, metric.WithAttributes(attribute.String("variant", variant)))
}

// RecordSlotCreated implements MetricsRecorder.
func (m *otelMetrics) RecordSlotCreated(ctx context.Context, variant string) {
	m.slotsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("variant", variant)))
}

// RecordLookup implements MetricsRecorder.
func (m *otelMetrics) RecordLookup(ctx context.Context, finder string, found bool, durationMs float64, err error) {
	finderAttr := attribute.String("finder", finder)

	m.lookupLatency.Record(ctx, durationMs, metric.WithAttributes(finderAttr))
	if err != nil {
		m.lookupErrors.Add(ctx, 1, metric.WithAttributes(finderAttr))
		return
	}
	m.lookups.Add(ctx, 1, metric.WithAttributes(finderAttr, attribute.Bool("found", found)))
}
