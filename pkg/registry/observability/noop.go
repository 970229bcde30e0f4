package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

var _ MetricsRecorder = NoopMetrics{}

// RecordReinitialize does nothing.
func (NoopMetrics) RecordReinitialize(_ context.Context, _ string) {}

// RecordSlotCreated does nothing.
func (NoopMetrics) RecordSlotCreated(_ context.Context, _ string) {}

// RecordLookup does nothing.
func (NoopMetrics) RecordLookup(_ context.Context, _ string, _ bool, _ float64, _ error) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartLookupSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartLookupSpan(ctx context.Context, _, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndLookupSpan does nothing.
func (NoopSpanManager) EndLookupSpan(_ trace.Span, _ bool, _ error) {}
