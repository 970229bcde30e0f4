package finder

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/observability"
)

// Instrumented wraps a Finder with logging, metrics, and tracing.
type Instrumented struct {
	next    Finder
	name    string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

var _ Finder = (*Instrumented)(nil)

// Instrument wraps f so every lookup is traced, counted, and logged under
// name. Nil collaborators fall back to no-ops.
func Instrument(f Finder, name string, logger *slog.Logger, metrics observability.MetricsRecorder, spans observability.SpanManager) *Instrumented {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if spans == nil {
		spans = observability.NoopSpanManager{}
	}
	return &Instrumented{next: f, name: name, logger: logger, metrics: metrics, spans: spans}
}

// Unwrap returns the wrapped finder.
func (f *Instrumented) Unwrap() Finder {
	return f.next
}

// FindByLastName implements Finder.
func (f *Instrumented) FindByLastName(ctx context.Context, lastName string) (Result, error) {
	ctx, span := f.spans.StartLookupSpan(ctx, f.name, lastName)
	elapsed := observability.TimedOperation()

	res, err := f.next.FindByLastName(ctx, lastName)

	ms := elapsed()
	f.spans.EndLookupSpan(span, res.Found(), err)
	f.metrics.RecordLookup(ctx, f.name, res.Found(), ms, err)
	if err != nil {
		observability.LogLookupError(f.logger, f.name, lastName, err)
		return res, err
	}
	observability.LogLookup(f.logger, f.name, lastName, res.Found(), ms)
	return res, nil
}
