package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Uses the global OTel tracer provider.
var tracer = otel.Tracer("poeaa-registry")

// SpanManager handles lookup span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartLookupSpan starts a span for one person lookup.
	StartLookupSpan(ctx context.Context, finder, lastName string) (context.Context, trace.Span)

	// EndLookupSpan records the outcome on the span and ends it.
	EndLookupSpan(span trace.Span, found bool, err error)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// Configure the global tracer provider before use:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return otelSpanManager{}
}

func (otelSpanManager) StartLookupSpan(ctx context.Context, finder, lastName string) (context.Context, trace.Span) {
	return StartLookupSpan(ctx, finder, lastName)
}

func (otelSpanManager) EndLookupSpan(span trace.Span, found bool, err error) {
	EndLookupSpan(span, found, err)
}

// StartLookupSpan starts a span for one person lookup using the global tracer.
func StartLookupSpan(ctx context.Context, finder, lastName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "finder.lookup",
		trace.WithAttributes(
			attribute.String("finder.name", finder),
			attribute.String("person.last_name", lastName),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndLookupSpan sets the lookup outcome on span and ends it.
// A nil span is ignored.
func EndLookupSpan(span trace.Span, found bool, err error) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Bool("lookup.found", found))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
