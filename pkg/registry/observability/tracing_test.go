package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs a tracer provider with an in-memory exporter.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("poeaa-registry")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}
	return exporter, cleanup
}

func spanAttr(s tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, attr := range s.Attributes {
		if string(attr.Key) == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestStartLookupSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	ctx, span := StartLookupSpan(context.Background(), "always", "Doe")
	require.NotNil(t, span)
	assert.NotEqual(t, context.Background(), ctx)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "finder.lookup", spans[0].Name)

	v, ok := spanAttr(spans[0], "finder.name")
	require.True(t, ok)
	assert.Equal(t, "always", v.AsString())

	v, ok = spanAttr(spans[0], "person.last_name")
	require.True(t, ok)
	assert.Equal(t, "Doe", v.AsString())
}

func TestEndLookupSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("sets OK status and found attribute", func(t *testing.T) {
		_, span := StartLookupSpan(context.Background(), "always", "Doe")
		EndLookupSpan(span, true, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Ok, spans[0].Status.Code)

		v, ok := spanAttr(spans[0], "lookup.found")
		require.True(t, ok)
		assert.True(t, v.AsBool())
	})

	t.Run("records error", func(t *testing.T) {
		exporter.Reset()

		_, span := StartLookupSpan(context.Background(), "directory", "Doe")
		EndLookupSpan(span, false, errors.New("store closed"))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		assert.Equal(t, "store closed", spans[0].Status.Description)

		found := false
		for _, event := range spans[0].Events {
			if event.Name == "exception" {
				found = true
			}
		}
		assert.True(t, found, "Expected exception event")
	})

	t.Run("nil span does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			EndLookupSpan(nil, false, errors.New("x"))
		})
	})
}

func TestSpanManager(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	_, span := sm.StartLookupSpan(context.Background(), "never", "Roe")
	sm.EndLookupSpan(span, false, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	v, ok := spanAttr(spans[0], "lookup.found")
	require.True(t, ok)
	assert.False(t, v.AsBool())
}
