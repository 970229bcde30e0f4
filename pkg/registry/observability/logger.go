// Package observability provides logging, metrics, and tracing for the
// registries and the person finders they hold.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Registry variants, used as the "variant" log field and metric attribute.
const (
	VariantGlobal      = "global"
	VariantThreadLocal = "thread_local"
)

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// NewLogger builds a logger writing to w. Format is "text" or "json";
// an empty format means text.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// EnrichLogger adds the registry variant and worker tag to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, VariantThreadLocal, "7")
//	enriched.Info("doing work") // includes variant, worker
func EnrichLogger(logger *slog.Logger, variant, worker string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("variant", variant),
		slog.String("worker", worker),
	)
}

// LogReinitialize logs the replacement of a registry instance.
// previousID is empty when the slot held nothing before.
func LogReinitialize(logger *slog.Logger, variant, previousID, currentID string) {
	if logger == nil {
		return
	}
	logger.Info("registry reinitialized",
		slog.String("variant", variant),
		slog.String("previous_id", previousID),
		slog.String("current_id", currentID),
	)
}

// LogSlotCreated logs lazy population of a worker slot.
func LogSlotCreated(logger *slog.Logger, tag, instanceID string) {
	if logger == nil {
		return
	}
	logger.Debug("registry slot created",
		slog.String("variant", VariantThreadLocal),
		slog.String("tag", tag),
		slog.String("instance_id", instanceID),
	)
}

// LogSlotReleased logs removal of a worker slot.
func LogSlotReleased(logger *slog.Logger, tag string) {
	if logger == nil {
		return
	}
	logger.Debug("registry slot released",
		slog.String("variant", VariantThreadLocal),
		slog.String("tag", tag),
	)
}

// LogLookup logs a completed person lookup.
func LogLookup(logger *slog.Logger, finder, lastName string, found bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("person lookup",
		slog.String("finder", finder),
		slog.String("last_name", lastName),
		slog.Bool("found", found),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogLookupError logs a lookup that failed in the backing store.
func LogLookupError(logger *slog.Logger, finder, lastName string, err error) {
	if logger == nil {
		return
	}
	logger.Error("person lookup failed",
		slog.String("finder", finder),
		slog.String("last_name", lastName),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
