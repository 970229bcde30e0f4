package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/config"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder/directory"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/observability"
)

// Runtime is a Global and a ThreadLocal wired from the same Settings.
type Runtime struct {
	Global      *Global
	ThreadLocal *ThreadLocal
	Logger      *slog.Logger

	store directory.Store
}

// Setup builds a Runtime from s, logging to w. When the finder kind is
// "directory" it opens the store and seeds it with s.Directory.People;
// Close releases the store.
//
// Every finder the registries hand out is instrumented. Metrics and tracing
// go to the global OTel providers when enabled in s, and are no-ops otherwise.
func Setup(ctx context.Context, s config.Settings, w io.Writer) (*Runtime, error) {
	logger, err := observability.NewLogger(w, s.Log.Level, s.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}

	var metrics observability.MetricsRecorder = observability.NoopMetrics{}
	if s.Observability.Metrics {
		metrics = observability.NewMetricsRecorder()
	}
	var spans observability.SpanManager = observability.NoopSpanManager{}
	if s.Observability.Tracing {
		spans = observability.NewSpanManager()
	}

	kind := finder.Kind(s.Finder.Kind)
	opts := []finder.Option{finder.WithFirstName(s.Finder.FirstName)}

	rt := &Runtime{Logger: logger}
	if kind == finder.KindDirectory {
		store, err := directory.Open(s.Directory.Driver, s.Directory.Path)
		if err != nil {
			return nil, fmt.Errorf("open directory: %w", err)
		}
		for _, p := range s.Directory.People {
			if err := store.Put(ctx, directory.Entry{FirstName: p.FirstName, LastName: p.LastName}); err != nil {
				store.Close()
				return nil, fmt.Errorf("seed directory: %w", err)
			}
		}
		rt.store = store
		opts = append(opts, finder.WithStore(store))
	}

	base, err := finder.Factory(kind, opts...)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("configure finder: %w", err)
	}
	newFinder := func() finder.Finder {
		return finder.Instrument(base(), string(kind), logger, metrics, spans)
	}

	regOpts := []Option{
		WithFinderFactory(newFinder),
		WithLogger(logger),
		WithMetrics(metrics),
	}
	rt.Global = NewGlobal(regOpts...)
	rt.ThreadLocal = NewThreadLocal(regOpts...)

	logger.Info("registries ready",
		slog.String("finder", string(kind)),
		slog.Bool("metrics", s.Observability.Metrics),
		slog.Bool("tracing", s.Observability.Tracing),
	)
	return rt, nil
}

// Close drops every worker-scoped instance and releases the directory
// store, if any.
func (rt *Runtime) Close() error {
	if rt.ThreadLocal != nil {
		if n := rt.ThreadLocal.ReleaseAll(); n > 0 {
			rt.Logger.Debug("released worker slots", slog.Int("count", n))
		}
	}
	if rt.store == nil {
		return nil
	}
	return rt.store.Close()
}
