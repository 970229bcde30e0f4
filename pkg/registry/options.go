package registry

import (
	"log/slog"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder"
	"github.com/randalmurphal/poeaa-registry/pkg/registry/observability"
)

type options struct {
	newFinder func() finder.Finder
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
}

func defaultOptions() options {
	return options{
		newFinder: defaultFinder,
		logger:    slog.Default(),
		metrics:   observability.NoopMetrics{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// defaultFinder is the finder every fresh instance starts with unless
// WithFinderFactory says otherwise.
func defaultFinder() finder.Finder {
	return finder.AlwaysFinding{FirstName: finder.DefaultFirstName}
}

// Option configures a Global or a ThreadLocal.
type Option func(*options)

// WithFinderFactory sets the constructor for the default finder of every
// new instance. A nil factory is ignored.
func WithFinderFactory(factory func() finder.Finder) Option {
	return func(o *options) {
		if factory != nil {
			o.newFinder = factory
		}
	}
}

// WithLogger sets the logger for lifecycle events.
// Default: slog.Default(). A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics{}.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
