package ffwd

import "log/slog"

type options struct {
	capacity         int
	parallelBuild    bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a List or an AppendOnlyList.
type Option func(*options)

// WithCapacity preallocates room for n items.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithParallelBuild lets Extend populate every attached store in its own
// goroutine.
//
// Stores are independent, so a batch touching many fields is indexed
// concurrently. Items must not be mutated while Extend runs.
func WithParallelBuild() Option {
	return func(o *options) {
		o.parallelBuild = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ffwd.BasicMetricsCollector{}
//	l := ffwd.NewList[Car](ffwd.WithMetricsCollector(metrics))
//	// ... use l ...
//	stats := metrics.GetStats()
//	fmt.Printf("Pushes: %d, Queries: %d\n", stats.PushCount, stats.QueryCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := ffwd.NewJSONLogger(slog.LevelDebug)
//	l := ffwd.NewList[Car](ffwd.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.capacity < 0 {
		o.capacity = 0
	}
	return o
}
