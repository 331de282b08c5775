package vecstore

// Options contains configuration options shared by VectorStore and Keyspace.
type Options struct {
	// Logger receives structured operation and lifecycle events.
	// Defaults to a logger that discards all output.
	Logger *Logger

	// Metrics collects operation metrics.
	// Defaults to NoopMetricsCollector.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration options.
var DefaultOptions = Options{
	Logger:  nil,
	Metrics: NoopMetricsCollector{},
}

// WithLogger configures the logger used for operation and lifecycle events.
func WithLogger(logger *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetrics configures the metrics collector.
func WithMetrics(metrics MetricsCollector) func(o *Options) {
	return func(o *Options) {
		o.Metrics = metrics
	}
}

// applyOptions resolves option functions against the defaults and fills
// in noop fallbacks so callers never nil-check.
func applyOptions(optFns ...func(o *Options)) Options {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return opts
}
