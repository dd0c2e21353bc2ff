package labgrid

import "slices"

type options struct {
	axisNames        []string
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures array construction behavior.
//
// Options exist to avoid exploding the constructor surface; everything
// has a working default (generated axis names, noop logger, noop
// metrics).
type Option func(*options)

// WithAxisNames assigns a name to each axis, in axis order. The names
// must be unique and match the rank of the data. Without this option
// axes are named axis_0, axis_1, and so on.
func WithAxisNames(names ...string) Option {
	return func(o *options) {
		o.axisNames = slices.Clone(names)
	}
}

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, a noop logger is used.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures the metrics collector notified after
// each operation.
//
// If nil is passed, a noop collector is used.
//
// Example with BasicMetricsCollector:
//
//	metrics := &labgrid.BasicMetricsCollector{}
//	arr, _ := labgrid.New(g, labels, labgrid.WithMetricsCollector(metrics))
//	// ... use arr ...
//	stats := metrics.GetStats()
//	fmt.Printf("Selects: %d, Avg latency: %dns\n", stats.SelectCount, stats.SelectAvgNanos)
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

func applyOptions(optFns []Option) *options {
	opts := &options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(opts)
	}

	return opts
}
