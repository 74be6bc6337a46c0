package clusterkit

import (
	"log/slog"
	"math/rand"
	"time"
)

// DefaultMaxIterations caps a single Lloyd run.
const DefaultMaxIterations = 100

// DefaultMaxRepairAttempts bounds the empty-cluster repair loop of one
// assignment pass. Exhaustion surfaces ErrRepairExhausted instead of
// looping forever on degenerate inputs.
const DefaultMaxRepairAttempts = 32

type options struct {
	rng               *rand.Rand
	logger            *Logger
	metrics           MetricsCollector
	maxIterations     int
	maxRepairAttempts int
	parallelism       int
}

// Option configures a Clusterer.
type Option func(*options)

// WithRand injects the random source used for initialization, repair
// reseeding and swap perturbation. The source belongs to the Clusterer
// afterwards and must not be shared. If nil is passed, a wall-clock
// seeded source is used.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) //nolint:gosec
	}
}

// WithLogger configures structured logging for search runs.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithMaxIterations caps every Lloyd run. Values below 1 keep the default.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxIterations = n
		}
	}
}

// WithMaxRepairAttempts bounds the empty-cluster repair loop per
// assignment pass. Values below 1 keep the default.
func WithMaxRepairAttempts(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxRepairAttempts = n
		}
	}
}

// WithParallelism sets the number of goroutines used for point
// assignment and for concurrent restart trials. 1 (the default) keeps
// everything on the calling goroutine. Results do not depend on the
// setting, only throughput does.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.parallelism = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:            NoopLogger(),
		metrics:           NoopMetricsCollector{},
		maxIterations:     DefaultMaxIterations,
		maxRepairAttempts: DefaultMaxRepairAttempts,
		parallelism:       1,
	}

	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	}

	return o
}
