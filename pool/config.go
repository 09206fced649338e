package pool

import (
	"time"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/tensor/metrics"
)

const (
	// DefaultWorkers is the number of worker goroutines started when WithWorkers is not given.
	DefaultWorkers = 4

	// DefaultPollInterval bounds how long an idle worker sleeps before re-checking for shutdown.
	DefaultPollInterval = 100 * time.Millisecond
)

// config holds Pool configuration.
type config struct {
	// Workers is the fixed number of worker goroutines.
	// Default: DefaultWorkers.
	Workers uint

	// PollInterval is the bounded wait of an idle worker on the queue.
	// Default: DefaultPollInterval.
	PollInterval time.Duration

	// QueueCapacityHint preallocates room for this many queued jobs.
	// The queue stays unbounded regardless.
	// Default: 0.
	QueueCapacityHint uint

	// Metrics receives pool instrumentation.
	// Default: metrics.NoopProvider.
	Metrics metrics.Provider
}

func defaultConfig() config {
	return config{
		Workers:           DefaultWorkers,
		PollInterval:      DefaultPollInterval,
		QueueCapacityHint: 0,
		Metrics:           metrics.NewNoopProvider(),
	}
}

func validateConfig(cfg *config) error {
	switch {
	case cfg.Workers == 0:
		return errorc.With(ErrInvalidConfig, errorc.String("workers", "must be > 0"))
	case cfg.PollInterval <= 0:
		return errorc.With(ErrInvalidConfig, errorc.String("poll_interval", "must be > 0"))
	case cfg.Metrics == nil:
		return errorc.With(ErrInvalidConfig, errorc.String("metrics", "provider must not be nil"))
	}
	return nil
}

// Option configures a Pool. Options report invalid input as errors wrapping ErrInvalidConfig.
type Option func(*config) error

// WithWorkers sets the number of worker goroutines (must be > 0).
func WithWorkers(n uint) Option {
	return func(cfg *config) error {
		if n == 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithWorkers requires n > 0"))
		}
		cfg.Workers = n
		return nil
	}
}

// WithPollInterval sets how long an idle worker waits before re-checking the shutdown flag.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithPollInterval requires d > 0"))
		}
		cfg.PollInterval = d
		return nil
	}
}

// WithQueueCapacityHint preallocates queue storage for n jobs.
func WithQueueCapacityHint(n uint) Option {
	return func(cfg *config) error { cfg.QueueCapacityHint = n; return nil }
}

// WithMetrics routes pool instrumentation to p.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
