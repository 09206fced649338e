package pool

import "github.com/ygrebnov/tensor/metrics"

// Instrument names registered by every Pool.
const (
	MetricJobsSubmitted = "pool_jobs_submitted_total"
	MetricJobsCompleted = "pool_jobs_completed_total"
	MetricJobsPanicked  = "pool_jobs_panicked_total"
	MetricJobsRejected  = "pool_jobs_rejected_total"
	MetricQueueDepth    = "pool_queue_depth"
	MetricWorkersBusy   = "pool_workers_busy"
	MetricJobDuration   = "pool_job_duration_seconds"
)

type instruments struct {
	submitted  metrics.Counter
	completed  metrics.Counter
	panicked   metrics.Counter
	rejected   metrics.Counter
	queueDepth metrics.UpDownCounter
	busy       metrics.UpDownCounter
	duration   metrics.Histogram
}

func newInstruments(p metrics.Provider) *instruments {
	one := metrics.WithUnit("1")
	return &instruments{
		submitted:  p.Counter(MetricJobsSubmitted, one, metrics.WithDescription("jobs accepted by Submit")),
		completed:  p.Counter(MetricJobsCompleted, one, metrics.WithDescription("jobs executed by a worker")),
		panicked:   p.Counter(MetricJobsPanicked, one, metrics.WithDescription("jobs whose task panicked")),
		rejected:   p.Counter(MetricJobsRejected, one, metrics.WithDescription("jobs refused or abandoned on shutdown")),
		queueDepth: p.UpDownCounter(MetricQueueDepth, one),
		busy:       p.UpDownCounter(MetricWorkersBusy, one),
		duration:   p.Histogram(MetricJobDuration, metrics.WithUnit("seconds")),
	}
}
