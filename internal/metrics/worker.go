package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workerClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "worker",
		Name:      "claims_total",
		Help:      "Count of claim attempts by outcome.",
	}, []string{"outcome"})

	workerJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "worker",
		Name:      "jobs_total",
		Help:      "Count of processed jobs by outcome.",
	}, []string{"outcome"})

	workerJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "indexer",
		Subsystem: "worker",
		Name:      "job_duration_seconds",
		Help:      "Duration of a single job execution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// Worker tracks metrics for one worker process.
type Worker struct{}

// NewWorker creates a Worker metrics collector.
func NewWorker() *Worker {
	return &Worker{}
}

// ObserveClaim records one claim attempt. claimed is false when the queue had
// no eligible job.
func (m Worker) ObserveClaim(err error, claimed bool, _ time.Time) {
	outcome := "empty"
	switch {
	case err != nil:
		outcome = "error"
	case claimed:
		outcome = "claimed"
	}
	workerClaimsTotal.WithLabelValues(outcome).Inc()
}

// ObserveJob records one job execution outcome and duration. outcome is one
// of success, retryable, permanent.
func (m Worker) ObserveJob(outcome string, started time.Time) {
	workerJobsTotal.WithLabelValues(outcome).Inc()
	workerJobDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
