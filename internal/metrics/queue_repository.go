// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queueRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "queue_repository",
		Name:      "operations_total",
		Help:      "Count of job queue repository operations.",
	}, []string{"operation", "status"})
	queueRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "indexer",
		Subsystem: "queue_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of job queue repository operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "status"})
)

// QueueRepository tracks metrics for job queue store operations.
type QueueRepository struct{}

// NewQueueRepository creates a QueueRepository metrics collector.
func NewQueueRepository() *QueueRepository {
	return &QueueRepository{}
}

// Observe records duration and status of a repository operation.
func (m QueueRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	queueRepositoryOperationsTotal.WithLabelValues(operation, status).Inc()
	queueRepositoryOperationDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
