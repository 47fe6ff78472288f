package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orchestratorDiscoveryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "orchestrator",
		Name:      "discovery_total",
		Help:      "Count of discovery iterations.",
	}, []string{"status"})

	orchestratorDiscoveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "indexer",
		Subsystem: "orchestrator",
		Name:      "discovery_duration_seconds",
		Help:      "Duration of discovery iterations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	orchestratorEnqueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "orchestrator",
		Name:      "enqueued_total",
		Help:      "Count of jobs enqueued by discovery.",
	})

	orchestratorReclaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "orchestrator",
		Name:      "reclaimed_total",
		Help:      "Count of stale jobs reclaimed to pending.",
	})

	orchestratorCleanedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "orchestrator",
		Name:      "cleaned_total",
		Help:      "Count of terminal jobs removed by cleanup.",
	})
)

// Orchestrator tracks metrics for the discovery and maintenance loops.
type Orchestrator struct{}

// NewOrchestrator creates an Orchestrator metrics collector.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// ObserveDiscovery records one discovery iteration and how many jobs it enqueued.
func (m Orchestrator) ObserveDiscovery(err error, enqueued int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	orchestratorDiscoveryTotal.WithLabelValues(status).Inc()
	orchestratorDiscoveryDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if enqueued > 0 {
		orchestratorEnqueuedTotal.Add(float64(enqueued))
	}
}

// ObserveReclaim records the outcome of a stale-job sweep.
func (m Orchestrator) ObserveReclaim(err error, reclaimed int64, _ time.Time) {
	if err == nil && reclaimed > 0 {
		orchestratorReclaimedTotal.Add(float64(reclaimed))
	}
}

// ObserveCleanup records the outcome of a retention sweep.
func (m Orchestrator) ObserveCleanup(err error, removed int64, _ time.Time) {
	if err == nil && removed > 0 {
		orchestratorCleanedTotal.Add(float64(removed))
	}
}
