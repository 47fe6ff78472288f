package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	managerWorkersRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "indexer",
		Subsystem: "worker_manager",
		Name:      "workers_running",
		Help:      "Number of worker processes currently supervised.",
	})

	managerSpawnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "worker_manager",
		Name:      "spawns_total",
		Help:      "Count of worker process spawns by reason.",
	}, []string{"reason"})

	managerCrashesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "worker_manager",
		Name:      "crashes_total",
		Help:      "Count of worker processes detected dead or stale.",
	})
)

// Manager tracks metrics for the worker supervisor.
type Manager struct{}

// NewManager creates a Manager metrics collector.
func NewManager() *Manager {
	return &Manager{}
}

// SetRunning records the current supervised worker count.
func (m Manager) SetRunning(n int) {
	managerWorkersRunning.Set(float64(n))
}

// ObserveSpawn records one spawn. reason is "start", "restart" or "scale".
func (m Manager) ObserveSpawn(reason string) {
	managerSpawnsTotal.WithLabelValues(reason).Inc()
}

// ObserveCrash records a worker detected dead or heartbeat-stale.
func (m Manager) ObserveCrash() {
	managerCrashesTotal.Inc()
}
