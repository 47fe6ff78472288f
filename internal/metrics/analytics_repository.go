package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/quick-xyz/indexer-sub001/internal/model"
)

var (
	analyticsOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexer",
		Subsystem: "analytics_repository",
		Name:      "operations_total",
		Help:      "Count of analytics store operations.",
	}, []string{"operation", "network", "status"})
	analyticsOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "indexer",
		Subsystem: "analytics_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of analytics store operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "network", "status"})
)

// AnalyticsRepository tracks metrics for ClickHouse operations.
type AnalyticsRepository struct{}

// NewAnalyticsRepository creates an AnalyticsRepository metrics collector.
func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

// Observe records duration and status of an analytics store operation.
func (m AnalyticsRepository) Observe(operation string, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if network == "" {
		network = "unknown"
	}
	analyticsOperationsTotal.WithLabelValues(operation, string(network), status).Inc()
	analyticsOperationDuration.WithLabelValues(operation, string(network), status).
		Observe(time.Since(started).Seconds())
}
