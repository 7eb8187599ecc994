package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "policywatch",
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of ClickHouse repository operations.",
	}, []string{"operation", "status"})

	clickhouseOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "policywatch",
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ClickHouse repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ClickhouseRepository tracks metrics for off-chain store operations.
type ClickhouseRepository struct{}

// NewClickhouseRepository constructs a metrics collector for the store.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records a single repository operation outcome and duration.
func (m ClickhouseRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	clickhouseOperationsTotal.WithLabelValues(operation, status).Inc()
	clickhouseOperationDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
