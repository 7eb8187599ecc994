package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "policywatch",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "status"})

	rpcOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "policywatch",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// RPCClient tracks metrics for RPC calls to the chain node.
type RPCClient struct{}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient() *RPCClient {
	return &RPCClient{}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	rpcOperationsTotal.WithLabelValues(operation, status).Inc()
	rpcOperationDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
