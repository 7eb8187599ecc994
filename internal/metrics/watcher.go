// Package metrics provides prometheus collectors for the watcher services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	watcherHeightFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "policywatch",
		Subsystem: "watcher",
		Name:      "height_fetch_total",
		Help:      "Count of attempts to fetch the chain tip.",
	}, []string{"status"})

	watcherHeightFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "policywatch",
		Subsystem: "watcher",
		Name:      "height_fetch_duration_seconds",
		Help:      "Duration of chain tip fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	watcherScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "policywatch",
		Subsystem: "watcher",
		Name:      "scan_duration_seconds",
		Help:      "Duration of walking one pending block range.",
		Buckets:   prometheus.DefBuckets,
	})

	watcherScanSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "policywatch",
		Subsystem: "watcher",
		Name:      "scan_size_blocks",
		Help:      "Number of blocks walked per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	watcherPolicyBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "policywatch",
		Subsystem: "watcher",
		Name:      "policy_blocks_total",
		Help:      "Count of blocks classified as policy blocks.",
	})

	watcherChainHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "policywatch",
		Subsystem: "watcher",
		Name:      "chain_height",
		Help:      "Latest chain height reported by the node.",
	})

	watcherLastProcessedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "policywatch",
		Subsystem: "watcher",
		Name:      "last_processed_block",
		Help:      "Last block number fully processed by the watcher.",
	})
)

// Watcher tracks metrics for the poll loop.
type Watcher struct{}

// NewWatcher constructs a Watcher metrics collector.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// ObserveHeightFetch records a chain tip fetch outcome and duration.
func (m Watcher) ObserveHeightFetch(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	watcherHeightFetchTotal.WithLabelValues(status).Inc()
	watcherHeightFetchDuration.WithLabelValues(status).
		Observe(time.Since(started).Seconds())
}

// ObserveScan records the walking of one pending range.
func (m Watcher) ObserveScan(blocks, policyBlocks int, started time.Time) {
	watcherScanDuration.Observe(time.Since(started).Seconds())
	watcherScanSize.Observe(float64(blocks))
	watcherPolicyBlocksTotal.Add(float64(policyBlocks))
}

// SetChainHeight reports the latest chain height.
func (m Watcher) SetChainHeight(height uint64) {
	watcherChainHeight.Set(float64(height))
}

// SetLastProcessedBlock reports cursor progress.
func (m Watcher) SetLastProcessedBlock(height uint64) {
	watcherLastProcessedBlock.Set(float64(height))
}
