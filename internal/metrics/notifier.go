package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notifierStepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "policywatch",
		Subsystem: "notifier",
		Name:      "step_total",
		Help:      "Count of downstream notification steps.",
	}, []string{"step", "status"})

	notifierStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "policywatch",
		Subsystem: "notifier",
		Name:      "step_duration_seconds",
		Help:      "Duration of downstream notification steps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"step", "status"})

	notifierConfirmationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "policywatch",
		Subsystem: "notifier",
		Name:      "confirmations_total",
		Help:      "Count of confirmed policy blocks.",
	})

	notifierConfirmationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "policywatch",
		Subsystem: "notifier",
		Name:      "confirmation_duration_seconds",
		Help:      "Duration of the whole confirmation fan-out.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Notifier tracks metrics for the confirmation fan-out.
type Notifier struct{}

// NewNotifier constructs a Notifier metrics collector.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// ObserveStep records one downstream step outcome and duration.
func (m Notifier) ObserveStep(step string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	notifierStepTotal.WithLabelValues(step, status).Inc()
	notifierStepDuration.WithLabelValues(step, status).
		Observe(time.Since(started).Seconds())
}

// ObserveConfirmation records a completed confirmation fan-out.
func (m Notifier) ObserveConfirmation(started time.Time) {
	notifierConfirmationsTotal.Inc()
	notifierConfirmationDuration.Observe(time.Since(started).Seconds())
}
