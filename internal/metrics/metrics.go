package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the service
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StakesInCustody prometheus.Gauge
	QuestionsTotal  prometheus.Gauge
}

// New creates a new metrics instance
func New(serviceName string) *Metrics {
	return &Metrics{
		RequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "qaledger",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of requests",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "qaledger",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		StakesInCustody: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "qaledger",
				Subsystem: serviceName,
				Name:      "stakes_in_custody",
				Help:      "Sum of all stakes currently held by the ledger",
			},
		),
		QuestionsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "qaledger",
				Subsystem: serviceName,
				Name:      "questions_total",
				Help:      "Number of questions ever created",
			},
		),
	}
}

// ObserveRequest records one completed request for an operation.
func (m *Metrics) ObserveRequest(operation, status string, duration time.Duration) {
	m.RequestCounter.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordLedgerTotals updates the custody gauges after a mutating call.
func (m *Metrics) RecordLedgerTotals(totalStaked int64, questions int) {
	m.StakesInCustody.Set(float64(totalStaked))
	m.QuestionsTotal.Set(float64(questions))
}
