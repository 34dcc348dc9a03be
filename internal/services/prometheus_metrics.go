package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records transaction list cache activity.
type PrometheusMetrics struct {
	pagesIngested        prometheus.Counter
	recordsIngested      prometheus.Counter
	cacheInvalidations   prometheus.Counter
	missingExchangeRates *prometheus.CounterVec
	transactionMutations *prometheus.CounterVec
}

// NewPrometheusMetrics creates and registers the cache metrics.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		pagesIngested: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_list_pages_ingested_total",
				Help: "Total number of transaction pages ingested into the list cache",
			},
		),
		recordsIngested: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_list_records_ingested_total",
				Help: "Total number of transaction records ingested into the list cache",
			},
		),
		cacheInvalidations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_list_invalidations_total",
				Help: "Total number of times the list cache was marked stale",
			},
		),
		missingExchangeRates: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_list_missing_exchange_rates_total",
				Help: "Total number of amounts excluded from totals for lack of an exchange rate",
			},
			[]string{"currency"},
		),
		transactionMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_mutations_total",
				Help: "Total number of transaction operations driven through the service",
			},
			[]string{"operation", "status"},
		),
	}
}

func (m *PrometheusMetrics) PageIngested(recordCount int) {
	m.pagesIngested.Inc()
	m.recordsIngested.Add(float64(recordCount))
}

func (m *PrometheusMetrics) CacheInvalidated() {
	m.cacheInvalidations.Inc()
}

func (m *PrometheusMetrics) ExchangeRateMissing(currency string) {
	m.missingExchangeRates.WithLabelValues(currency).Inc()
}

func (m *PrometheusMetrics) TransactionMutation(operation, status string) {
	m.transactionMutations.WithLabelValues(operation, status).Inc()
}

// NoopMetrics discards all recordings.
type NoopMetrics struct{}

func (NoopMetrics) PageIngested(int)                   {}
func (NoopMetrics) CacheInvalidated()                  {}
func (NoopMetrics) ExchangeRateMissing(string)         {}
func (NoopMetrics) TransactionMutation(string, string) {}
