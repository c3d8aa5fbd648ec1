package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PreflightOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csv_preflight_outcomes_total",
			Help: "Number of CSV preflight checks by outcome",
		},
		[]string{"outcome"}, // accepted|insufficient_rows|insufficient_columns|read_failure
	)
	PreflightReadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "csv_preflight_read_seconds",
			Help:    "Time spent reading uploaded file content",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preflight_cache_operations_total",
			Help: "Preflight outcome cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "preflight_cache_size",
			Help: "Number of outcomes currently in cache",
		},
	)
)

var (
	OutcomeEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outcome_events_published_total",
			Help: "Number of outcome events written to Kafka",
		},
		[]string{"topic"},
	)
	OutcomeEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outcome_events_failed_total",
			Help: "Number of outcome events that failed to be written",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			PreflightOutcomes, PreflightReadDuration,
			CacheOps, CacheSize,
			OutcomeEventsPublished, OutcomeEventsFailed,
		)
	})
}
