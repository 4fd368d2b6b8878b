// Package metrics exposes Prometheus collectors for the ingestion service.
// The worker serves them over /metrics; one-shot runs flush them to a
// Pushgateway when one is configured.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Run outcome labels
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusError   = "error"
)

var (
	// Stats API call metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_ingest_api_requests_total",
			Help: "Total number of stats API requests",
		},
		[]string{"endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nba_ingest_api_request_duration_seconds",
			Help:    "Duration of stats API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Pipeline metrics
	FetchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_ingest_fetch_failures_total",
			Help: "Total number of skipped work items after a fetch or reshape failure",
		},
		[]string{"pipeline"},
	)

	RowsReplaced = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nba_ingest_rows_replaced",
			Help: "Rows written by the last replace of each destination table",
		},
		[]string{"pipeline"},
	)

	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nba_ingest_runs_total",
			Help: "Total number of pipeline runs by outcome",
		},
		[]string{"pipeline", "status"},
	)

	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nba_ingest_run_duration_seconds",
			Help:    "Duration of pipeline runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"pipeline"},
	)

	LastSuccessfulRun = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nba_ingest_last_successful_run_timestamp",
			Help: "Timestamp of the last successful run of each pipeline",
		},
		[]string{"pipeline"},
	)

	// Box score response cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nba_ingest_cache_hits_total",
			Help: "Total number of box score cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nba_ingest_cache_misses_total",
			Help: "Total number of box score cache misses",
		},
	)
)

// RecordAPIRequest records one stats API request
func RecordAPIRequest(endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordFetchFailure records a skipped work item
func RecordFetchFailure(pipeline string) {
	FetchFailuresTotal.WithLabelValues(pipeline).Inc()
}

// RecordRowsReplaced records the row count of a completed replace
func RecordRowsReplaced(pipeline string, rows int64) {
	RowsReplaced.WithLabelValues(pipeline).Set(float64(rows))
}

// RecordRun records a pipeline run outcome and its duration
func RecordRun(pipeline, status string, duration time.Duration) {
	RunsTotal.WithLabelValues(pipeline, status).Inc()
	RunDuration.WithLabelValues(pipeline).Observe(duration.Seconds())

	if status == StatusSuccess {
		LastSuccessfulRun.WithLabelValues(pipeline).SetToCurrentTime()
	}
}

// RecordCacheHit records a cache hit
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// Push flushes the default registry to a Pushgateway. One-shot runs call it
// before exiting so their metrics survive the process.
func Push(url, job string) error {
	if err := push.New(url, job).Gatherer(prometheus.DefaultGatherer).Push(); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}
