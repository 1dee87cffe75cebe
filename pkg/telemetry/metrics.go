// Package telemetry provides Prometheus metrics for the ingestion and
// analytics pipeline.
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	ResultsAccepted   prometheus.Counter
	ResultsDuplicate  prometheus.Counter
	ResultsFuture     prometheus.Counter
	HandlesUnresolved prometheus.Counter
	MessagesScanned   prometheus.Counter

	// Histograms (seconds)
	CatchupDuration prometheus.Observer

	// Gauges
	RosterSize prometheus.Gauge
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		ResultsAccepted = promauto.NewCounter(prometheus.CounterOpts{
			Name: "dailygrid_results_accepted_total",
			Help: "Number of results stored in player timelines",
		})
		ResultsDuplicate = promauto.NewCounter(prometheus.CounterOpts{
			Name: "dailygrid_results_duplicate_total",
			Help: "Number of re-ingested results dropped as duplicates",
		})
		ResultsFuture = promauto.NewCounter(prometheus.CounterOpts{
			Name: "dailygrid_results_future_total",
			Help: "Number of results rejected for a puzzle number past today",
		})
		HandlesUnresolved = promauto.NewCounter(prometheus.CounterOpts{
			Name: "dailygrid_handles_unresolved_total",
			Help: "Number of handle tokens dropped as unknown or ambiguous",
		})
		MessagesScanned = promauto.NewCounter(prometheus.CounterOpts{
			Name: "dailygrid_messages_scanned_total",
			Help: "Number of chat messages scanned for result lines",
		})
		CatchupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dailygrid_catchup_duration_seconds",
			Help:    "History catch-up scan duration in seconds",
			Buckets: prometheus.DefBuckets,
		})
		RosterSize = promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dailygrid_roster_size",
			Help: "Number of players with at least one recorded result",
		})
	})
}

// SetRosterSize records the current player count.
func SetRosterSize(n int) {
	if RosterSize != nil {
		RosterSize.Set(float64(n))
	}
}

// ObserveCatchup records the duration of one catch-up scan.
func ObserveCatchup(d time.Duration) {
	if CatchupDuration != nil {
		CatchupDuration.Observe(d.Seconds())
	}
}

// inc is a nil-safe counter increment; metrics may be uninitialized in tests.
func inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

// CountAccepted increments the accepted-results counter.
func CountAccepted() { inc(ResultsAccepted) }

// CountDuplicate increments the duplicate-results counter.
func CountDuplicate() { inc(ResultsDuplicate) }

// CountFuture increments the future-result rejection counter.
func CountFuture() { inc(ResultsFuture) }

// CountUnresolved increments the unresolved-handle counter.
func CountUnresolved() { inc(HandlesUnresolved) }

// CountMessage increments the scanned-message counter.
func CountMessage() { inc(MessagesScanned) }
