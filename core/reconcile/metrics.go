package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venue_reconcile_runs_total",
			Help: "Reconciliation runs by outcome status",
		},
		[]string{"status"},
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "venue_reconcile_duration_seconds",
			Help:    "Wall time of one reconciliation run",
			Buckets: prometheus.DefBuckets,
		},
	)

	filesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "venue_reconcile_files_scanned_total",
			Help: "Files discovered on room shares",
		},
	)

	filesMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "venue_reconcile_files_matched_total",
			Help: "Scanned files paired with an expected upload",
		},
	)
)
