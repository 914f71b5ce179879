// Package metrics holds the Prometheus collectors shared by the homology
// pipeline. Collectors are registered on the default registry at init via
// promauto; cmd/ripsbar exposes them over /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SNFPivotsTotal counts invariant factors emitted by Smith normal form (NextStep).
	SNFPivotsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persistence_snf_pivots_total",
			Help: "Total number of Smith normal form pivots completed",
		},
	)

	// SNFRetriesTotal counts GoToInitial re-pivots.
	SNFRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persistence_snf_retries_total",
			Help: "Total number of Smith normal form re-pivot passes",
		},
	)

	// SNFHaltsTotal counts reductions that stopped on an all-zero submatrix.
	SNFHaltsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persistence_snf_halts_total",
			Help: "Total number of Smith normal form reductions halted on a zero block",
		},
	)

	// HomologyComputationsTotal counts H_n evaluations by coefficient ring.
	HomologyComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persistence_homology_computations_total",
			Help: "Total number of homology group computations",
		},
		[]string{"ring"},
	)

	// SimplicesAddedTotal counts simplices added to the filtration by dimension.
	SimplicesAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persistence_simplices_added_total",
			Help: "Total number of simplices added to Vietoris-Rips filtrations",
		},
		[]string{"dimension"},
	)

	// FiltrationStepsTotal counts ε increments across all scans.
	FiltrationStepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persistence_filtration_steps_total",
			Help: "Total number of filtration scale steps processed",
		},
	)

	// TopologyChangesTotal counts closed barcode records.
	TopologyChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persistence_topology_changes_total",
			Help: "Total number of homology records emitted",
		},
	)

	// ScanDurationSeconds measures complete Analyze runs.
	ScanDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "persistence_scan_duration_seconds",
			Help:    "Duration of Vietoris-Rips filtration scans",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600},
		},
	)

	// LogMessagesTotal counts log events by level.
	LogMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persistence_log_messages_total",
			Help: "Total number of log messages by level",
		},
		[]string{"level"},
	)

	// StoredRunsTotal counts runs persisted to the SQLite store.
	StoredRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persistence_stored_runs_total",
			Help: "Total number of filtration runs saved to the store",
		},
	)
)
