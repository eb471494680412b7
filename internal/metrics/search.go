package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search engine Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "searches_total",
			Help:      "Total number of search calls",
		},
		[]string{"outcome"}, // ok, empty_query, no_results
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "searchd",
			Name:      "search_duration_seconds",
			Help:      "In-memory search pipeline duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	FuzzyFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "fuzzy_fallback_total",
			Help:      "Searches where the fuzzy fallback topped up thin primary results",
		},
	)

	IndexedDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "searchd",
			Name:      "indexed_documents",
			Help:      "Documents currently held by the engine",
		},
	)

	IngestSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "ingest_skipped_documents_total",
			Help:      "Documents rejected during best-effort ingestion",
		},
	)
)

// RegisterSearchMetrics registers engine metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(
		SearchesTotal,
		SearchDuration,
		FuzzyFallbackTotal,
		IndexedDocuments,
		IngestSkippedTotal,
	)
}
