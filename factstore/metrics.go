package factstore

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts fact store activity.
type Metrics struct {
	Queries         *prometheus.CounterVec
	QueryDuration   *prometheus.HistogramVec
	QueryErrors     *prometheus.CounterVec
	Lookups         prometheus.Counter
	TriplesImported *prometheus.CounterVec
	Imports         *prometheus.CounterVec
}

// NewMetrics creates the fact store metrics and registers them with reg when reg is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sotkb",
				Subsystem: "factstore",
				Name:      "queries_total",
				Help:      "Pattern queries executed, by query name",
			},
			[]string{"query"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sotkb",
				Subsystem: "factstore",
				Name:      "query_duration_seconds",
				Help:      "Pattern query execution time in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"query"},
		),
		QueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sotkb",
				Subsystem: "factstore",
				Name:      "query_errors_total",
				Help:      "Pattern queries that failed to compile or execute",
			},
			[]string{"query"},
		),
		Lookups: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "sotkb",
				Subsystem: "factstore",
				Name:      "lookups_total",
				Help:      "Single-hop object lookups",
			},
		),
		TriplesImported: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sotkb",
				Subsystem: "factstore",
				Name:      "triples_imported_total",
				Help:      "Triples read from sources and added to the store",
			},
			[]string{"status"},
		),
		Imports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sotkb",
				Subsystem: "factstore",
				Name:      "imports_total",
				Help:      "Import attempts by outcome",
			},
			[]string{"status"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Queries, m.QueryDuration, m.QueryErrors, m.Lookups, m.TriplesImported, m.Imports)
	}
	return m
}
