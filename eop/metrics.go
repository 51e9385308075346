// Public domain.

package eop

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refframe_eop_cache_lookups_total",
			Help: "EOP cache lookups by result.",
		},
		[]string{"result"},
	)

	sourceReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refframe_eop_source_reads_total",
			Help: "EOP table window reads by table family.",
		},
		[]string{"family"},
	)

	zeroCorrections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refframe_eop_zero_corrections_total",
			Help: "EOP requests answered with zero corrections, by reason.",
		},
		[]string{"reason"},
	)

	predictionFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refframe_eop_prediction_fetches_total",
			Help: "EOP prediction feed fetches by source and result.",
		},
		[]string{"source", "result"},
	)

	predictionFetchSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "refframe_eop_prediction_fetch_seconds",
			Help:    "EOP prediction feed fetch duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(cacheLookups)
	prometheus.MustRegister(sourceReads)
	prometheus.MustRegister(zeroCorrections)
	prometheus.MustRegister(predictionFetches)
	prometheus.MustRegister(predictionFetchSeconds)
}
