package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "armfinder",
		Name:      "matches_total",
		Help:      "Match queries by outcome (strict, relaxed, none).",
	}, []string{"outcome"})

	MatchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "armfinder",
		Name:      "match_results",
		Help:      "Number of arms returned per match query.",
		Buckets:   []float64{0, 1, 2, 3, 5, 10},
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "armfinder",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// ObserveMatch records one match query.
func ObserveMatch(outcome string, results int) {
	MatchesTotal.WithLabelValues(outcome).Inc()
	MatchResults.Observe(float64(results))
}
