package ridesharing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travigo", Subsystem: "ridesharing", Name: "fetch_total", Help: "Provider fetches by outcome"},
		[]string{"provider", "outcome"},
	)
	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travigo",
			Subsystem: "ridesharing",
			Name:      "fetch_duration_seconds",
			Help:      "Provider fetch latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
	offersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travigo", Subsystem: "ridesharing", Name: "offers_total", Help: "Offers returned by providers"},
		[]string{"provider"},
	)
	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travigo", Subsystem: "ridesharing", Name: "cache_lookups_total", Help: "Offer cache lookups by result"},
		[]string{"provider", "result"},
	)
)
