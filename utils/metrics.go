package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the planning pipeline.
var (
	PlanRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripwise_plan_requests_total",
		Help: "Total number of plan-trip requests received.",
	})
	UpstreamErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripwise_upstream_errors_total",
		Help: "Total number of failed upstream fetches, per endpoint.",
	}, []string{"endpoint"})
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripwise_cache_hits_total",
		Help: "Total number of upstream responses served from cache.",
	})
	RecordsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripwise_records_dropped_total",
		Help: "Total number of upstream records dropped for missing price.",
	})
)
