package order_sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveViews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_active_views",
			Help: "Number of session views held in memory",
		},
	)

	EvictedViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_evicted_views_total",
			Help: "Total number of idle session views evicted",
		},
	)

	PatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_view_patches_total",
			Help: "Total number of patch-on-success attempts by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)
)
