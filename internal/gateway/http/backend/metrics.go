package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Duration of REST backend requests",
		Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	},
	[]string{"method", "route", "status_code"},
)
