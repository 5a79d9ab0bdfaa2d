package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dashboard_rate_limit_exceeded_total",
		Help: "Total number of requests rejected by the dashboard rate limiter",
	},
	[]string{"method", "route"},
)
