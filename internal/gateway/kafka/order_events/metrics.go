package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dashboard_order_events_published_total",
		Help: "Total number of order events sent to Kafka",
	},
	[]string{"event", "outcome"},
)
