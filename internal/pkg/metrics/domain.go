package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BidsPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "freight_bids_placed_total",
			Help: "Total number of bids placed on loads",
		},
	)

	OrdersExpiredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_orders_expired_total",
			Help: "Total number of orders expired by source",
		},
		[]string{"source"},
	)

	PayoutsDistributedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "freight_payouts_distributed_total",
			Help: "Total number of completed order payouts",
		},
	)

	TrackingSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "freight_tracking_ws_subscribers",
			Help: "Current number of active tracking WebSocket subscribers",
		},
	)

	LocationPingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_location_pings_total",
			Help: "Total number of processed driver location pings by result",
		},
		[]string{"result"},
	)
)
