package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for gateway health and upstream device behavior
var (
	GatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiscal_gateway_requests_total",
			Help: "Total number of gateway calls by action, driver and outcome",
		},
		[]string{"action", "driver", "outcome"},
	)

	GatewayErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiscal_gateway_errors_total",
			Help: "Total number of classified gateway errors",
		},
		[]string{"class"},
	)

	DispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fiscal_gateway_dispatch_duration_seconds",
			Help:    "Duration of a full gateway dispatch including the upstream call",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action", "driver"},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(GatewayRequestsTotal)
	prometheus.MustRegister(GatewayErrorsTotal)
	prometheus.MustRegister(DispatchDuration)
}
