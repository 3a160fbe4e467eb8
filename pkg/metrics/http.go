package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Total number of HTTP requests served, per route and status
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"service", "method", "path", "status"})

	// Latency of the HTTP handlers
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "method", "path"})
)

func Init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
	)
}
