package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reportal_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reportal_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	ReportsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reportal_reports_submitted_total",
			Help: "Total number of lecture reports submitted",
		},
	)

	RatingsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reportal_ratings_submitted_total",
			Help: "Total number of lecturer ratings submitted",
		},
	)
)
