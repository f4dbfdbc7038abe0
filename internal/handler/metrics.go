package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	orderCreateTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "order_create_total",
			Help:      "Total number of order creation requests",
		},
		[]string{"status"},
	)

	orderCreateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "order_create_duration_seconds",
			Help:      "Histogram of order creation durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	statusChangeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "status_change_total",
			Help:      "Total number of manual status change requests by target status",
		},
		[]string{"target", "status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		orderCreateTotal,
		orderCreateDuration,
		statusChangeTotal,
	)
}
