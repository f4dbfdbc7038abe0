package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservationRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "inventory",
		Name:      "reservation_rejected_total",
		Help:      "Reservations refused because the free pool could not cover them.",
	}, []string{"pool"})

	shipmentSyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "shipment",
		Name:      "sync_runs_total",
		Help:      "Shipment sync runs by outcome.",
	}, []string{"outcome"})
)
