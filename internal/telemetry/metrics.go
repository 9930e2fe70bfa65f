package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TokenizationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_tokenizations_total",
		Help: "Token exchange attempts by outcome.",
	}, []string{"status"})

	RedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_redemptions_total",
		Help: "Token redemption attempts by outcome.",
	}, []string{"status"})

	ProcessorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_processor_request_duration_seconds",
		Help:    "Duration of processor calls by endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)
