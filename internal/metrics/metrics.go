package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	WalletOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWalletOperations,
			Help: HelpTextWalletOperations,
		},
		[]string{LabelOperation, LabelCode},
	)

	WalletBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWalletBalance,
			Help: HelpTextWalletBalance,
		},
	)

	WalletAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWalletAmount,
			Help: HelpTextWalletAmount,
		},
		[]string{LabelDirection},
	)

	SlotRounds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSlotRounds,
			Help: HelpTextSlotRounds,
		},
		[]string{LabelBand},
	)
)
