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

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Snapshot Metrics
var (
	SnapshotsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsBuilt,
			Help: HelpTextSnapshotsBuilt,
		},
		[]string{LabelKind},
	)
)

// Miner Metrics
var (
	WatchedMinutes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWatchedMinutes,
			Help: HelpTextWatchedMinutes,
		},
		[]string{LabelGame},
	)

	DropsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsClaimed,
			Help: HelpTextDropsClaimed,
		},
		[]string{LabelGame},
	)

	MinerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameMinerState,
			Help: HelpTextMinerState,
		},
		[]string{LabelState},
	)
)

// SetMinerState flags state as the current one and clears the previous
func SetMinerState(previous, current string) {
	if previous != "" && previous != current {
		MinerState.WithLabelValues(previous).Set(0)
	}
	MinerState.WithLabelValues(current).Set(1)
}
