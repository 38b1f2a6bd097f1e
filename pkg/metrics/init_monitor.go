package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMonitorMetrics() {
	r.MonitorQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "optical_monitor_queries_total",
			Help: "Monitor reads per observation node",
		},
		[]string{"node"},
	)

	r.MonitorChannelsSeen = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optical_monitor_channels_seen",
			Help:    "Channels present per monitor read",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"node"},
	)

	r.DegenerateSignals = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "optical_degenerate_signals_total",
			Help: "Zero-power channels observed at a monitoring point",
		},
		[]string{"node"},
	)
}
