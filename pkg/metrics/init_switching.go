package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSwitchingMetrics() {
	r.FlowRulesInstalled = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "optical_flow_rules_installed_total",
			Help: "Flow table entries installed per routing node",
		},
		[]string{"node"},
	)

	r.TransceiverBindings = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "optical_transceiver_bindings_total",
			Help: "Transceiver channel/port bindings per terminal and direction",
		},
		[]string{"terminal", "direction"},
	)

	r.TerminalsActivated = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "optical_terminals_activated",
			Help: "Terminals turned on for the current evaluation",
		},
	)

	r.ConfigurationErrors = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "optical_configuration_errors_total",
			Help: "Fatal configuration errors by phase",
		},
		[]string{"phase"},
	)
}
