// Package metrics exposes Prometheus instrumentation for the evaluation
// pipeline: topology construction, switching configuration, monitoring
// queries, and detection analysis.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Topology Metrics
	TopologyNodesTotal *prometheus.GaugeVec
	TopologyLinksTotal prometheus.Gauge
	TopologySpansTotal prometheus.Gauge

	// Switching Metrics
	FlowRulesInstalled  *prometheus.CounterVec
	TransceiverBindings *prometheus.CounterVec
	TerminalsActivated  prometheus.Gauge
	ConfigurationErrors *prometheus.CounterVec

	// Monitor Metrics
	MonitorQueriesTotal  *prometheus.CounterVec
	MonitorChannelsSeen  *prometheus.HistogramVec
	DegenerateSignals    *prometheus.CounterVec

	// Analysis Metrics
	EvaluationsTotal     *prometheus.CounterVec
	AnalysisDomainErrors *prometheus.CounterVec
	RelativeEntropyTotal prometheus.Gauge
	AchievableBits       prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all evaluation metrics initialised.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initTopologyMetrics()
	r.initSwitchingMetrics()
	r.initMonitorMetrics()
	r.initAnalysisMetrics()
	return r
}

// Global default registry
var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// DefaultRegistry returns the global default registry
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Gatherer exposes the underlying Prometheus gatherer for embedding hosts.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
