package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTopologyMetrics() {
	r.TopologyNodesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "optical_topology_nodes_total",
			Help: "Number of nodes in the evaluation topology by kind",
		},
		[]string{"kind"},
	)

	r.TopologyLinksTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "optical_topology_links_total",
			Help: "Number of directed links in the evaluation topology",
		},
	)

	r.TopologySpansTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "optical_topology_spans_total",
			Help: "Number of fiber segments across all links",
		},
	)
}
