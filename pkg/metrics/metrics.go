package metrics

// RecordTopology records the size of a freshly built topology.
func (r *Registry) RecordTopology(terminals, routingNodes, amplifiers, links, spans int) {
	r.TopologyNodesTotal.WithLabelValues("terminal").Set(float64(terminals))
	r.TopologyNodesTotal.WithLabelValues("routing-node").Set(float64(routingNodes))
	r.TopologyNodesTotal.WithLabelValues("amplifier").Set(float64(amplifiers))
	r.TopologyLinksTotal.Set(float64(links))
	r.TopologySpansTotal.Set(float64(spans))
}

// RecordFlowRules records flow table entries installed on a routing node.
func (r *Registry) RecordFlowRules(node string, count int) {
	r.FlowRulesInstalled.WithLabelValues(node).Add(float64(count))
}

// RecordBinding records a transceiver binding on a terminal.
func (r *Registry) RecordBinding(terminal, direction string) {
	r.TransceiverBindings.WithLabelValues(terminal, direction).Inc()
}

// RecordActivation records how many terminals are turned on.
func (r *Registry) RecordActivation(count int) {
	r.TerminalsActivated.Set(float64(count))
}

// RecordConfigurationError records a fatal configuration error in a phase.
func (r *Registry) RecordConfigurationError(phase string) {
	r.ConfigurationErrors.WithLabelValues(phase).Inc()
}

// RecordMonitorQuery records one monitor read and how many channels it saw.
func (r *Registry) RecordMonitorQuery(node string, channels, degenerate int) {
	r.MonitorQueriesTotal.WithLabelValues(node).Inc()
	r.MonitorChannelsSeen.WithLabelValues(node).Observe(float64(channels))
	if degenerate > 0 {
		r.DegenerateSignals.WithLabelValues(node).Add(float64(degenerate))
	}
}

// RecordEvaluation records a completed evaluation and its headline figures.
func (r *Registry) RecordEvaluation(verdict string, totalRE, bits float64) {
	r.EvaluationsTotal.WithLabelValues(verdict).Inc()
	r.RelativeEntropyTotal.Set(totalRE)
	r.AchievableBits.Set(bits)
}

// RecordDomainError records a scoped analysis domain error.
func (r *Registry) RecordDomainError(metric string) {
	r.AnalysisDomainErrors.WithLabelValues(metric).Inc()
}
