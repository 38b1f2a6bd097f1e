package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.EvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "optical_evaluations_total",
			Help: "Completed detection evaluations by verdict",
		},
		[]string{"verdict"},
	)

	r.AnalysisDomainErrors = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "optical_analysis_domain_errors_total",
			Help: "Domain errors per analysis metric",
		},
		[]string{"metric"},
	)

	r.RelativeEntropyTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "optical_relative_entropy_total",
			Help: "Last computed total relative entropy over all channel uses",
		},
	)

	r.AchievableBits = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "optical_achievable_bits",
			Help: "Last computed achievable bits at the covert receiver",
		},
	)
}
