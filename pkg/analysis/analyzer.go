package analysis

import (
	"github.com/dd0wney/cluso-optical/pkg/logging"
	"github.com/dd0wney/cluso-optical/pkg/metrics"
	"github.com/dd0wney/cluso-optical/pkg/monitor"
)

// Analyzer runs both detection analyses over a monitor adapter. The two
// computations are independent: a domain error in one is recorded on its
// result and never suppresses the other.
type Analyzer struct {
	mon     *monitor.Adapter
	log     logging.Logger
	metrics *metrics.Registry

	covertChannel int
	uses          int
	budget        float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the analyzer's logger.
func WithLogger(l logging.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

// WithMetrics sets the analyzer's metrics registry.
func WithMetrics(m *metrics.Registry) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// NewAnalyzer creates an analyzer for one covert channel, channel-use
// count, and relative-entropy budget.
func NewAnalyzer(mon *monitor.Adapter, covertChannel, uses int, budget float64, opts ...Option) *Analyzer {
	a := &Analyzer{
		mon:           mon,
		log:           logging.Nop(),
		metrics:       metrics.DefaultRegistry(),
		covertChannel: covertChannel,
		uses:          uses,
		budget:        budget,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result bundles both verdicts of one evaluation pass.
type Result struct {
	Eavesdropper EavesdropperResult
	Receiver     ReceiverResult
}

// Evaluate samples the tap input and the receiver input and reduces them
// to the two verdicts.
func (a *Analyzer) Evaluate(tapNode, receiverNode string) (Result, error) {
	var res Result

	tapSamples, err := a.mon.SamplesAt(tapNode, nil)
	if err != nil {
		return res, err
	}
	res.Eavesdropper = EvaluateEavesdropper(tapSamples, a.covertChannel, a.uses, a.budget)
	if res.Eavesdropper.Err != nil {
		a.metrics.RecordDomainError("relative_entropy")
		a.log.Warn("eavesdropper metric not scoreable",
			logging.NodeName(tapNode),
			logging.Channel(a.covertChannel),
			logging.Error(res.Eavesdropper.Err),
		)
	} else {
		a.log.Info("eavesdropper test",
			logging.NodeName(tapNode),
			logging.Channel(a.covertChannel),
			logging.Float64("total_re", res.Eavesdropper.TotalRE),
			logging.Verdict(res.Eavesdropper.Verdict.String()),
		)
	}

	rxOSNR, err := a.mon.OSNRAt(receiverNode)
	if err != nil {
		return res, err
	}
	res.Receiver = EvaluateReceiver(rxOSNR, a.covertChannel, a.uses)
	if res.Receiver.Err != nil {
		a.metrics.RecordDomainError("capacity")
		a.log.Warn("receiver metric not scoreable",
			logging.NodeName(receiverNode),
			logging.Channel(a.covertChannel),
			logging.Error(res.Receiver.Err),
		)
	} else {
		a.log.Info("receiver capacity",
			logging.NodeName(receiverNode),
			logging.Channel(a.covertChannel),
			logging.OSNRdB(res.Receiver.OSNRdB),
			logging.Float64("bits", res.Receiver.Bits),
		)
	}

	if res.Eavesdropper.Err == nil {
		a.metrics.RecordEvaluation(res.Eavesdropper.Verdict.String(), res.Eavesdropper.TotalRE, res.Receiver.Bits)
	}
	return res, nil
}
