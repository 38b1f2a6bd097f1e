// Package analysis reduces monitored samples to the two detection-theoretic
// verdicts of the evaluation: the eavesdropper's relative-entropy budget
// check and the covert receiver's achievable information rate.
package analysis

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-optical/pkg/monitor"
)

// Verdict classifies the eavesdropper's relative-entropy total against
// the security budget.
type Verdict int

const (
	// VerdictWithinBudget means the covert transmission stays below the
	// eavesdropper's detection budget.
	VerdictWithinBudget Verdict = iota
	// VerdictBudgetExceeded means the transmission is detectable.
	VerdictBudgetExceeded
)

// String returns the verdict label used in reports.
func (v Verdict) String() string {
	if v == VerdictWithinBudget {
		return "within budget"
	}
	return "budget-exceeded"
}

// RelativeEntropy returns the per-channel-use relative entropy of the
// eavesdropper's discrimination test for a given linear OSNR:
//
//	RE = 0.5 * ln( (1 + OSNR) - 1/(1 + 1/OSNR) )
//
// The OSNR must be strictly positive; anything else means no signal
// reached the observation point and cannot be scored.
func RelativeEntropy(osnr float64) (float64, error) {
	if osnr <= 0 || math.IsNaN(osnr) {
		return 0, fmt.Errorf("OSNR %v: %w", osnr, ErrNonPositiveOSNR)
	}
	return 0.5 * math.Log((1+osnr)-1/(1+1/osnr)), nil
}

// TotalRelativeEntropy accumulates the per-use relative entropy over n
// channel uses.
func TotalRelativeEntropy(re float64, uses int) float64 {
	return float64(uses) * re
}

// Classify compares the total relative entropy against the budget. The
// boundary itself counts as exceeded.
func Classify(totalRE, budget float64) Verdict {
	if totalRE >= budget {
		return VerdictBudgetExceeded
	}
	return VerdictWithinBudget
}

// EavesdropperResult holds the relative-entropy test outcome. Err is set
// when the OSNR at the tap was not scoreable; the remaining fields are
// only meaningful when Err is nil.
type EavesdropperResult struct {
	OSNRLinear float64
	RE         float64
	TotalRE    float64
	Budget     float64
	Uses       int
	Verdict    Verdict
	Err        error
}

// EvaluateEavesdropper runs Willie's discrimination test on the samples
// observed at the tap input, restricted to the covert channel. The OSNR
// sums signal and ASE across however many components the monitor reports;
// NLI is deliberately left out of the denominator, because the test is
// defined against a Gaussian-noise channel with ASE as the dominant term.
func EvaluateEavesdropper(samples []monitor.Sample, covertChannel, uses int, budget float64) EavesdropperResult {
	res := EavesdropperResult{Budget: budget, Uses: uses}

	var signal, ase float64
	for _, s := range samples {
		if s.Channel != covertChannel {
			continue
		}
		signal += s.Signal
		ase += s.ASE
	}

	var osnr float64
	switch {
	case signal <= 0:
		osnr = 0
	case ase <= 0:
		osnr = math.Inf(1)
	default:
		osnr = signal / ase
	}
	res.OSNRLinear = osnr

	re, err := RelativeEntropy(osnr)
	if err != nil {
		res.Err = fmt.Errorf("covert channel %d at tap: %w", covertChannel, err)
		return res
	}
	res.RE = re
	res.TotalRE = TotalRelativeEntropy(re, uses)
	res.Verdict = Classify(res.TotalRE, budget)
	return res
}
