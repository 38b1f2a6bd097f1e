package analysis

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-optical/pkg/monitor"
)

// ReceiverResult holds Bob's capacity estimate. There is no pass/fail
// here; the achievable bits are a reported figure.
type ReceiverResult struct {
	OSNRdB     float64
	OSNRLinear float64
	OSNRPerUse float64
	Uses       int
	Bits       float64
	Err        error
}

// CapacityBits returns the achievable bits for a run of n channel uses at
// the given linear OSNR: bits = (n/2) * ln(1 + OSNR/n). Zero OSNR yields
// zero bits; the figure is strictly increasing in OSNR.
func CapacityBits(osnrLinear float64, uses int) float64 {
	if uses <= 0 {
		return 0
	}
	perUse := osnrLinear / float64(uses)
	return float64(uses) / 2 * math.Log(1+perUse)
}

// EvaluateReceiver computes Bob's capacity estimate from the per-channel
// OSNR readings at the receiver input, restricted to the covert channel.
// A dark channel (-Inf dB) is a valid zero-capacity outcome, not an error.
func EvaluateReceiver(osnrs []monitor.ChannelOSNR, covertChannel, uses int) ReceiverResult {
	res := ReceiverResult{Uses: uses}

	found := false
	for _, o := range osnrs {
		if o.Channel == covertChannel {
			res.OSNRdB = o.DB
			found = true
			break
		}
	}
	if !found {
		res.Err = fmt.Errorf("covert channel %d at receiver: %w", covertChannel, ErrChannelNotMonitored)
		return res
	}

	res.OSNRLinear = monitor.DBToLinear(res.OSNRdB)
	if uses > 0 {
		res.OSNRPerUse = res.OSNRLinear / float64(uses)
	}
	res.Bits = CapacityBits(res.OSNRLinear, uses)
	return res
}
