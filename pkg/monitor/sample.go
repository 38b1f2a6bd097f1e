// Package monitor normalises per-channel observations from the physical
// link model into fixed sample records, and carries the power-unit
// conversions the analysis layer depends on.
package monitor

import "math"

// Sample is one channel's state at a monitoring point. All powers are in
// linear units (watts) and non-negative.
type Sample struct {
	Channel int
	Signal  float64
	ASE     float64
	NLI     float64
}

// OSNRLinear returns signal / (ASE + NLI) in linear units. A channel with
// no noise reads +Inf when lit and 0 when dark.
func (s Sample) OSNRLinear() float64 {
	noise := s.ASE + s.NLI
	if noise <= 0 {
		if s.Signal > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return s.Signal / noise
}

// OSNRdB returns the sample's OSNR in dB.
func (s Sample) OSNRdB() float64 {
	return LinearToDB(s.OSNRLinear())
}

// ChannelOSNR pairs a channel index with its OSNR in dB.
type ChannelOSNR struct {
	Channel int
	DB      float64
}

// WattsToDBm converts a linear power to dBm. Zero (or non-positive) watts
// maps to -Inf dBm; a dark channel is a legitimate state, never an error.
func WattsToDBm(w float64) float64 {
	if w <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(w*1000)
}

// DBmToWatts converts dBm back to watts. -Inf dBm maps to zero.
func DBmToWatts(dbm float64) float64 {
	if math.IsInf(dbm, -1) {
		return 0
	}
	return math.Pow(10, dbm/10) / 1000
}

// LinearToDB converts a linear ratio to dB, with 0 mapping to -Inf.
func LinearToDB(r float64) float64 {
	if r <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(r)
}

// DBToLinear converts dB to a linear ratio.
func DBToLinear(db float64) float64 {
	if math.IsInf(db, -1) {
		return 0
	}
	return math.Pow(10, db/10)
}
