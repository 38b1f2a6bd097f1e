package physics

// Config holds the physical constants of the link model. The defaults
// describe standard single-mode fiber in the C band with EDFA line
// amplifiers and a 0.1 nm noise reference bandwidth.
type Config struct {
	// AttenuationDBPerKm is the fiber loss coefficient.
	AttenuationDBPerKm float64
	// NoiseFigureDB is the amplifier noise figure applied to every EDFA.
	NoiseFigureDB float64
	// CenterFrequencyHz is the optical carrier frequency used for ASE.
	CenterFrequencyHz float64
	// ReferenceBandwidthHz is the noise reference bandwidth (0.1 nm).
	ReferenceBandwidthHz float64
	// NLICoefficient scales the per-span nonlinear interference term,
	// which grows with the cube of the power entering the span.
	NLICoefficient float64
}

// DefaultConfig returns the standard C-band constants.
func DefaultConfig() Config {
	return Config{
		AttenuationDBPerKm:   0.22,
		NoiseFigureDB:        5.5,
		CenterFrequencyHz:    193.1e12,
		ReferenceBandwidthHz: 12.5e9,
		NLICoefficient:       1e-3,
	}
}
