// Package topology constructs the fixed evaluation scenario: terminals,
// routing nodes, amplifiers, and the multi-segment links joining them.
package topology

import (
	"fmt"

	"github.com/dd0wney/cluso-optical/pkg/network"
)

// Builder provides a fluent interface for assembling a network. It
// captures the first error and reports it from Build, so call sites can
// chain construction steps without per-step checks.
type Builder struct {
	net  *network.Network
	amps map[string]*network.Amplifier
	err  error
}

// NewBuilder creates an empty network builder.
func NewBuilder() *Builder {
	return &Builder{
		net:  network.New(),
		amps: make(map[string]*network.Amplifier),
	}
}

// Terminal adds a line terminal with the given transceivers.
func (b *Builder) Terminal(name string, defs []network.TransceiverDef) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := b.net.AddTerminal(name, defs); err != nil {
		b.err = fmt.Errorf("failed to create terminal %s: %w", name, err)
	}
	return b
}

// RoutingNode adds a wavelength switch.
func (b *Builder) RoutingNode(name string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := b.net.AddRoutingNode(name); err != nil {
		b.err = fmt.Errorf("failed to create routing node %s: %w", name, err)
	}
	return b
}

// Amplifier adds a fixed-gain amplifier for later placement into links.
func (b *Builder) Amplifier(name string, gainDB float64, boost bool) *Builder {
	if b.err != nil {
		return b
	}
	amp, err := b.net.AddAmplifier(name, gainDB, boost)
	if err != nil {
		b.err = fmt.Errorf("failed to create amplifier %s: %w", name, err)
		return b
	}
	b.amps[name] = amp
	return b
}

// SegmentDef names a fiber span and the amplifier that follows it; an
// empty amplifier name means an unamplified span.
type SegmentDef struct {
	LengthKm float64
	AmpName  string
}

// Link adds a directed link. Boost and segment amplifiers are referenced
// by name and must have been added already.
func (b *Builder) Link(src, dst string, srcPort, dstPort network.Port, boostName string, segs []SegmentDef) *Builder {
	if b.err != nil {
		return b
	}

	var boost *network.Amplifier
	if boostName != "" {
		var ok bool
		if boost, ok = b.amps[boostName]; !ok {
			b.err = fmt.Errorf("link %s->%s: boost amplifier %s: %w", src, dst, boostName, network.ErrUnknownNode)
			return b
		}
	}

	spans := make([]network.Segment, 0, len(segs))
	for _, seg := range segs {
		var amp *network.Amplifier
		if seg.AmpName != "" {
			var ok bool
			if amp, ok = b.amps[seg.AmpName]; !ok {
				b.err = fmt.Errorf("link %s->%s: segment amplifier %s: %w", src, dst, seg.AmpName, network.ErrUnknownNode)
				return b
			}
		}
		spans = append(spans, network.Segment{LengthKm: seg.LengthKm, Amp: amp})
	}

	if _, err := b.net.AddLink(src, dst, srcPort, dstPort, boost, spans); err != nil {
		b.err = fmt.Errorf("failed to create link %s->%s: %w", src, dst, err)
	}
	return b
}

// Error returns any error that occurred during building.
func (b *Builder) Error() error {
	return b.err
}

// Build finalises the builder and returns the network.
func (b *Builder) Build() (*network.Network, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.net, nil
}
