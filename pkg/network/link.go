package network

// Segment is one span of fiber, optionally followed by an in-line
// amplifier. Segment order within a link is physically significant: it
// determines how loss and amplifier noise accumulate.
type Segment struct {
	LengthKm float64
	Amp      *Amplifier
}

// Link is a directed optical connection between a source port on one node
// and a destination port on another, carrying an ordered sequence of
// segments. An optional boost amplifier sits at the link's head, before
// the first segment.
type Link struct {
	src     Node
	dst     Node
	srcPort Port
	dstPort Port
	boost   *Amplifier
	spans   []Segment
}

// Src returns the source node.
func (l *Link) Src() Node { return l.src }

// Dst returns the destination node.
func (l *Link) Dst() Node { return l.dst }

// SrcPort returns the output port on the source node.
func (l *Link) SrcPort() Port { return l.srcPort }

// DstPort returns the input port on the destination node.
func (l *Link) DstPort() Port { return l.dstPort }

// Boost returns the boost amplifier at the link's head, or nil.
func (l *Link) Boost() *Amplifier { return l.boost }

// Spans returns the link's segments in propagation order.
func (l *Link) Spans() []Segment {
	out := make([]Segment, len(l.spans))
	copy(out, l.spans)
	return out
}

// LengthKm returns the total fiber length of the link.
func (l *Link) LengthKm() float64 {
	var total float64
	for _, s := range l.spans {
		total += s.LengthKm
	}
	return total
}
