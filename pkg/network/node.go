package network

// NodeKind discriminates the three node types in the evaluation topology.
type NodeKind int

const (
	// KindTerminal hosts transceivers that launch or receive channels.
	KindTerminal NodeKind = iota
	// KindRoutingNode switches channels between ports via a flow table.
	KindRoutingNode
	// KindAmplifier applies gain inside a link and carries no routing state.
	KindAmplifier
)

// String returns the node kind label used in reports and logs.
func (k NodeKind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindRoutingNode:
		return "routing-node"
	case KindAmplifier:
		return "amplifier"
	default:
		return "unknown"
	}
}

// Node is any named element of the topology.
type Node interface {
	Name() string
	Kind() NodeKind
}

// Amplifier is a fixed-gain element placed inside a link segment or at a
// link's head (boost). It carries no routing state; the boost flag only
// distinguishes post-multiplexer amplifiers from in-line ones.
type Amplifier struct {
	name   string
	gainDB float64
	boost  bool
}

// Name returns the amplifier's unique name.
func (a *Amplifier) Name() string { return a.name }

// Kind returns KindAmplifier.
func (a *Amplifier) Kind() NodeKind { return KindAmplifier }

// GainDB returns the amplifier gain in dB.
func (a *Amplifier) GainDB() float64 { return a.gainDB }

// IsBoost reports whether this is a post-multiplexer boost amplifier.
func (a *Amplifier) IsBoost() bool { return a.boost }
