package network

import "fmt"

// Direction tells which way light moves through a port relative to its node.
type Direction int

const (
	// In ports receive light arriving at the node.
	In Direction = iota
	// Out ports launch light away from the node.
	Out
)

// String returns the direction as "in" or "out".
func (d Direction) String() string {
	if d == In {
		return "in"
	}
	return "out"
}

// PortKind names the role of a port on its node. Keeping the role in the
// type (rather than an integer offset convention) means an add port can
// never collide with a line port just by sharing an index.
type PortKind int

const (
	// KindLineIn is a multiplexed trunk input on a routing node or terminal.
	KindLineIn PortKind = iota
	// KindLineOut is a multiplexed trunk output.
	KindLineOut
	// KindAdd is a single-channel insertion input on a routing node.
	KindAdd
	// KindDrop is a single-channel extraction output on a routing node.
	KindDrop
	// KindTransmit is a transceiver launch port on a terminal.
	KindTransmit
	// KindReceive is a transceiver receive port on a terminal.
	KindReceive
)

// String returns the short label used in port names and flow rule dumps.
func (k PortKind) String() string {
	switch k {
	case KindLineIn:
		return "line-in"
	case KindLineOut:
		return "line-out"
	case KindAdd:
		return "add"
	case KindDrop:
		return "drop"
	case KindTransmit:
		return "tx"
	case KindReceive:
		return "rx"
	default:
		return "unknown"
	}
}

// Port identifies one physical port on a node by role and index.
// Ports are values; two ports are the same port iff kind and index match.
type Port struct {
	Kind  PortKind
	Index int
}

// LineIn returns the i-th trunk input port.
func LineIn(i int) Port { return Port{Kind: KindLineIn, Index: i} }

// LineOut returns the i-th trunk output port.
func LineOut(i int) Port { return Port{Kind: KindLineOut, Index: i} }

// AddPort returns the i-th add port.
func AddPort(i int) Port { return Port{Kind: KindAdd, Index: i} }

// DropPort returns the i-th drop port.
func DropPort(i int) Port { return Port{Kind: KindDrop, Index: i} }

// TransmitPort returns the i-th transceiver launch port.
func TransmitPort(i int) Port { return Port{Kind: KindTransmit, Index: i} }

// ReceivePort returns the i-th transceiver receive port.
func ReceivePort(i int) Port { return Port{Kind: KindReceive, Index: i} }

// Direction derives the light direction from the port's role.
func (p Port) Direction() Direction {
	switch p.Kind {
	case KindLineIn, KindAdd, KindReceive:
		return In
	default:
		return Out
	}
}

// String returns the port as "kind/index", e.g. "add/1".
func (p Port) String() string {
	return fmt.Sprintf("%s/%d", p.Kind, p.Index)
}
