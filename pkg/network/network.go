// Package network holds the data model for the evaluation topology: named
// nodes (terminals, routing nodes, amplifiers), typed ports, directed
// multi-segment links, and per-node flow tables. The model enforces the
// configuration invariants (unique node names, unique port bindings,
// unambiguous flow rules, write-once transceiver assignment); it knows
// nothing about light itself, which is the physics engine's job.
package network

import "fmt"

type portBinding struct {
	node string
	port Port
	dir  Direction
}

// Network is the set of all nodes and links plus a name lookup. It is
// built once, configured once, and read-only from the moment monitoring
// starts.
type Network struct {
	nodes    map[string]Node
	order    []string
	links    []*Link
	bindings map[portBinding]*Link
}

// New returns an empty network.
func New() *Network {
	return &Network{
		nodes:    make(map[string]Node),
		bindings: make(map[portBinding]*Link),
	}
}

func (n *Network) register(node Node) error {
	if _, exists := n.nodes[node.Name()]; exists {
		return fmt.Errorf("node %s: %w", node.Name(), ErrDuplicateNode)
	}
	n.nodes[node.Name()] = node
	n.order = append(n.order, node.Name())
	return nil
}

// AddTerminal creates a line terminal with the given transceivers.
func (n *Network) AddTerminal(name string, defs []TransceiverDef) (*Terminal, error) {
	t := &Terminal{name: name}
	for _, def := range defs {
		t.transceivers = append(t.transceivers, &Transceiver{
			id:          def.ID,
			launchDBm:   def.LaunchDBm,
			receiveOnly: def.ReceiveOnly,
		})
	}
	if err := n.register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddRoutingNode creates a wavelength switch with an empty flow table.
func (n *Network) AddRoutingNode(name string) (*RoutingNode, error) {
	r := &RoutingNode{name: name, rules: make(map[ruleKey]Port)}
	if err := n.register(r); err != nil {
		return nil, err
	}
	return r, nil
}

// AddAmplifier creates a fixed-gain amplifier node. Amplifiers are placed
// into links as boost or segment amplifiers; they are registered here so
// monitors can address them by name.
func (n *Network) AddAmplifier(name string, gainDB float64, boost bool) (*Amplifier, error) {
	a := &Amplifier{name: name, gainDB: gainDB, boost: boost}
	if err := n.register(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddLink creates a directed link between two registered nodes. Each
// endpoint (node, port, direction) may be bound to at most one link, every
// segment length must be strictly positive, and the port roles must match
// the link direction.
func (n *Network) AddLink(srcName, dstName string, srcPort, dstPort Port, boost *Amplifier, spans []Segment) (*Link, error) {
	src, err := n.Node(srcName)
	if err != nil {
		return nil, err
	}
	dst, err := n.Node(dstName)
	if err != nil {
		return nil, err
	}
	if srcPort.Direction() != Out {
		return nil, fmt.Errorf("link %s->%s, source port %s: %w", srcName, dstName, srcPort, ErrPortDirection)
	}
	if dstPort.Direction() != In {
		return nil, fmt.Errorf("link %s->%s, destination port %s: %w", srcName, dstName, dstPort, ErrPortDirection)
	}
	if len(spans) == 0 {
		return nil, fmt.Errorf("link %s->%s: %w", srcName, dstName, ErrNoSegments)
	}
	for i, s := range spans {
		if s.LengthKm <= 0 {
			return nil, fmt.Errorf("link %s->%s, segment %d: %w", srcName, dstName, i, ErrSegmentLength)
		}
	}
	srcKey := portBinding{node: srcName, port: srcPort, dir: Out}
	dstKey := portBinding{node: dstName, port: dstPort, dir: In}
	if _, bound := n.bindings[srcKey]; bound {
		return nil, fmt.Errorf("node %s, port %s (out): %w", srcName, srcPort, ErrPortBound)
	}
	if _, bound := n.bindings[dstKey]; bound {
		return nil, fmt.Errorf("node %s, port %s (in): %w", dstName, dstPort, ErrPortBound)
	}

	l := &Link{src: src, dst: dst, srcPort: srcPort, dstPort: dstPort, boost: boost}
	l.spans = make([]Segment, len(spans))
	copy(l.spans, spans)

	n.links = append(n.links, l)
	n.bindings[srcKey] = l
	n.bindings[dstKey] = l
	return l, nil
}

// Node looks up any node by name.
func (n *Network) Node(name string) (Node, error) {
	node, ok := n.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node %s: %w", name, ErrUnknownNode)
	}
	return node, nil
}

// Terminal looks up a node and asserts it is a terminal.
func (n *Network) Terminal(name string) (*Terminal, error) {
	node, err := n.Node(name)
	if err != nil {
		return nil, err
	}
	t, ok := node.(*Terminal)
	if !ok {
		return nil, fmt.Errorf("node %s: %w", name, ErrNotTerminal)
	}
	return t, nil
}

// RoutingNode looks up a node and asserts it is a routing node.
func (n *Network) RoutingNode(name string) (*RoutingNode, error) {
	node, err := n.Node(name)
	if err != nil {
		return nil, err
	}
	r, ok := node.(*RoutingNode)
	if !ok {
		return nil, fmt.Errorf("node %s: %w", name, ErrNotRoutingNode)
	}
	return r, nil
}

// Nodes returns all nodes in creation order.
func (n *Network) Nodes() []Node {
	out := make([]Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.nodes[name])
	}
	return out
}

// Links returns all links in creation order.
func (n *Network) Links() []*Link {
	out := make([]*Link, len(n.links))
	copy(out, n.links)
	return out
}

// LinkFrom returns the link launched from the given node and output port.
func (n *Network) LinkFrom(node string, port Port) (*Link, bool) {
	l, ok := n.bindings[portBinding{node: node, port: port, dir: Out}]
	return l, ok
}

// TrunkFrom returns the first link launched from any line-out port of the
// node. Terminals multiplex all their bound transmit channels onto this
// trunk when the transceiver's own launch port has no dedicated link.
func (n *Network) TrunkFrom(node string) (*Link, bool) {
	for _, l := range n.links {
		if l.src.Name() == node && l.srcPort.Kind == KindLineOut {
			return l, true
		}
	}
	return nil, false
}
