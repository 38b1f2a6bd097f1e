package topology

import (
	"fmt"

	"github.com/dd0wney/cluso-optical/pkg/metrics"
	"github.com/dd0wney/cluso-optical/pkg/network"
)

// Well-known node names within the evaluation scenario.
const (
	BackgroundTerminal = "t1"
	SenderTerminal     = "alice"
	ReceiverTerminal   = "bob"
	SenderRoadm        = "r1"
	ReceiverRoadm      = "r2"
	TapAmplifier       = "willie-tap"
	eastBoost          = "boost-east"
	westBoost          = "boost-west"
)

// Params are the constants the scenario is built from.
type Params struct {
	// TxCount is the width of the channel plan [1..TxCount].
	TxCount int
	// CovertChannel is the distinguished covert index within the plan.
	CovertChannel int
	// BackgroundPowerDBm is the launch power of every background channel.
	BackgroundPowerDBm float64
	// CovertPowerDBm is the covert sender's deliberately low launch power.
	CovertPowerDBm float64
	// SpanKm is the length of each inter-router fiber span.
	SpanKm float64
	// SpansPerLink is the number of spans on each inter-router link.
	SpansPerLink int
	// AmpGainDB is the in-line amplifier gain (span-loss compensating).
	AmpGainDB float64
	// BoostGainDB is the post-multiplexer boost amplifier gain.
	BoostGainDB float64
	// LocalSpanKm is the length of the short terminal add/drop links.
	LocalSpanKm float64
}

// DefaultParams returns the reference scenario: a 10-channel plan with
// channel 5 covert, three 25 km spans per inter-router link, and a covert
// launch power far below the background channels.
func DefaultParams() Params {
	return Params{
		TxCount:            10,
		CovertChannel:      5,
		BackgroundPowerDBm: 0,
		CovertPowerDBm:     -84,
		SpanKm:             25,
		SpansPerLink:       3,
		AmpGainDB:          5.5,
		BoostGainDB:        17,
		LocalSpanKm:        1,
	}
}

// BackgroundChannels returns the channel plan minus the covert index, in
// ascending order. These are the channels the background terminal owns.
func (p Params) BackgroundChannels() []int {
	chs := make([]int, 0, p.TxCount-1)
	for ch := 1; ch <= p.TxCount; ch++ {
		if ch != p.CovertChannel {
			chs = append(chs, ch)
		}
	}
	return chs
}

// Scenario is the built evaluation topology with handles to the nodes the
// configurator and analyzer need.
type Scenario struct {
	Net        *network.Network
	Background *network.Terminal
	Sender     *network.Terminal
	Receiver   *network.Terminal
	SenderR    *network.RoutingNode
	ReceiverR  *network.RoutingNode
	Tap        *network.Amplifier
	EastLink   *network.Link
	WestLink   *network.Link
	Params     Params
}

// Build constructs the fixed scenario topology:
//
//	t1 ----- r1 ==west== r2 ----- bob
//	alice --/   ==east==/
//
// The east link runs from the sender's routing node to the receiver's and
// carries the eavesdropping tap as the amplifier of its first segment, so
// every channel on that link crosses the tap before any further span loss.
func Build(p Params) (*Scenario, error) {
	if p.TxCount < 2 {
		return nil, fmt.Errorf("channel plan width %d: %w", p.TxCount, network.ErrInvalidChannel)
	}
	if p.CovertChannel < 1 || p.CovertChannel > p.TxCount {
		return nil, fmt.Errorf("covert channel %d outside plan [1..%d]: %w",
			p.CovertChannel, p.TxCount, network.ErrInvalidChannel)
	}

	b := NewBuilder()

	var bgDefs []network.TransceiverDef
	for i := range p.BackgroundChannels() {
		bgDefs = append(bgDefs, network.TransceiverDef{ID: i + 1, LaunchDBm: p.BackgroundPowerDBm})
	}
	b.Terminal(BackgroundTerminal, bgDefs)
	b.Terminal(SenderTerminal, []network.TransceiverDef{{ID: 1, LaunchDBm: p.CovertPowerDBm}})
	b.Terminal(ReceiverTerminal, []network.TransceiverDef{{ID: 1, ReceiveOnly: true}})
	b.RoutingNode(SenderRoadm)
	b.RoutingNode(ReceiverRoadm)

	b.Amplifier(eastBoost, p.BoostGainDB, true)
	b.Amplifier(westBoost, p.BoostGainDB, true)
	b.Amplifier(TapAmplifier, p.AmpGainDB, false)
	for i := 2; i <= p.SpansPerLink; i++ {
		b.Amplifier(fmt.Sprintf("amp-east-%d", i), p.AmpGainDB, false)
	}
	for i := 1; i <= p.SpansPerLink; i++ {
		b.Amplifier(fmt.Sprintf("amp-west-%d", i), p.AmpGainDB, false)
	}

	// Local add/drop links.
	b.Link(BackgroundTerminal, SenderRoadm,
		network.LineOut(1), network.LineIn(1), "",
		[]SegmentDef{{LengthKm: p.LocalSpanKm}})
	b.Link(SenderTerminal, SenderRoadm,
		network.TransmitPort(1), network.AddPort(1), "",
		[]SegmentDef{{LengthKm: p.LocalSpanKm}})
	b.Link(ReceiverRoadm, ReceiverTerminal,
		network.DropPort(1), network.ReceivePort(1), "",
		[]SegmentDef{{LengthKm: p.LocalSpanKm}})

	// Inter-router pair: the west link is built first, the east link is
	// the second one and holds the tap on its first segment.
	westSegs := make([]SegmentDef, 0, p.SpansPerLink)
	for i := 1; i <= p.SpansPerLink; i++ {
		westSegs = append(westSegs, SegmentDef{LengthKm: p.SpanKm, AmpName: fmt.Sprintf("amp-west-%d", i)})
	}
	b.Link(ReceiverRoadm, SenderRoadm,
		network.LineOut(1), network.LineIn(2), westBoost, westSegs)

	eastSegs := []SegmentDef{{LengthKm: p.SpanKm, AmpName: TapAmplifier}}
	for i := 2; i <= p.SpansPerLink; i++ {
		eastSegs = append(eastSegs, SegmentDef{LengthKm: p.SpanKm, AmpName: fmt.Sprintf("amp-east-%d", i)})
	}
	b.Link(SenderRoadm, ReceiverRoadm,
		network.LineOut(1), network.LineIn(1), eastBoost, eastSegs)

	net, err := b.Build()
	if err != nil {
		return nil, err
	}

	sc := &Scenario{Net: net, Params: p}
	if sc.Background, err = net.Terminal(BackgroundTerminal); err != nil {
		return nil, err
	}
	if sc.Sender, err = net.Terminal(SenderTerminal); err != nil {
		return nil, err
	}
	if sc.Receiver, err = net.Terminal(ReceiverTerminal); err != nil {
		return nil, err
	}
	if sc.SenderR, err = net.RoutingNode(SenderRoadm); err != nil {
		return nil, err
	}
	if sc.ReceiverR, err = net.RoutingNode(ReceiverRoadm); err != nil {
		return nil, err
	}
	tapNode, err := net.Node(TapAmplifier)
	if err != nil {
		return nil, err
	}
	sc.Tap = tapNode.(*network.Amplifier)
	for _, l := range net.Links() {
		switch {
		case l.Src().Name() == SenderRoadm && l.Dst().Name() == ReceiverRoadm:
			sc.EastLink = l
		case l.Src().Name() == ReceiverRoadm && l.Dst().Name() == SenderRoadm:
			sc.WestLink = l
		}
	}

	spans := 0
	for _, l := range net.Links() {
		spans += len(l.Spans())
	}
	var terminals, routers, amps int
	for _, node := range net.Nodes() {
		switch node.Kind() {
		case network.KindTerminal:
			terminals++
		case network.KindRoutingNode:
			routers++
		case network.KindAmplifier:
			amps++
		}
	}
	metrics.DefaultRegistry().RecordTopology(terminals, routers, amps, len(net.Links()), spans)

	return sc, nil
}
