// Package physics is the physical link model behind the evaluation: a
// deterministic per-channel propagation of signal, ASE noise, and NLI
// noise from every active transmitter through flow rules and fiber spans.
// It records the field state at each point light crosses, so monitors can
// be attached to any node after the fact. There is no randomness anywhere;
// two runs over the same configured network produce identical samples.
package physics

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-optical/pkg/monitor"
	"github.com/dd0wney/cluso-optical/pkg/network"
)

// planck is the Planck constant in J*s, used for the ASE photon energy.
const planck = 6.62607015e-34

// maxHops bounds a single channel's traversal so a mis-specified flow
// table cannot loop forever.
const maxHops = 64

type fieldState struct {
	signal float64
	ase    float64
	nli    float64
}

type obsKey struct {
	node string
	port network.Port
}

// Engine implements the monitoring contract over a configured network.
// Every query re-propagates from the current network state; samples are
// never cached.
type Engine struct {
	net *network.Network
	cfg Config
}

// New creates an engine over the given network.
func New(net *network.Network, cfg Config) *Engine {
	return &Engine{net: net, cfg: cfg}
}

// MonitorAt returns the per-channel state observed at a node. With a port
// filter only light crossing that port is reported; without one, light on
// all of the node's ports is merged (summing per channel).
func (e *Engine) MonitorAt(node string, port *network.Port) (map[int]monitor.Sample, error) {
	if _, err := e.net.Node(node); err != nil {
		return nil, err
	}
	obs := e.propagate()

	out := make(map[int]monitor.Sample)
	for key, channels := range obs {
		if key.node != node {
			continue
		}
		if port != nil && key.port != *port {
			continue
		}
		for ch, st := range channels {
			s := out[ch]
			s.Channel = ch
			s.Signal += st.signal
			s.ASE += st.ase
			s.NLI += st.nli
			out[ch] = s
		}
	}
	return out, nil
}

// MonitorOSNR returns the per-channel OSNR in dB across the node's whole
// monitoring scope.
func (e *Engine) MonitorOSNR(node string) ([]monitor.ChannelOSNR, error) {
	samples, err := e.MonitorAt(node, nil)
	if err != nil {
		return nil, err
	}
	out := make([]monitor.ChannelOSNR, 0, len(samples))
	for ch, s := range samples {
		out = append(out, monitor.ChannelOSNR{Channel: ch, DB: s.OSNRdB()})
	}
	return out, nil
}

// propagate walks every bound transmit channel of every active terminal
// through the network and returns the observed field states.
func (e *Engine) propagate() map[obsKey]map[int]fieldState {
	obs := make(map[obsKey]map[int]fieldState)

	for _, node := range e.net.Nodes() {
		term, ok := node.(*network.Terminal)
		if !ok || !term.IsActive() {
			continue
		}
		for _, x := range term.Transceivers() {
			if !x.Bound() || x.ReceiveOnly() {
				continue
			}
			st := fieldState{signal: monitor.DBmToWatts(x.LaunchDBm())}
			record(obs, term.Name(), x.Port(), x.Channel(), st)

			link, ok := e.net.LinkFrom(term.Name(), x.Port())
			if !ok {
				// Transceivers launch onto the terminal's trunk when
				// their client port has no dedicated link.
				link, ok = e.net.TrunkFrom(term.Name())
			}
			if !ok {
				continue
			}
			e.traverse(obs, x.Channel(), st, link, 0)
		}
	}
	return obs
}

func (e *Engine) traverse(obs map[obsKey]map[int]fieldState, ch int, st fieldState, l *network.Link, hops int) {
	if hops >= maxHops {
		return
	}
	if b := l.Boost(); b != nil {
		st = e.amplify(obs, ch, st, b)
	}
	for _, span := range l.Spans() {
		st = e.span(obs, ch, st, span)
	}

	dst := l.Dst()
	record(obs, dst.Name(), l.DstPort(), ch, st)

	switch node := dst.(type) {
	case *network.RoutingNode:
		out, ok := node.Lookup(l.DstPort(), ch)
		if !ok {
			// No rule: the channel terminates here.
			return
		}
		record(obs, node.Name(), out, ch, st)
		next, ok := e.net.LinkFrom(node.Name(), out)
		if !ok {
			return
		}
		e.traverse(obs, ch, st, next, hops+1)
	case *network.Terminal:
		// Receiver input; light goes no further.
	}
}

// span applies one fiber segment: attenuation of all fields, the span's
// NLI contribution, and the trailing in-line amplifier if present.
func (e *Engine) span(obs map[obsKey]map[int]fieldState, ch int, st fieldState, s network.Segment) fieldState {
	pIn := st.signal
	att := math.Pow(10, -e.cfg.AttenuationDBPerKm*s.LengthKm/10)
	st.signal *= att
	st.ase *= att
	st.nli *= att
	st.nli += e.cfg.NLICoefficient * pIn * pIn * pIn * att

	if s.Amp != nil {
		st = e.amplify(obs, ch, st, s.Amp)
	}
	return st
}

// amplify records the field at the amplifier's input, then applies gain
// and the amplifier's ASE contribution (G-1)*NF*h*nu*Bref.
func (e *Engine) amplify(obs map[obsKey]map[int]fieldState, ch int, st fieldState, a *network.Amplifier) fieldState {
	record(obs, a.Name(), network.LineIn(1), ch, st)

	g := monitor.DBToLinear(a.GainDB())
	nf := monitor.DBToLinear(e.cfg.NoiseFigureDB)
	st.signal *= g
	st.nli *= g
	st.ase = st.ase*g + (g-1)*nf*planck*e.cfg.CenterFrequencyHz*e.cfg.ReferenceBandwidthHz
	return st
}

func record(obs map[obsKey]map[int]fieldState, node string, port network.Port, ch int, st fieldState) {
	key := obsKey{node: node, port: port}
	channels, ok := obs[key]
	if !ok {
		channels = make(map[int]fieldState)
		obs[key] = channels
	}
	prev := channels[ch]
	prev.signal += st.signal
	prev.ase += st.ase
	prev.nli += st.nli
	channels[ch] = prev
}

// Describe summarises the engine configuration for logs and reports.
func (e *Engine) Describe() string {
	return fmt.Sprintf("attenuation %.2f dB/km, noise figure %.1f dB, reference bandwidth %.1f GHz",
		e.cfg.AttenuationDBPerKm, e.cfg.NoiseFigureDB, e.cfg.ReferenceBandwidthHz/1e9)
}
