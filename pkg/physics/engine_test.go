package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/dd0wney/cluso-optical/pkg/monitor"
	"github.com/dd0wney/cluso-optical/pkg/network"
)

// pointToPoint builds t1 --(one 10 km span)--> t2 with channel 1 bound
// and both terminals active.
func pointToPoint(t *testing.T, boost *bool, launchDBm float64) (*network.Network, Config) {
	t.Helper()
	n := network.New()

	t1, err := n.AddTerminal("t1", []network.TransceiverDef{{ID: 1, LaunchDBm: launchDBm}})
	if err != nil {
		t.Fatal(err)
	}
	t2, err := n.AddTerminal("t2", []network.TransceiverDef{{ID: 1, ReceiveOnly: true}})
	if err != nil {
		t.Fatal(err)
	}

	var amp *network.Amplifier
	if boost != nil {
		if amp, err = n.AddAmplifier("boost", 17, true); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := n.AddLink("t1", "t2", network.TransmitPort(1), network.ReceivePort(1), amp,
		[]network.Segment{{LengthKm: 10}}); err != nil {
		t.Fatal(err)
	}

	if err := t1.BindTransmit(1, 1, network.TransmitPort(1)); err != nil {
		t.Fatal(err)
	}
	if err := t2.BindReceive(1, 1, network.ReceivePort(1)); err != nil {
		t.Fatal(err)
	}
	t1.Activate()
	t2.Activate()

	return n, DefaultConfig()
}

func TestLaunchObservation(t *testing.T) {
	n, cfg := pointToPoint(t, nil, -3)
	e := New(n, cfg)

	samples, err := e.MonitorAt("t1", nil)
	if err != nil {
		t.Fatalf("MonitorAt: %v", err)
	}
	s, ok := samples[1]
	if !ok {
		t.Fatal("channel 1 not observed at the transmitter")
	}
	want := monitor.DBmToWatts(-3)
	if math.Abs(s.Signal-want) > want*1e-12 {
		t.Errorf("launch signal = %v, want %v", s.Signal, want)
	}
	if s.ASE != 0 || s.NLI != 0 {
		t.Errorf("launch carries noise: ASE=%v NLI=%v", s.ASE, s.NLI)
	}
}

func TestSpanAttenuation(t *testing.T) {
	n, cfg := pointToPoint(t, nil, 0)
	e := New(n, cfg)

	samples, err := e.MonitorAt("t2", nil)
	if err != nil {
		t.Fatalf("MonitorAt: %v", err)
	}
	s := samples[1]

	att := math.Pow(10, -cfg.AttenuationDBPerKm*10/10)
	want := monitor.DBmToWatts(0) * att
	if math.Abs(s.Signal-want) > want*1e-12 {
		t.Errorf("received signal = %v, want %v", s.Signal, want)
	}
	if s.ASE != 0 {
		t.Errorf("unamplified span produced ASE: %v", s.ASE)
	}
	wantNLI := cfg.NLICoefficient * math.Pow(monitor.DBmToWatts(0), 3) * att
	if math.Abs(s.NLI-wantNLI) > wantNLI*1e-9 {
		t.Errorf("NLI = %v, want %v", s.NLI, wantNLI)
	}
}

func TestBoostAmplifier(t *testing.T) {
	withBoost := true
	n, cfg := pointToPoint(t, &withBoost, 0)
	e := New(n, cfg)

	// The amp input sees the raw launch power.
	atAmp, err := e.MonitorAt("boost", nil)
	if err != nil {
		t.Fatalf("MonitorAt(boost): %v", err)
	}
	launch := monitor.DBmToWatts(0)
	if math.Abs(atAmp[1].Signal-launch) > launch*1e-12 {
		t.Errorf("amp input signal = %v, want %v", atAmp[1].Signal, launch)
	}
	if atAmp[1].ASE != 0 {
		t.Errorf("amp input already carries its own ASE: %v", atAmp[1].ASE)
	}

	// Downstream, gain and ASE both apply.
	atRx, err := e.MonitorAt("t2", nil)
	if err != nil {
		t.Fatalf("MonitorAt(t2): %v", err)
	}
	g := monitor.DBToLinear(17)
	nf := monitor.DBToLinear(cfg.NoiseFigureDB)
	att := math.Pow(10, -cfg.AttenuationDBPerKm*10/10)

	wantSignal := launch * g * att
	if math.Abs(atRx[1].Signal-wantSignal) > wantSignal*1e-12 {
		t.Errorf("received signal = %v, want %v", atRx[1].Signal, wantSignal)
	}
	wantASE := (g - 1) * nf * planck * cfg.CenterFrequencyHz * cfg.ReferenceBandwidthHz * att
	if math.Abs(atRx[1].ASE-wantASE) > wantASE*1e-9 {
		t.Errorf("received ASE = %v, want %v", atRx[1].ASE, wantASE)
	}
}

func TestRoutingRules(t *testing.T) {
	n := network.New()
	t1, _ := n.AddTerminal("t1", []network.TransceiverDef{
		{ID: 1, LaunchDBm: 0},
		{ID: 2, LaunchDBm: 0},
	})
	t2, _ := n.AddTerminal("t2", []network.TransceiverDef{{ID: 1, ReceiveOnly: true}})
	r, _ := n.AddRoutingNode("r1")

	if _, err := n.AddLink("t1", "r1", network.LineOut(1), network.LineIn(1), nil,
		[]network.Segment{{LengthKm: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddLink("r1", "t2", network.DropPort(1), network.ReceivePort(1), nil,
		[]network.Segment{{LengthKm: 1}}); err != nil {
		t.Fatal(err)
	}

	if err := t1.BindTransmit(1, 1, network.TransmitPort(1)); err != nil {
		t.Fatal(err)
	}
	if err := t1.BindTransmit(2, 2, network.TransmitPort(2)); err != nil {
		t.Fatal(err)
	}
	// Only channel 2 is dropped to t2.
	if err := r.InstallRule(network.LineIn(1), network.DropPort(1), []int{2}); err != nil {
		t.Fatal(err)
	}
	t1.Activate()
	t2.Activate()

	e := New(n, DefaultConfig())

	atRouter, err := e.MonitorAt("r1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := atRouter[1]; !ok {
		t.Error("channel 1 should still reach the router's line input")
	}

	atRx, err := e.MonitorAt("t2", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := atRx[2]; !ok {
		t.Error("routed channel 2 did not reach the receiver")
	}
	if _, ok := atRx[1]; ok {
		t.Error("unrouted channel 1 leaked past the router")
	}
}

func TestInactiveTerminalIsDark(t *testing.T) {
	n, cfg := pointToPoint(t, nil, 0)
	e := New(n, cfg)

	// Deactivation is not modeled; build an inactive twin instead.
	n2 := network.New()
	t1, _ := n2.AddTerminal("t1", []network.TransceiverDef{{ID: 1, LaunchDBm: 0}})
	if err := t1.BindTransmit(1, 1, network.TransmitPort(1)); err != nil {
		t.Fatal(err)
	}
	e2 := New(n2, cfg)

	samples, err := e2.MonitorAt("t1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 0 {
		t.Errorf("inactive terminal produced %d samples", len(samples))
	}

	// Sanity: the active twin does produce light.
	active, err := e.MonitorAt("t1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) == 0 {
		t.Error("active terminal produced no samples")
	}
}

func TestMonitorUnknownNode(t *testing.T) {
	n, cfg := pointToPoint(t, nil, 0)
	e := New(n, cfg)

	if _, err := e.MonitorAt("ghost", nil); !errors.Is(err, network.ErrUnknownNode) {
		t.Errorf("MonitorAt(ghost) = %v, want ErrUnknownNode", err)
	}
	if _, err := e.MonitorOSNR("ghost"); !errors.Is(err, network.ErrUnknownNode) {
		t.Errorf("MonitorOSNR(ghost) = %v, want ErrUnknownNode", err)
	}
}

func TestDeterminism(t *testing.T) {
	withBoost := true
	n, cfg := pointToPoint(t, &withBoost, -10)
	e := New(n, cfg)

	first, err := e.MonitorAt("t2", nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.MonitorAt("t2", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("sample counts differ: %d vs %d", len(first), len(second))
	}
	for ch, a := range first {
		b := second[ch]
		if a != b {
			t.Errorf("channel %d differs between queries: %+v vs %+v", ch, a, b)
		}
	}
}

func TestPortFilter(t *testing.T) {
	n, cfg := pointToPoint(t, nil, 0)
	e := New(n, cfg)

	rx := network.ReceivePort(1)
	samples, err := e.MonitorAt("t2", &rx)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 1 {
		t.Fatalf("expected 1 channel at %s, got %d", rx, len(samples))
	}

	other := network.ReceivePort(2)
	empty, err := e.MonitorAt("t2", &other)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Errorf("port filter leaked %d channels", len(empty))
	}
}
