package switching

import (
	"testing"

	"github.com/dd0wney/cluso-optical/pkg/network"
	"github.com/dd0wney/cluso-optical/pkg/topology"
)

func configured(t *testing.T) *topology.Scenario {
	t.Helper()
	sc, err := topology.Build(topology.DefaultParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := New().Configure(sc); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return sc
}

func TestCovertChannelIsolation(t *testing.T) {
	sc := configured(t)
	covert := sc.Params.CovertChannel

	// The covert channel must not pass the sender switch on the line input:
	// its only way in is the add port.
	if out, ok := sc.SenderR.Lookup(network.LineIn(1), covert); ok {
		t.Errorf("sender switch forwards covert channel from line-in to %s", out)
	}
	out, ok := sc.SenderR.Lookup(network.AddPort(1), covert)
	if !ok || out != network.LineOut(1) {
		t.Errorf("covert add rule = %s, %v; want %s", out, ok, network.LineOut(1))
	}

	// At the receiver switch the covert channel drops and goes nowhere else.
	out, ok = sc.ReceiverR.Lookup(network.LineIn(1), covert)
	if !ok || out != network.DropPort(1) {
		t.Errorf("covert drop rule = %s, %v; want %s", out, ok, network.DropPort(1))
	}
}

func TestBackgroundPassThrough(t *testing.T) {
	sc := configured(t)

	for _, ch := range sc.Params.BackgroundChannels() {
		out, ok := sc.SenderR.Lookup(network.LineIn(1), ch)
		if !ok || out != network.LineOut(1) {
			t.Errorf("sender switch, channel %d: rule = %s, %v", ch, out, ok)
		}
		out, ok = sc.ReceiverR.Lookup(network.LineIn(1), ch)
		if !ok || out != network.LineOut(1) {
			t.Errorf("receiver switch, channel %d: rule = %s, %v", ch, out, ok)
		}
		// Background channels never reach the drop port.
		if out, ok := sc.ReceiverR.Lookup(network.LineIn(1), ch); ok && out == network.DropPort(1) {
			t.Errorf("background channel %d drops to the receiver", ch)
		}
	}
}

func TestRuleCounts(t *testing.T) {
	sc := configured(t)
	n := len(sc.Params.BackgroundChannels())

	if got := len(sc.SenderR.Rules()); got != n+1 {
		t.Errorf("sender switch has %d rules, want %d", got, n+1)
	}
	if got := len(sc.ReceiverR.Rules()); got != n+1 {
		t.Errorf("receiver switch has %d rules, want %d", got, n+1)
	}
}

func TestTransceiverBindings(t *testing.T) {
	sc := configured(t)
	p := sc.Params

	bound := sc.Background.BoundChannels()
	if len(bound) != len(p.BackgroundChannels()) {
		t.Fatalf("background terminal bound %d channels, want %d", len(bound), len(p.BackgroundChannels()))
	}
	for _, ch := range bound {
		if ch == p.CovertChannel {
			t.Errorf("background terminal bound the covert channel %d", ch)
		}
	}

	senderBound := sc.Sender.BoundChannels()
	if len(senderBound) != 1 || senderBound[0] != p.CovertChannel {
		t.Errorf("sender bound channels = %v, want [%d]", senderBound, p.CovertChannel)
	}
	receiverBound := sc.Receiver.BoundChannels()
	if len(receiverBound) != 1 || receiverBound[0] != p.CovertChannel {
		t.Errorf("receiver bound channels = %v, want [%d]", receiverBound, p.CovertChannel)
	}
}

func TestActivation(t *testing.T) {
	sc := configured(t)

	if sc.Background.IsActive() || sc.Sender.IsActive() || sc.Receiver.IsActive() {
		t.Fatal("terminals active before Activate")
	}
	New().Activate(sc)
	if !sc.Background.IsActive() || !sc.Sender.IsActive() || !sc.Receiver.IsActive() {
		t.Error("terminals not active after Activate")
	}
}

func TestConfigureIsNotRepeatable(t *testing.T) {
	sc := configured(t)

	// Rules re-install as no-ops, but the write-once transceiver bindings
	// make a second full pass fail.
	if err := New().Configure(sc); err == nil {
		t.Error("second Configure succeeded; bindings should be write-once")
	}
}
