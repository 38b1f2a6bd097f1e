package network

import "fmt"

// TransceiverDef declares one transceiver when a terminal is created.
// LaunchDBm is ignored for receive-only transceivers.
type TransceiverDef struct {
	ID          int
	LaunchDBm   float64
	ReceiveOnly bool
}

// Transceiver is a terminal's per-channel transmit or receive unit. A
// transceiver starts unbound and is bound to exactly one (channel, port)
// pair once per run; rebinding is a configuration error.
type Transceiver struct {
	id          int
	launchDBm   float64
	receiveOnly bool

	bound   bool
	channel int
	port    Port
}

// ID returns the transceiver's numeric identifier, unique per terminal.
func (x *Transceiver) ID() int { return x.id }

// LaunchDBm returns the launch power in dBm. Meaningless for receive-only units.
func (x *Transceiver) LaunchDBm() float64 { return x.launchDBm }

// ReceiveOnly reports whether the unit has no transmitter.
func (x *Transceiver) ReceiveOnly() bool { return x.receiveOnly }

// Bound reports whether the transceiver has been assigned a channel and port.
func (x *Transceiver) Bound() bool { return x.bound }

// Channel returns the bound channel index. Only valid when Bound.
func (x *Transceiver) Channel() int { return x.channel }

// Port returns the bound physical port. Only valid when Bound.
func (x *Transceiver) Port() Port { return x.port }

// Terminal is a line terminal hosting an ordered collection of transceivers.
type Terminal struct {
	name         string
	transceivers []*Transceiver
	active       bool
}

// Name returns the terminal's unique name.
func (t *Terminal) Name() string { return t.name }

// Kind returns KindTerminal.
func (t *Terminal) Kind() NodeKind { return KindTerminal }

// Transceivers returns the terminal's transceivers in declaration order.
func (t *Terminal) Transceivers() []*Transceiver {
	out := make([]*Transceiver, len(t.transceivers))
	copy(out, t.transceivers)
	return out
}

// Transceiver looks up a transceiver by its numeric identifier.
func (t *Terminal) Transceiver(id int) (*Transceiver, error) {
	for _, x := range t.transceivers {
		if x.id == id {
			return x, nil
		}
	}
	return nil, fmt.Errorf("terminal %s, transceiver %d: %w", t.name, id, ErrUnknownTransceiver)
}

// BindTransmit assigns a transmitter to a channel and launch port. Binding
// is write-once; the channel and port must be unused on this terminal.
func (t *Terminal) BindTransmit(id, channel int, out Port) error {
	x, err := t.Transceiver(id)
	if err != nil {
		return err
	}
	if x.receiveOnly {
		return fmt.Errorf("terminal %s, transceiver %d is receive-only: %w", t.name, id, ErrPortDirection)
	}
	if out.Direction() != Out {
		return fmt.Errorf("terminal %s, transceiver %d, port %s: %w", t.name, id, out, ErrPortDirection)
	}
	return t.bind(x, channel, out)
}

// BindReceive assigns a receiver to a channel and receive port, with the
// same write-once and uniqueness rules as BindTransmit.
func (t *Terminal) BindReceive(id, channel int, in Port) error {
	x, err := t.Transceiver(id)
	if err != nil {
		return err
	}
	if in.Direction() != In {
		return fmt.Errorf("terminal %s, transceiver %d, port %s: %w", t.name, id, in, ErrPortDirection)
	}
	return t.bind(x, channel, in)
}

func (t *Terminal) bind(x *Transceiver, channel int, p Port) error {
	if channel < 1 {
		return fmt.Errorf("terminal %s, channel %d: %w", t.name, channel, ErrInvalidChannel)
	}
	if x.bound {
		return fmt.Errorf("terminal %s, transceiver %d: %w", t.name, x.id, ErrTransceiverBound)
	}
	for _, other := range t.transceivers {
		if !other.bound {
			continue
		}
		if other.channel == channel {
			return fmt.Errorf("terminal %s, channel %d: %w", t.name, channel, ErrChannelBound)
		}
		if other.port == p {
			return fmt.Errorf("terminal %s, port %s: %w", t.name, p, ErrPortBound)
		}
	}
	x.bound = true
	x.channel = channel
	x.port = p
	return nil
}

// BoundChannels returns the channels bound on this terminal, in binding order.
func (t *Terminal) BoundChannels() []int {
	var chs []int
	for _, x := range t.transceivers {
		if x.bound {
			chs = append(chs, x.channel)
		}
	}
	return chs
}

// Activate turns the terminal on. The physical model begins producing
// signal on the terminal's bound transmit channels from this point; all
// routing and binding state must already be installed.
func (t *Terminal) Activate() { t.active = true }

// IsActive reports whether the terminal has been turned on.
func (t *Terminal) IsActive() bool { return t.active }
