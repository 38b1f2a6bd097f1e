// Package switching installs the routing and channel-assignment state
// that isolates the covert channel end to end: background channels pass
// the two routing nodes on the line ports, the covert channel enters only
// through the sender's add port and leaves only through the receiver's
// drop port.
package switching

import (
	"fmt"

	"github.com/dd0wney/cluso-optical/pkg/logging"
	"github.com/dd0wney/cluso-optical/pkg/metrics"
	"github.com/dd0wney/cluso-optical/pkg/network"
	"github.com/dd0wney/cluso-optical/pkg/topology"
)

// Configurator populates flow tables and transceiver bindings on a built
// scenario, then activates its terminals.
type Configurator struct {
	log     logging.Logger
	metrics *metrics.Registry
}

// Option configures a Configurator.
type Option func(*Configurator)

// WithLogger sets the configurator's logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Configurator) { c.log = l }
}

// WithMetrics sets the configurator's metrics registry.
func WithMetrics(m *metrics.Registry) Option {
	return func(c *Configurator) { c.metrics = m }
}

// New creates a configurator.
func New(opts ...Option) *Configurator {
	c := &Configurator{
		log:     logging.Nop(),
		metrics: metrics.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure installs all flow rules and transceiver bindings. Any failure
// is a fatal configuration error; nothing may be activated afterwards.
func (c *Configurator) Configure(sc *topology.Scenario) error {
	if err := c.installRules(sc); err != nil {
		c.metrics.RecordConfigurationError("switching")
		return err
	}
	if err := c.bindTransceivers(sc); err != nil {
		c.metrics.RecordConfigurationError("binding")
		return err
	}
	return nil
}

func (c *Configurator) installRules(sc *topology.Scenario) error {
	p := sc.Params
	background := p.BackgroundChannels()

	// Sender side: background passes line-in to line-out. The covert
	// channel gets no line-in rule, so it can only enter via the add port.
	if err := sc.SenderR.InstallRule(network.LineIn(1), network.LineOut(1), background); err != nil {
		return fmt.Errorf("sender pass-through rules: %w", err)
	}
	if err := sc.SenderR.InstallRule(network.AddPort(1), network.LineOut(1), []int{p.CovertChannel}); err != nil {
		return fmt.Errorf("covert add rule: %w", err)
	}

	// Receiver side: the covert channel alone drops to the receiver;
	// everything else continues on the line.
	if err := sc.ReceiverR.InstallRule(network.LineIn(1), network.DropPort(1), []int{p.CovertChannel}); err != nil {
		return fmt.Errorf("covert drop rule: %w", err)
	}
	if err := sc.ReceiverR.InstallRule(network.LineIn(1), network.LineOut(1), background); err != nil {
		return fmt.Errorf("receiver pass-through rules: %w", err)
	}

	c.metrics.RecordFlowRules(sc.SenderR.Name(), len(sc.SenderR.Rules()))
	c.metrics.RecordFlowRules(sc.ReceiverR.Name(), len(sc.ReceiverR.Rules()))
	c.log.Info("flow tables installed",
		logging.Component("switching"),
		logging.Channel(p.CovertChannel),
		logging.Count(len(sc.SenderR.Rules())+len(sc.ReceiverR.Rules())),
	)
	return nil
}

func (c *Configurator) bindTransceivers(sc *topology.Scenario) error {
	p := sc.Params

	// Background transmitters: one distinct channel and launch port each.
	for i, ch := range p.BackgroundChannels() {
		if err := sc.Background.BindTransmit(i+1, ch, network.TransmitPort(i+1)); err != nil {
			return fmt.Errorf("background transmitter %d: %w", i+1, err)
		}
		c.metrics.RecordBinding(sc.Background.Name(), "tx")
	}

	// The covert pair share the channel index; the receiver binds the
	// same physical port the drop link lands on.
	if err := sc.Sender.BindTransmit(1, p.CovertChannel, network.TransmitPort(1)); err != nil {
		return fmt.Errorf("covert transmitter: %w", err)
	}
	c.metrics.RecordBinding(sc.Sender.Name(), "tx")

	if err := sc.Receiver.BindReceive(1, p.CovertChannel, network.ReceivePort(1)); err != nil {
		return fmt.Errorf("covert receiver: %w", err)
	}
	c.metrics.RecordBinding(sc.Receiver.Name(), "rx")

	c.log.Info("transceivers bound",
		logging.Component("switching"),
		logging.Count(len(p.BackgroundChannels())+2),
	)
	return nil
}

// Activate turns on the scenario's terminals. Call only after Configure
// has succeeded, so propagation is deterministic from the first sample.
func (c *Configurator) Activate(sc *topology.Scenario) {
	sc.Background.Activate()
	sc.Sender.Activate()
	sc.Receiver.Activate()
	c.metrics.RecordActivation(3)
	c.log.Info("terminals activated", logging.Component("switching"), logging.Count(3))
}
