package monitor

import (
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-optical/pkg/logging"
	"github.com/dd0wney/cluso-optical/pkg/metrics"
	"github.com/dd0wney/cluso-optical/pkg/network"
)

// Source is the monitoring contract the physical link model supplies.
// Both calls are pure reads of the model's current state.
type Source interface {
	// MonitorAt returns the per-channel state observed at a node. With a
	// port filter only channels present at that port are returned; without
	// one the node's whole monitoring scope is reported.
	MonitorAt(node string, port *network.Port) (map[int]Sample, error)
	// MonitorOSNR returns (channel, OSNR dB) pairs observed at a node.
	MonitorOSNR(node string) ([]ChannelOSNR, error)
}

// Adapter wraps a Source and returns ordered, fixed-shape sample records.
// It never mutates network or model state.
type Adapter struct {
	src     Source
	log     logging.Logger
	metrics *metrics.Registry
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the adapter's logger.
func WithLogger(l logging.Logger) Option {
	return func(a *Adapter) { a.log = l }
}

// WithMetrics sets the adapter's metrics registry.
func WithMetrics(m *metrics.Registry) Option {
	return func(a *Adapter) { a.metrics = m }
}

// NewAdapter creates an adapter over the given source.
func NewAdapter(src Source, opts ...Option) *Adapter {
	a := &Adapter{
		src:     src,
		log:     logging.Nop(),
		metrics: metrics.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SamplesAt returns the samples observed at a node, sorted by channel.
func (a *Adapter) SamplesAt(node string, port *network.Port) ([]Sample, error) {
	byChannel, err := a.src.MonitorAt(node, port)
	if err != nil {
		return nil, fmt.Errorf("monitor at %s: %w", node, err)
	}

	out := make([]Sample, 0, len(byChannel))
	degenerate := 0
	for _, s := range byChannel {
		if s.Signal <= 0 {
			degenerate++
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Channel < out[j].Channel })

	a.metrics.RecordMonitorQuery(node, len(out), degenerate)
	a.log.Debug("monitor read",
		logging.NodeName(node),
		logging.Count(len(out)),
	)
	return out, nil
}

// ChannelAt returns a single channel's sample at a node, with ok=false
// when the channel is not present there.
func (a *Adapter) ChannelAt(node string, port *network.Port, channel int) (Sample, bool, error) {
	samples, err := a.SamplesAt(node, port)
	if err != nil {
		return Sample{}, false, err
	}
	for _, s := range samples {
		if s.Channel == channel {
			return s, true, nil
		}
	}
	return Sample{}, false, nil
}

// OSNRAt returns the per-channel OSNR in dB at a node, sorted by channel.
func (a *Adapter) OSNRAt(node string) ([]ChannelOSNR, error) {
	osnr, err := a.src.MonitorOSNR(node)
	if err != nil {
		return nil, fmt.Errorf("monitor OSNR at %s: %w", node, err)
	}
	sort.Slice(osnr, func(i, j int) bool { return osnr[i].Channel < osnr[j].Channel })
	a.metrics.RecordMonitorQuery(node, len(osnr), 0)
	return osnr, nil
}
