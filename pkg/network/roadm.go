package network

import (
	"fmt"
	"sort"
)

type ruleKey struct {
	in      Port
	channel int
}

// FlowRule is one installed forwarding entry, exported for reports and tests.
type FlowRule struct {
	In      Port
	Out     Port
	Channel int
}

// RoutingNode is a wavelength-selective switch. Its flow table maps
// (input port, channel) to exactly one output port; several channels may
// share an input/output port pair, but a single channel on a single input
// can never be routed to two different outputs.
type RoutingNode struct {
	name  string
	rules map[ruleKey]Port
}

// Name returns the routing node's unique name.
func (r *RoutingNode) Name() string { return r.name }

// Kind returns KindRoutingNode.
func (r *RoutingNode) Kind() NodeKind { return KindRoutingNode }

// InstallRule routes the given channels from an input port to an output
// port. Re-installing an identical rule is a no-op; installing a rule that
// sends an already-routed (input, channel) pair to a different output
// fails with ErrAmbiguousRule and leaves the table untouched.
func (r *RoutingNode) InstallRule(in, out Port, channels []int) error {
	if in.Direction() != In {
		return fmt.Errorf("routing node %s, input %s: %w", r.name, in, ErrPortDirection)
	}
	if out.Direction() != Out {
		return fmt.Errorf("routing node %s, output %s: %w", r.name, out, ErrPortDirection)
	}
	for _, ch := range channels {
		if ch < 1 {
			return fmt.Errorf("routing node %s, channel %d: %w", r.name, ch, ErrInvalidChannel)
		}
		if existing, ok := r.rules[ruleKey{in: in, channel: ch}]; ok && existing != out {
			return fmt.Errorf("routing node %s, input %s, channel %d already routed to %s: %w",
				r.name, in, ch, existing, ErrAmbiguousRule)
		}
	}
	for _, ch := range channels {
		r.rules[ruleKey{in: in, channel: ch}] = out
	}
	return nil
}

// Lookup resolves the output port for a channel arriving on an input port.
// A miss means the channel terminates at this node.
func (r *RoutingNode) Lookup(in Port, channel int) (Port, bool) {
	out, ok := r.rules[ruleKey{in: in, channel: channel}]
	return out, ok
}

// Rules returns the installed flow table sorted by input port, then channel.
func (r *RoutingNode) Rules() []FlowRule {
	out := make([]FlowRule, 0, len(r.rules))
	for k, v := range r.rules {
		out = append(out, FlowRule{In: k.in, Out: v, Channel: k.channel})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].In != out[j].In {
			if out[i].In.Kind != out[j].In.Kind {
				return out[i].In.Kind < out[j].In.Kind
			}
			return out[i].In.Index < out[j].In.Index
		}
		return out[i].Channel < out[j].Channel
	})
	return out
}
