package network

import "errors"

// Configuration errors. All of them are fatal for the run: a topology with
// ambiguous routing or double-bound hardware cannot be evaluated meaningfully.
var (
	ErrDuplicateNode      = errors.New("node name already in use")
	ErrUnknownNode        = errors.New("node not found")
	ErrNotTerminal        = errors.New("node is not a terminal")
	ErrNotRoutingNode     = errors.New("node is not a routing node")
	ErrPortBound          = errors.New("port already bound to a link")
	ErrPortDirection      = errors.New("port direction does not match its role")
	ErrAmbiguousRule      = errors.New("flow rule conflicts with an installed rule")
	ErrUnknownTransceiver = errors.New("transceiver not found")
	ErrTransceiverBound   = errors.New("transceiver already bound")
	ErrChannelBound       = errors.New("channel already bound on this terminal")
	ErrInvalidChannel     = errors.New("channel index must be positive")
	ErrNoSegments         = errors.New("link requires at least one segment")
	ErrSegmentLength      = errors.New("segment length must be positive")
)
