package analysis

import "errors"

// Domain errors. These are scoped to the single metric they affect and
// never abort the other analysis.
var (
	ErrNonPositiveOSNR     = errors.New("relative entropy requires strictly positive OSNR")
	ErrChannelNotMonitored = errors.New("channel not present at monitoring point")
)
