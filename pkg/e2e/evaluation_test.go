// Package e2e exercises the full evaluation pipeline: topology build,
// switching configuration, physical propagation, and both detection
// analyses, using the shipped defaults end to end.
package e2e

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-optical/pkg/analysis"
	"github.com/dd0wney/cluso-optical/pkg/config"
	"github.com/dd0wney/cluso-optical/pkg/monitor"
	"github.com/dd0wney/cluso-optical/pkg/physics"
	"github.com/dd0wney/cluso-optical/pkg/report"
	"github.com/dd0wney/cluso-optical/pkg/switching"
	"github.com/dd0wney/cluso-optical/pkg/topology"
)

// runPipeline builds, configures, and analyzes one scenario.
func runPipeline(t *testing.T, cfg config.Config) (analysis.Result, *monitor.Adapter) {
	t.Helper()
	require.NoError(t, cfg.Validate())

	sc, err := topology.Build(cfg.ScenarioParams())
	require.NoError(t, err)

	configurator := switching.New()
	require.NoError(t, configurator.Configure(sc))
	configurator.Activate(sc)

	mon := monitor.NewAdapter(physics.New(sc.Net, physics.DefaultConfig()))
	analyzer := analysis.NewAnalyzer(mon, cfg.CovertChannel, cfg.ChannelUses, cfg.REBudget)

	result, err := analyzer.Evaluate(topology.TapAmplifier, topology.ReceiverTerminal)
	require.NoError(t, err)
	return result, mon
}

func TestDefaultScenarioStaysCovert(t *testing.T) {
	cfg := config.Default()
	result, mon := runPipeline(t, cfg)

	require.NoError(t, result.Eavesdropper.Err)
	assert.Equal(t, analysis.VerdictWithinBudget, result.Eavesdropper.Verdict)
	assert.Less(t, result.Eavesdropper.TotalRE, cfg.REBudget)
	assert.Greater(t, result.Eavesdropper.TotalRE, 0.0)

	require.NoError(t, result.Receiver.Err)
	assert.Greater(t, result.Receiver.Bits, 0.0,
		"the receiver should still decode something at the default covert power")

	// The tap sees every channel in the plan: background plus covert.
	tap, err := mon.SamplesAt(topology.TapAmplifier, nil)
	require.NoError(t, err)
	assert.Len(t, tap, cfg.TxCount)

	// The receiver terminal sees only the dropped covert channel.
	rx, err := mon.SamplesAt(topology.ReceiverTerminal, nil)
	require.NoError(t, err)
	require.Len(t, rx, 1)
	assert.Equal(t, cfg.CovertChannel, rx[0].Channel)
}

func TestRaisedPowerIsDetected(t *testing.T) {
	cfg := config.Default()
	quiet, _ := runPipeline(t, cfg)

	loud := config.Default()
	loud.CovertPowerDBm = -74
	detected, _ := runPipeline(t, loud)

	require.NoError(t, detected.Eavesdropper.Err)
	assert.Equal(t, analysis.VerdictBudgetExceeded, detected.Eavesdropper.Verdict)
	assert.GreaterOrEqual(t, detected.Eavesdropper.TotalRE, loud.REBudget)

	// More power buys throughput at the cost of covertness.
	require.NoError(t, quiet.Receiver.Err)
	require.NoError(t, detected.Receiver.Err)
	assert.Greater(t, detected.Receiver.Bits, quiet.Receiver.Bits)
	assert.Greater(t, detected.Eavesdropper.TotalRE, quiet.Eavesdropper.TotalRE)
}

func TestSilentSenderScoresIndependently(t *testing.T) {
	cfg := config.Default()
	sc, err := topology.Build(cfg.ScenarioParams())
	require.NoError(t, err)
	require.NoError(t, switching.New().Configure(sc))

	// Everyone but the covert sender comes up.
	sc.Background.Activate()
	sc.Receiver.Activate()

	mon := monitor.NewAdapter(physics.New(sc.Net, physics.DefaultConfig()))
	analyzer := analysis.NewAnalyzer(mon, cfg.CovertChannel, cfg.ChannelUses, cfg.REBudget)

	result, err := analyzer.Evaluate(topology.TapAmplifier, topology.ReceiverTerminal)
	require.NoError(t, err, "domain errors must not abort the evaluation")

	// No covert light anywhere: each metric reports its own domain error.
	assert.ErrorIs(t, result.Eavesdropper.Err, analysis.ErrNonPositiveOSNR)
	assert.ErrorIs(t, result.Receiver.Err, analysis.ErrChannelNotMonitored)
}

func TestBackgroundChannelsTraverseBothSwitches(t *testing.T) {
	cfg := config.Default()
	_, mon := runPipeline(t, cfg)

	// Background channels pass r1 and r2 onto the west-bound return link;
	// the covert channel must not be among them.
	osnrs, err := mon.OSNRAt(topology.ReceiverRoadm)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, o := range osnrs {
		seen[o.Channel] = true
	}
	for ch := 1; ch <= cfg.TxCount; ch++ {
		assert.True(t, seen[ch], "channel %d missing at the receiver switch", ch)
	}
}

func TestReportRendersEndToEnd(t *testing.T) {
	cfg := config.Default()
	result, mon := runPipeline(t, cfg)

	tap, err := mon.SamplesAt(topology.TapAmplifier, nil)
	require.NoError(t, err)
	rx, err := mon.SamplesAt(topology.ReceiverTerminal, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	report.Render(&buf, report.Data{
		RunID:         "e2e",
		CovertChannel: cfg.CovertChannel,
		Uses:          cfg.ChannelUses,
		Tap:           tap,
		Receiver:      rx,
		Eavesdropper:  result.Eavesdropper,
		Bob:           result.Receiver,
	})

	out := buf.String()
	assert.Contains(t, out, "verdict: within budget")
	assert.Contains(t, out, "--- Receiver Capacity Estimate ---")
	assert.NotContains(t, out, "not scoreable")
}
