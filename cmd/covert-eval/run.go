package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/dd0wney/cluso-optical/pkg/analysis"
	"github.com/dd0wney/cluso-optical/pkg/config"
	"github.com/dd0wney/cluso-optical/pkg/logging"
	"github.com/dd0wney/cluso-optical/pkg/monitor"
	"github.com/dd0wney/cluso-optical/pkg/physics"
	"github.com/dd0wney/cluso-optical/pkg/report"
	"github.com/dd0wney/cluso-optical/pkg/switching"
	"github.com/dd0wney/cluso-optical/pkg/topology"
)

// evaluate runs one complete pass: build, configure, activate, sample,
// analyze. The returned scenario is only used for the optional sketch.
func evaluate(cfg config.Config, runID string, logger logging.Logger) (report.Data, *topology.Scenario, error) {
	timer := logging.StartTimer(logger, "evaluation complete")

	sc, err := topology.Build(cfg.ScenarioParams())
	if err != nil {
		timer.EndError(err)
		return report.Data{}, nil, fmt.Errorf("topology: %w", err)
	}

	configurator := switching.New(switching.WithLogger(logger))
	if err := configurator.Configure(sc); err != nil {
		timer.EndError(err)
		return report.Data{}, nil, fmt.Errorf("switching: %w", err)
	}
	configurator.Activate(sc)

	engine := physics.New(sc.Net, physics.DefaultConfig())
	mon := monitor.NewAdapter(engine, monitor.WithLogger(logger))

	launch, err := launchSamples(mon)
	if err != nil {
		timer.EndError(err)
		return report.Data{}, nil, err
	}
	tap, err := mon.SamplesAt(topology.TapAmplifier, nil)
	if err != nil {
		timer.EndError(err)
		return report.Data{}, nil, err
	}
	receiver, err := mon.SamplesAt(topology.ReceiverTerminal, nil)
	if err != nil {
		timer.EndError(err)
		return report.Data{}, nil, err
	}

	analyzer := analysis.NewAnalyzer(mon, cfg.CovertChannel, cfg.ChannelUses, cfg.REBudget,
		analysis.WithLogger(logger))
	result, err := analyzer.Evaluate(topology.TapAmplifier, topology.ReceiverTerminal)
	if err != nil {
		timer.EndError(err)
		return report.Data{}, nil, fmt.Errorf("analysis: %w", err)
	}

	timer.End()
	return report.Data{
		RunID:         runID,
		CovertChannel: cfg.CovertChannel,
		Uses:          cfg.ChannelUses,
		Launch:        launch,
		Tap:           tap,
		Receiver:      receiver,
		Eavesdropper:  result.Eavesdropper,
		Bob:           result.Receiver,
	}, sc, nil
}

// launchSamples merges the background and covert sender launch powers
// into one per-channel table.
func launchSamples(mon *monitor.Adapter) ([]monitor.Sample, error) {
	background, err := mon.SamplesAt(topology.BackgroundTerminal, nil)
	if err != nil {
		return nil, err
	}
	covert, err := mon.SamplesAt(topology.SenderTerminal, nil)
	if err != nil {
		return nil, err
	}
	merged := append(background, covert...)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Channel < merged[j].Channel })
	return merged, nil
}

// runSweep re-runs the evaluation across covert launch powers and prints
// the covertness/throughput trade-off. Every point is an independent full
// pass over a freshly built topology.
func runSweep(w io.Writer, cfg config.Config, fromDBm, toDBm, stepDB float64, logger logging.Logger) error {
	if stepDB <= 0 {
		return fmt.Errorf("sweep step %g must be positive", stepDB)
	}

	fmt.Fprintln(w, "--- Covert Power Sweep ---")
	fmt.Fprintf(w, "%-14s %14s %18s %14s\n", "Power (dBm)", "Total RE", "Verdict", "Bits")

	for p := fromDBm; p <= toDBm; p += stepDB {
		point := cfg
		point.CovertPowerDBm = p

		runID := fmt.Sprintf("sweep %+.1f dBm", p)
		data, _, err := evaluate(point, runID, logger)
		if err != nil {
			return err
		}

		if data.Eavesdropper.Err != nil {
			fmt.Fprintf(w, "%-14.1f %14s %18s %14s\n", p, "-", "not scoreable", "-")
			continue
		}
		fmt.Fprintf(w, "%-14.1f %14.6g %18s %14.6g\n",
			p, data.Eavesdropper.TotalRE, data.Eavesdropper.Verdict, data.Bob.Bits)
	}
	return nil
}
