// Command covert-eval runs one deterministic evaluation of a covert
// optical transmission: it builds the fixed topology, installs switching
// state, activates the terminals, samples the three observation points,
// and reports the eavesdropper's relative-entropy verdict and the
// receiver's achievable information rate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-optical/pkg/config"
	"github.com/dd0wney/cluso-optical/pkg/logging"
	"github.com/dd0wney/cluso-optical/pkg/report"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML overlay for the evaluation constants")
		sweep      = flag.Bool("sweep", false, "sweep the covert launch power and print the covertness/throughput trade-off")
		sweepFrom  = flag.Float64("sweep-from", -95, "sweep start power (dBm)")
		sweepTo    = flag.Float64("sweep-to", -65, "sweep end power (dBm)")
		sweepStep  = flag.Float64("sweep-step", 5, "sweep step (dB)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "covert-eval: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "covert-eval: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.New().String()
	logger := logging.NewDefaultLogger().With(logging.RunID(runID))

	if *sweep {
		if err := runSweep(os.Stdout, cfg, *sweepFrom, *sweepTo, *sweepStep, logger); err != nil {
			logger.Error("sweep failed", logging.Error(err))
			os.Exit(1)
		}
		return
	}

	data, sc, err := evaluate(cfg, runID, logger)
	if err != nil {
		logger.Error("evaluation failed", logging.Error(err))
		os.Exit(1)
	}

	if cfg.EmitTopologySketch {
		report.RenderTopologySketch(os.Stdout, sc)
	}
	report.Render(os.Stdout, data)
	if cfg.EmitTapSpectrum {
		report.RenderTapSpectrum(os.Stdout, data.Tap, cfg.CovertChannel)
	}
}
