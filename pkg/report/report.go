// Package report renders the evaluation outcome as a sectioned,
// human-readable text report: launch powers, tap observations, the
// eavesdropper's verdict, receiver observations, and the capacity figure.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/dd0wney/cluso-optical/pkg/analysis"
	"github.com/dd0wney/cluso-optical/pkg/monitor"
)

const banner = "========================================================================"

// Data carries everything one rendered report needs.
type Data struct {
	RunID         string
	CovertChannel int
	Uses          int

	Launch   []monitor.Sample
	Tap      []monitor.Sample
	Receiver []monitor.Sample

	Eavesdropper analysis.EavesdropperResult
	Bob          analysis.ReceiverResult
}

// Render writes the full report.
func Render(w io.Writer, d Data) {
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, " Covert Transmission Evaluation (run %s)\n", d.RunID)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Transmit Power ---")
	fmt.Fprintf(w, "%-8s %14s\n", "Channel", "Launch (dBm)")
	for _, s := range d.Launch {
		marker := ""
		if s.Channel == d.CovertChannel {
			marker = "  covert"
		}
		fmt.Fprintf(w, "%-8d %14s%s\n", s.Channel, dbm(s.Signal), marker)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Eavesdropping Tap Input ---")
	renderSamples(w, d.Tap, d.CovertChannel)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Eavesdropper Relative-Entropy Test ---")
	if d.Eavesdropper.Err != nil {
		fmt.Fprintf(w, "not scoreable: %v\n", d.Eavesdropper.Err)
	} else {
		fmt.Fprintf(w, "OSNR (linear, ASE only): %.6g\n", d.Eavesdropper.OSNRLinear)
		fmt.Fprintf(w, "relative entropy per use: %.6g\n", d.Eavesdropper.RE)
		fmt.Fprintf(w, "total over %d uses:       %.6g (budget %.6g)\n",
			d.Eavesdropper.Uses, d.Eavesdropper.TotalRE, d.Eavesdropper.Budget)
		fmt.Fprintf(w, "verdict: %s\n", d.Eavesdropper.Verdict)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Receiver Input ---")
	renderSamples(w, d.Receiver, d.CovertChannel)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Receiver Capacity Estimate ---")
	if d.Bob.Err != nil {
		fmt.Fprintf(w, "not scoreable: %v\n", d.Bob.Err)
	} else {
		fmt.Fprintf(w, "OSNR: %s dB (%.6g linear, %.6g per use)\n",
			db(d.Bob.OSNRdB), d.Bob.OSNRLinear, d.Bob.OSNRPerUse)
		fmt.Fprintf(w, "achievable bits over %d uses: %.6g\n", d.Bob.Uses, d.Bob.Bits)
	}
	fmt.Fprintln(w)
}

func renderSamples(w io.Writer, samples []monitor.Sample, covert int) {
	if len(samples) == 0 {
		fmt.Fprintln(w, "no channels observed")
		return
	}
	fmt.Fprintf(w, "%-8s %14s %14s %14s %10s\n", "Channel", "Signal (dBm)", "ASE (dBm)", "NLI (dBm)", "OSNR (dB)")
	for _, s := range samples {
		marker := ""
		if s.Channel == covert {
			marker = "  covert"
		}
		fmt.Fprintf(w, "%-8d %14s %14s %14s %10s%s\n",
			s.Channel, dbm(s.Signal), dbm(s.ASE), dbm(s.NLI), db(s.OSNRdB()), marker)
	}
}

// dbm formats a linear power as dBm, keeping -Inf readable for dark channels.
func dbm(watts float64) string {
	v := monitor.WattsToDBm(watts)
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	return fmt.Sprintf("%.2f", v)
}

func db(v float64) string {
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	return fmt.Sprintf("%.2f", v)
}
