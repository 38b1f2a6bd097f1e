package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dd0wney/cluso-optical/pkg/monitor"
)

// spectrumFloorDBm is where the bar chart clips dark channels.
const spectrumFloorDBm = -100.0

// RenderTapSpectrum writes a per-channel signal-power bar spectrum for
// the tap observation point, one column of dBm per channel.
func RenderTapSpectrum(w io.Writer, samples []monitor.Sample, covert int) {
	fmt.Fprintln(w, "--- Tap Spectrum ---")
	if len(samples) == 0 {
		fmt.Fprintln(w, "no channels observed")
		return
	}

	ceil := spectrumFloorDBm
	for _, s := range samples {
		if v := monitor.WattsToDBm(s.Signal); v > ceil {
			ceil = v
		}
	}

	for _, s := range samples {
		v := monitor.WattsToDBm(s.Signal)
		if math.IsInf(v, -1) || v < spectrumFloorDBm {
			v = spectrumFloorDBm
		}
		// Scale into 0..50 columns between floor and the loudest channel.
		width := 0
		if ceil > spectrumFloorDBm {
			width = int((v - spectrumFloorDBm) / (ceil - spectrumFloorDBm) * 50)
		}
		marker := ""
		if s.Channel == covert {
			marker = " covert"
		}
		fmt.Fprintf(w, "ch %-3d %8s dBm |%s%s\n", s.Channel, dbm(s.Signal), strings.Repeat("#", width), marker)
	}
	fmt.Fprintln(w)
}
