package report

import (
	"fmt"
	"io"

	"github.com/dd0wney/cluso-optical/pkg/topology"
)

// RenderTopologySketch writes an ASCII rendering of the scenario graph:
// every node with its kind, then every link with its port bindings,
// boost amplifier, and segment chain.
func RenderTopologySketch(w io.Writer, sc *topology.Scenario) {
	fmt.Fprintln(w, "--- Topology ---")
	for _, node := range sc.Net.Nodes() {
		tag := ""
		if node.Name() == sc.Tap.Name() {
			tag = "  <-- eavesdropping tap"
		}
		fmt.Fprintf(w, "%-14s %s%s\n", node.Name(), node.Kind(), tag)
	}
	fmt.Fprintln(w)

	for _, l := range sc.Net.Links() {
		fmt.Fprintf(w, "%s[%s] --> %s[%s]", l.Src().Name(), l.SrcPort(), l.Dst().Name(), l.DstPort())
		if b := l.Boost(); b != nil {
			fmt.Fprintf(w, "  boost:%s(%.1fdB)", b.Name(), b.GainDB())
		}
		fmt.Fprintln(w)
		for i, s := range l.Spans() {
			amp := "-"
			if s.Amp != nil {
				amp = fmt.Sprintf("%s(%.1fdB)", s.Amp.Name(), s.Amp.GainDB())
			}
			fmt.Fprintf(w, "    span %d: %.1f km, amp %s\n", i+1, s.LengthKm, amp)
		}
	}
	fmt.Fprintln(w)
}
