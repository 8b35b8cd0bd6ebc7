// SPDX-License-Identifier: MIT
// Package bench: plain-text report writers.
// Tabular layout via text/tabwriter; numbers through an English-locale
// x/text printer so flop counts read as 1,024,000,000 rather than a digit
// wall. Writers take an io.Writer so the CLI, tests, and examples share one
// formatting path.

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Comparison verdict bands, mirroring the original driver's output: a
// speedup within ±5% is reported as similar performance.
const (
	fasterBand = 1.05
	slowerBand = 0.95
)

// printer formats grouped decimals for the report columns.
var printer = message.NewPrinter(language.English)

// WriteResults renders one row per measurement: name, shape, mean time,
// GFLOPS, and the per-call flop count.
func WriteResults(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "kernel\tsize\titers\tavg/call\tGFLOPS\tflops/call")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d×%d×%d\t%d\t%v\t%.3f\t%s\n",
			r.Name, r.M, r.N, r.R, r.Iterations, r.AvgTime, r.GFLOPS,
			printer.Sprintf("%d", r.Flops()))
	}

	return tw.Flush()
}

// verdict classifies a speedup into the faster/slower/similar bands.
func verdict(c Comparison) string {
	switch {
	case c.Speedup > fasterBand:
		return fmt.Sprintf("%s is FASTER", c.Candidate.Name)
	case c.Speedup < slowerBand:
		return fmt.Sprintf("%s is FASTER", c.Control.Name)
	default:
		return "similar performance"
	}
}

// WriteComparisons renders one row per control/candidate pair with the
// speedup and a verdict.
func WriteComparisons(w io.Writer, comps []Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "size\tcontrol\tavg/call\tcandidate\tavg/call\tspeedup\tverdict")
	for _, c := range comps {
		fmt.Fprintf(tw, "%d×%d\t%s\t%v\t%s\t%v\t%.3fx\t%s\n",
			c.Control.M, c.Control.N,
			c.Control.Name, c.Control.AvgTime,
			c.Candidate.Name, c.Candidate.AvgTime,
			c.Speedup, verdict(c))
	}

	return tw.Flush()
}

// WriteChecks renders the verification sweep: one PASS/FAIL row per
// variant with its max deviation from the reference.
func WriteChecks(w io.Writer, checks []Check) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "kernel\tmax diff\tresult")
	for _, ch := range checks {
		status := "PASS"
		if !ch.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%.3e\t%s\n", ch.Name, ch.MaxDiff, status)
	}

	return tw.Flush()
}
