package foveation

import (
	"fmt"
	"io"
	"strings"
)

func pct(v float64) string {
	return fmt.Sprintf("%.2f", v*100)
}

// WriteText renders the report for a terminal. The latency line shows the
// range from ideal tracking to one sample of lag, the real line the range
// from spatial error alone to spatial error plus lag.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nIdeal reduction rate:\n  Normal: %s%%\n  Saccade: %s%%\n",
		pct(r.Ideal.Result.Radial), pct(r.Ideal.Result.Band))
	fmt.Fprintf(&b, "Reduction rate (with %g deg spatial error):\n  Normal: %s%%\n  Saccade: %s%%\n",
		r.Config.Gaze.AngularError,
		pct(r.SpatialError.Result.Radial), pct(r.SpatialError.Result.Band))
	fmt.Fprintf(&b, "Reduction rate (using %g Hz camera):\n  Normal: %s-%s%%\n  Saccade: %s-%s%%\n",
		r.Config.Gaze.SamplingRate,
		pct(r.Ideal.Result.Radial), pct(r.Latency.Result.Radial),
		pct(r.Ideal.Result.Band), pct(r.Latency.Result.Band))
	fmt.Fprintf(&b, "Real reduction rate:\n  Normal: %s-%s%%\n  Saccade: %s-%s%%\n",
		pct(r.SpatialError.Result.Radial), pct(r.Combined.Result.Radial),
		pct(r.SpatialError.Result.Band), pct(r.Combined.Result.Band))
	fmt.Fprintf(&b, "Max saccade angle: %.2f deg\n", r.MaxSaccadeAngle)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSweep renders one line per sampling rate.
func WriteSweep(w io.Writer, rows []RateResult) error {
	var b strings.Builder
	b.WriteString("Sampling rate sweep:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "  %6g Hz (lag %.2f deg)  Normal: %s%% / %s%%  Saccade: %s%% / %s%%\n",
			row.SamplingRate, row.LatencyAngle,
			pct(row.Latency.Radial), pct(row.Combined.Radial),
			pct(row.Latency.Band), pct(row.Combined.Band))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
