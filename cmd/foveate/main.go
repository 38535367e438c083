// foveate: estimate the pixel reduction of foveated rendering on a display
// for ideal, inaccurate and delayed gaze tracking.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/teslashibe/go-foveate/internal/config"
	"github.com/teslashibe/go-foveate/internal/log"
	"github.com/teslashibe/go-foveate/pkg/foveation"
	"github.com/teslashibe/go-foveate/pkg/web"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error("foveate failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	cfg      foveation.Config
	rates    []float64
	jsonOut  bool
	serve    string
	logLevel string
}

func parseFlags(args []string) (options, error) {
	base, err := config.FromEnv(foveation.DefaultConfig())
	if err != nil {
		return options{}, err
	}

	fs := flag.NewFlagSet("foveate", flag.ContinueOnError)
	opts := options{cfg: base}

	fs.Float64Var(&opts.cfg.Display.Width, "width", base.Display.Width, "Display width")
	fs.Float64Var(&opts.cfg.Display.Height, "height", base.Display.Height, "Display height")
	fs.Float64Var(&opts.cfg.Display.Distance, "distance", base.Display.Distance, "Viewing distance (same unit as width/height)")
	fs.Float64Var(&opts.cfg.Regions.FullAngle, "full", base.Regions.FullAngle, "Full resolution region angle (degrees)")
	fs.Float64Var(&opts.cfg.Regions.HalfAngle, "half", base.Regions.HalfAngle, "60% resolution region angle (degrees)")
	fs.Float64Var(&opts.cfg.Gaze.AngularError, "error", base.Gaze.AngularError, "Gaze estimation error (degrees)")
	fs.Float64Var(&opts.cfg.Gaze.EyeVelocity, "velocity", base.Gaze.EyeVelocity, "Eye movement velocity (degrees/second)")
	fs.Float64Var(&opts.cfg.Gaze.SamplingRate, "rate", base.Gaze.SamplingRate, "Camera sampling rate (Hz)")
	rates := fs.String("rates", config.Rates(""), "Comma separated sampling rates to sweep, e.g. 30,60,120")
	fs.BoolVar(&opts.jsonOut, "json", false, "Print the report as JSON")
	fs.StringVar(&opts.serve, "serve", config.Port(""), "Serve the report over HTTP on this port after printing it (or set PORT)")
	fs.StringVar(&opts.logLevel, "log-level", config.LogLevel("info"), "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.rates, err = config.ParseRates(*rates); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	log.Init(opts.logLevel)

	report, err := foveation.Run(opts.cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Debug("report computed", "run", report.ID, "latency_angle", report.LatencyAngle)

	var sweep []foveation.RateResult
	if len(opts.rates) > 0 {
		if sweep, err = foveation.SweepRates(opts.cfg, opts.rates); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
	}

	if err := write(stdout, opts.jsonOut, report, sweep); err != nil {
		return err
	}

	if opts.serve == "" {
		return nil
	}
	return web.NewServer(opts.serve, report, sweep).Start()
}

func write(w io.Writer, asJSON bool, report foveation.Report, sweep []foveation.RateResult) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			foveation.Report
			Sweep []foveation.RateResult `json:"sweep,omitempty"`
		}{report, sweep})
	}

	if err := foveation.WriteText(w, report); err != nil {
		return err
	}
	if len(sweep) > 0 {
		return foveation.WriteSweep(w, sweep)
	}
	return nil
}
