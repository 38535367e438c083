package foveation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/teslashibe/go-foveate/internal/log"
)

// Scenario names.
const (
	ScenarioIdeal        = "ideal"
	ScenarioSpatialError = "spatial_error"
	ScenarioLatency      = "latency"
	ScenarioCombined     = "combined"
)

// Scenario is one assumption set and its reduction ratios.
type Scenario struct {
	Name   string          `json:"name"`
	Angles RegionAngles    `json:"angles"`
	Result ReductionResult `json:"result"`
}

// Report is the output of a run.
type Report struct {
	ID     string `json:"id"`
	Config Config `json:"config"`

	Ideal        Scenario `json:"ideal"`
	SpatialError Scenario `json:"spatial_error"`
	Latency      Scenario `json:"latency"`
	Combined     Scenario `json:"combined"`

	LatencyAngle    float64 `json:"latency_angle"`     // Degrees of lag per sample
	MaxSaccadeAngle float64 `json:"max_saccade_angle"` // Display diagonal (degrees)
}

// Scenarios returns the four scenarios in reporting order.
func (r Report) Scenarios() []Scenario {
	return []Scenario{r.Ideal, r.SpatialError, r.Latency, r.Combined}
}

func evaluate(name string, g DisplayGeometry, a RegionAngles) (Scenario, error) {
	res, err := Reduce(g, a)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s scenario: %w", name, err)
	}
	return Scenario{Name: name, Angles: a, Result: res}, nil
}

// Run evaluates the ideal, spatial error, latency and combined scenarios.
func Run(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	lag, err := LatencyAngle(cfg.Gaze.EyeVelocity, cfg.Gaze.SamplingRate)
	if err != nil {
		return Report{}, err
	}
	saccade, err := MaxSaccadeAngle(cfg.Display)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		ID:              uuid.New().String(),
		Config:          cfg,
		LatencyAngle:    lag,
		MaxSaccadeAngle: saccade,
	}

	steps := []struct {
		dst   *Scenario
		name  string
		delta float64
	}{
		{&report.Ideal, ScenarioIdeal, 0},
		{&report.SpatialError, ScenarioSpatialError, cfg.Gaze.AngularError},
		{&report.Latency, ScenarioLatency, lag},
		{&report.Combined, ScenarioCombined, cfg.Gaze.AngularError + lag},
	}
	for _, s := range steps {
		if *s.dst, err = evaluate(s.name, cfg.Display, cfg.Regions.Widen(s.delta)); err != nil {
			return Report{}, err
		}
		log.Debug("scenario evaluated",
			"run", report.ID,
			"scenario", s.name,
			"full_angle", s.dst.Angles.FullAngle,
			"half_angle", s.dst.Angles.HalfAngle,
			"radial", s.dst.Result.Radial,
			"band", s.dst.Result.Band,
		)
	}

	return report, nil
}

// RateResult is the latency-dependent part of a run at one sampling rate.
type RateResult struct {
	SamplingRate float64         `json:"sampling_rate"`
	LatencyAngle float64         `json:"latency_angle"`
	Latency      ReductionResult `json:"latency"`
	Combined     ReductionResult `json:"combined"`
}

// SweepRates repeats the latency and combined scenarios for each camera rate,
// keeping every other input of cfg.
func SweepRates(cfg Config, rates []float64) ([]RateResult, error) {
	out := make([]RateResult, 0, len(rates))
	for _, rate := range rates {
		c := cfg
		c.Gaze.SamplingRate = rate
		if err := c.Validate(); err != nil {
			return nil, err
		}
		lag, err := LatencyAngle(c.Gaze.EyeVelocity, rate)
		if err != nil {
			return nil, err
		}
		latency, err := Reduce(c.Display, c.Regions.Widen(lag))
		if err != nil {
			return nil, fmt.Errorf("%g Hz latency: %w", rate, err)
		}
		combined, err := Reduce(c.Display, c.Regions.Widen(c.Gaze.AngularError+lag))
		if err != nil {
			return nil, fmt.Errorf("%g Hz combined: %w", rate, err)
		}
		out = append(out, RateResult{
			SamplingRate: rate,
			LatencyAngle: lag,
			Latency:      latency,
			Combined:     combined,
		})
	}
	return out, nil
}
