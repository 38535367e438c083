// Package config provides configuration helpers for go-foveate commands.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/teslashibe/go-foveate/pkg/foveation"
)

// Environment variables read by FromEnv.
const (
	EnvWidth        = "FOVEATE_WIDTH"
	EnvHeight       = "FOVEATE_HEIGHT"
	EnvDistance     = "FOVEATE_DISTANCE"
	EnvFullAngle    = "FOVEATE_FULL_ANGLE"
	EnvHalfAngle    = "FOVEATE_HALF_ANGLE"
	EnvAngularError = "FOVEATE_ERROR"
	EnvEyeVelocity  = "FOVEATE_EYE_VELOCITY"
	EnvSamplingRate = "FOVEATE_SAMPLING_RATE"
	EnvRates        = "FOVEATE_RATES"
	EnvLogLevel     = "LOG_LEVEL"
)

// FromEnv returns base with every FOVEATE_* variable that is set applied.
// Unset or empty variables keep the base value.
func FromEnv(base foveation.Config) (foveation.Config, error) {
	cfg := base
	fields := []struct {
		env string
		dst *float64
	}{
		{EnvWidth, &cfg.Display.Width},
		{EnvHeight, &cfg.Display.Height},
		{EnvDistance, &cfg.Display.Distance},
		{EnvFullAngle, &cfg.Regions.FullAngle},
		{EnvHalfAngle, &cfg.Regions.HalfAngle},
		{EnvAngularError, &cfg.Gaze.AngularError},
		{EnvEyeVelocity, &cfg.Gaze.EyeVelocity},
		{EnvSamplingRate, &cfg.Gaze.SamplingRate},
	}
	for _, f := range fields {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return base, fmt.Errorf("%s: %w", f.env, err)
		}
		*f.dst = n
	}
	return cfg, nil
}

// ParseRates parses a comma separated list such as "30,60,120".
func ParseRates(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	rates := make([]float64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("rate %q: %w", p, err)
		}
		rates = append(rates, n)
	}
	return rates, nil
}

// Rates returns the sweep rates from FOVEATE_RATES, or def if unset.
func Rates(def string) string {
	if v := os.Getenv(EnvRates); v != "" {
		return v
	}
	return def
}

// LogLevel returns LOG_LEVEL or def.
func LogLevel(def string) string {
	if v := os.Getenv(EnvLogLevel); v != "" {
		return v
	}
	return def
}

// Port returns PORT from the environment, falling back to def.
func Port(def string) string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return def
}
