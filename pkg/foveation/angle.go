// Package foveation estimates how many pixels a foveated renderer can skip on
// a fixed display, given viewing distance and gaze tracking error/latency.
//
// The display is split into three quality regions around the gaze point:
// full resolution, 60% resolution and 20% resolution.
package foveation

import "math"

// Region pixel densities relative to full resolution.
const (
	FullDensity = 1.0
	MidDensity  = 0.6
	RestDensity = 0.2
)

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Degrees converts radians to degrees for display.
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Radius returns the on-display radius of a foveated region whose angular
// size is angle degrees, seen from distance.
//
// Formula: r = 2 × d × tan(θ / 2)
//
// The tangent is undefined at ±180°, so |angle| >= 180 is rejected.
func Radius(angle, distance float64) (float64, error) {
	if distance <= 0 {
		return 0, invalid(ErrInvalidGeometry, "distance", distance)
	}
	if math.Abs(angle) >= 180 || math.IsNaN(angle) {
		return 0, invalid(ErrInvalidGeometry, "angle", angle)
	}
	return 2 * distance * math.Tan(Radians(angle)/2), nil
}

// LatencyAngle is the angle the gaze travels between two tracker samples:
// eye velocity (deg/s) divided by sampling rate (Hz).
func LatencyAngle(velocity, rate float64) (float64, error) {
	if rate <= 0 || math.IsNaN(rate) {
		return 0, invalid(ErrInvalidRate, "sampling_rate", rate)
	}
	return velocity / rate, nil
}

// MaxSaccadeAngle returns the angle in degrees subtended by the display
// diagonal, the largest gaze jump that stays on screen.
func MaxSaccadeAngle(g DisplayGeometry) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	diag := math.Hypot(g.Width, g.Height)
	return Degrees(2 * math.Atan(diag/(2*g.Distance))), nil
}
