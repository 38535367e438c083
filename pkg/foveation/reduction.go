package foveation

import "math"

// ReductionResult pairs the two region-shape models for one set of angles.
// Values are normally in [0, 1) but are never clamped: a ratio outside that
// range means the regions do not fit on the display.
type ReductionResult struct {
	Radial float64 `json:"radial"` // Circular regions, steady gaze
	Band   float64 `json:"band"`   // Horizontal bands, saccades
}

// radii projects both region boundaries onto the display.
func radii(g DisplayGeometry, a RegionAngles) (full, half float64, err error) {
	if err := g.Validate(); err != nil {
		return 0, 0, err
	}
	if full, err = Radius(a.FullAngle, g.Distance); err != nil {
		return 0, 0, err
	}
	if half, err = Radius(a.HalfAngle, g.Distance); err != nil {
		return 0, 0, err
	}
	return full, half, nil
}

// reduction weights the three region areas by pixel density.
//
// The low-density area is the display minus the mid region only, so the
// full region is also counted at RestDensity.
func reduction(display, full, mid float64) float64 {
	rest := display - mid
	rendered := FullDensity*full + MidDensity*mid + RestDensity*rest
	return 1 - rendered/display
}

// RadialReduction models the regions as concentric discs around a steady
// gaze point.
func RadialReduction(g DisplayGeometry, a RegionAngles) (float64, error) {
	fullR, halfR, err := radii(g, a)
	if err != nil {
		return 0, err
	}
	full := math.Pi * (fullR * fullR)
	mid := math.Pi * (halfR*halfR - fullR*fullR)
	return reduction(g.Area(), full, mid), nil
}

// BandReduction models the regions as horizontal strips spanning the display
// width, the footprint a horizontal saccade sweeps.
func BandReduction(g DisplayGeometry, a RegionAngles) (float64, error) {
	fullR, halfR, err := radii(g, a)
	if err != nil {
		return 0, err
	}
	full := fullR * g.Width
	mid := (halfR - fullR) * g.Width
	return reduction(g.Area(), full, mid), nil
}

// Reduce evaluates both models.
func Reduce(g DisplayGeometry, a RegionAngles) (ReductionResult, error) {
	radial, err := RadialReduction(g, a)
	if err != nil {
		return ReductionResult{}, err
	}
	band, err := BandReduction(g, a)
	if err != nil {
		return ReductionResult{}, err
	}
	return ReductionResult{Radial: radial, Band: band}, nil
}
