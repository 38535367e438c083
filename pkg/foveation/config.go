package foveation

import "math"

// DisplayGeometry is the physical display and the viewing distance.
// All three lengths share one unit (metres in the defaults).
type DisplayGeometry struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Distance float64 `json:"distance"`
}

// Area returns width × height.
func (g DisplayGeometry) Area() float64 {
	return g.Width * g.Height
}

// Validate checks that every length is positive.
func (g DisplayGeometry) Validate() error {
	switch {
	case !(g.Width > 0):
		return invalid(ErrInvalidGeometry, "width", g.Width)
	case !(g.Height > 0):
		return invalid(ErrInvalidGeometry, "height", g.Height)
	case !(g.Distance > 0):
		return invalid(ErrInvalidGeometry, "distance", g.Distance)
	}
	return nil
}

// RegionAngles are the angular sizes (degrees) of the full resolution region
// and of the 60% region that surrounds it.
type RegionAngles struct {
	FullAngle float64 `json:"full_angle"`
	HalfAngle float64 `json:"half_angle"`
}

// Widen returns the angles with delta degrees added to both boundaries.
func (a RegionAngles) Widen(delta float64) RegionAngles {
	return RegionAngles{
		FullAngle: a.FullAngle + delta,
		HalfAngle: a.HalfAngle + delta,
	}
}

// Validate requires 0 < FullAngle <= HalfAngle < 180.
// Equal angles are allowed: the 60% region then has zero width.
func (a RegionAngles) Validate() error {
	switch {
	case !(a.FullAngle > 0):
		return invalid(ErrInvalidRegions, "full_angle", a.FullAngle)
	case !(a.HalfAngle >= a.FullAngle):
		return invalid(ErrInvalidRegions, "half_angle", a.HalfAngle)
	case a.HalfAngle >= 180:
		return invalid(ErrInvalidGeometry, "half_angle", a.HalfAngle)
	}
	return nil
}

// GazeErrorModel describes gaze tracking inaccuracy.
type GazeErrorModel struct {
	AngularError float64 `json:"angular_error"` // Tracker error (degrees)
	EyeVelocity  float64 `json:"eye_velocity"`  // Slow eye movement (degrees/second)
	SamplingRate float64 `json:"sampling_rate"` // Camera rate (Hz)
}

// Validate checks the sampling rate and rejects negative error terms.
func (m GazeErrorModel) Validate() error {
	switch {
	case !(m.SamplingRate > 0):
		return invalid(ErrInvalidRate, "sampling_rate", m.SamplingRate)
	case m.AngularError < 0 || math.IsNaN(m.AngularError):
		return invalid(ErrInvalidRegions, "angular_error", m.AngularError)
	case m.EyeVelocity < 0 || math.IsNaN(m.EyeVelocity):
		return invalid(ErrInvalidRate, "eye_velocity", m.EyeVelocity)
	}
	return nil
}

// Config holds every input of a run. Build it once and pass it by value.
type Config struct {
	Display DisplayGeometry `json:"display"`
	Regions RegionAngles    `json:"regions"`
	Gaze    GazeErrorModel  `json:"gaze"`
}

// DefaultConfig returns a desktop monitor viewed at arm's length with a
// webcam-class tracker.
func DefaultConfig() Config {
	return Config{
		Display: DisplayGeometry{
			Width:    0.6,  // 60 cm
			Height:   0.35, // 35 cm
			Distance: 0.5,  // 50 cm from the viewer
		},
		Regions: RegionAngles{
			FullAngle: 6,  // Fovea plus margin
			HalfAngle: 12, // Parafovea
		},
		Gaze: GazeErrorModel{
			AngularError: 1,   // Typical appearance-based tracker
			EyeVelocity:  100, // Slow eye movement
			SamplingRate: 30,  // Webcam
		},
	}
}

// Validate checks every part of the configuration, display first.
func (c Config) Validate() error {
	if err := c.Display.Validate(); err != nil {
		return err
	}
	if err := c.Gaze.Validate(); err != nil {
		return err
	}
	return c.Regions.Validate()
}
