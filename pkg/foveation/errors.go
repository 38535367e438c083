package foveation

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid inputs.
var (
	// ErrInvalidGeometry is returned when a display dimension or viewing
	// distance is not positive, or when an angle makes the cone projection
	// undefined (|angle| >= 180°).
	ErrInvalidGeometry = errors.New("foveation: invalid geometry")

	// ErrInvalidRate is returned when the gaze sampling rate is not positive.
	ErrInvalidRate = errors.New("foveation: invalid sampling rate")

	// ErrInvalidRegions is returned when the region angles are out of order.
	ErrInvalidRegions = errors.New("foveation: invalid region angles")
)

// ParamError names the parameter that violated its precondition.
type ParamError struct {
	// Param is the offending parameter, e.g. "distance".
	Param string

	// Value is the rejected value.
	Value float64

	// Err is one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s=%g", e.Err, e.Param, e.Value)
}

// Unwrap returns the sentinel error.
func (e *ParamError) Unwrap() error {
	return e.Err
}

func invalid(err error, param string, value float64) error {
	return &ParamError{Param: param, Value: value, Err: err}
}
