package curve

import "errors"

var (
	// ErrInvalidPoint is returned when a point is nil or of an unknown kind
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidScalar is returned when a scalar is nil or negative
	ErrInvalidScalar = errors.New("invalid scalar value")

	// ErrInvalidCurve is returned when curve parameters are invalid
	ErrInvalidCurve = errors.New("invalid curve parameters")
)
