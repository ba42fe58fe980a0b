package ecm

import "errors"

var (
	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSharedSource is returned when a single random source would be shared by several workers
	ErrSharedSource = errors.New("a single random source cannot be shared by multiple workers")

	// ErrNoCurve is returned when no non-singular curve was drawn within the attempt limit
	ErrNoCurve = errors.New("no non-singular curve found")

	// errFactorFound stops the remaining workers once one has found a factor
	errFactorFound = errors.New("factor found")
)
