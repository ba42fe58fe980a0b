// Package validation checks arguments shared by the search and the random sources
package validation

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when the number to factor is not greater than one
	ErrInvalidModulus = errors.New("invalid modulus: must be greater than 1")

	// ErrNonPositive is returned when a bound or count is not positive
	ErrNonPositive = errors.New("value must be positive")

	// ErrInvalidRange is returned when range parameters are invalid
	ErrInvalidRange = errors.New("invalid range: lo must be less than hi")

	// ErrNilValue is returned when a nil integer is provided
	ErrNilValue = errors.New("nil value provided")
)

// ValidateModulus checks that n is an integer greater than one
func ValidateModulus(n *big.Int) error {
	if n == nil {
		return ErrNilValue
	}

	if n.Cmp(big.NewInt(1)) <= 0 {
		return ErrInvalidModulus
	}

	return nil
}

// ValidatePositive checks that v > 0
func ValidatePositive(v int) error {
	if v <= 0 {
		return ErrNonPositive
	}
	return nil
}

// ValidateRange checks that [lo, hi) is a non-empty range
func ValidateRange(lo, hi *big.Int) error {
	if lo == nil || hi == nil {
		return ErrNilValue
	}

	if lo.Cmp(hi) >= 0 {
		return ErrInvalidRange
	}

	return nil
}
