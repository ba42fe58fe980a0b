package math

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when modulus is invalid
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrNilValue is returned when a nil integer is provided
	ErrNilValue = errors.New("value cannot be nil")

	// ErrModulusMismatch is returned when two modular integers have different moduli
	ErrModulusMismatch = errors.New("modular integers must have the same modulus")

	// ErrNotInvertible is returned when a divisor shares a factor with the modulus
	ErrNotInvertible = errors.New("divisor is not invertible")

	// ErrNegativeExponent is returned when a power is requested with a negative exponent
	ErrNegativeExponent = errors.New("exponent must be non-negative")

	// ErrEmptyCoefficients is returned when coefficients slice is empty
	ErrEmptyCoefficients = errors.New("coefficients cannot be empty")
)

// NotInvertibleError reports a failed modular division together with
// gcd(divisor, modulus), which is always greater than one.
type NotInvertibleError struct {
	GCD *big.Int
}

func (e *NotInvertibleError) Error() string {
	return fmt.Sprintf("%v: gcd with modulus is %s", ErrNotInvertible, e.GCD)
}

// Is lets errors.Is match ErrNotInvertible
func (e *NotInvertibleError) Is(target error) bool {
	return target == ErrNotInvertible
}
