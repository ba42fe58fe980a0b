package math

import "math/big"

// Polynomial represents a polynomial over Z/mZ
// f(x) = coefficients[0] + coefficients[1]*x + coefficients[2]*x^2 + ...
type Polynomial struct {
	// Coefficients in ascending order (index 0 is constant term)
	Coefficients []*big.Int

	// Modulus is the ring modulus
	Modulus *big.Int
}

// NewPolynomial creates a new polynomial with given coefficients
func NewPolynomial(coefficients []*big.Int, modulus *big.Int) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, ErrEmptyCoefficients
	}
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	// Normalize coefficients to the ring
	normalized := make([]*big.Int, len(coefficients))
	for i, coef := range coefficients {
		if coef == nil {
			normalized[i] = big.NewInt(0)
		} else {
			normalized[i] = new(big.Int).Mod(coef, modulus)
		}
	}

	return &Polynomial{
		Coefficients: normalized,
		Modulus:      modulus,
	}, nil
}

// Degree returns the degree of the polynomial
func (p *Polynomial) Degree() int {
	// Find highest non-zero coefficient
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		if p.Coefficients[i].Sign() != 0 {
			return i
		}
	}
	return 0
}

// Evaluate evaluates the polynomial at x. x must carry the polynomial's modulus.
// Uses Horner's method: f(x) = a₀ + x(a₁ + x(a₂ + x(a₃ + ...)))
func (p *Polynomial) Evaluate(x ModInt) (ModInt, error) {
	if x.modulus == nil || p.Modulus.Cmp(x.modulus) != 0 {
		return ModInt{}, ErrModulusMismatch
	}

	n := len(p.Coefficients)
	result := new(big.Int).Set(p.Coefficients[n-1])

	for i := n - 2; i >= 0; i-- {
		result.Mul(result, x.value)
		result.Add(result, p.Coefficients[i])
		result.Mod(result, p.Modulus)
	}

	return x.reduce(result), nil
}
