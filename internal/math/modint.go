// Package math provides the modular arithmetic used by the elliptic-curve
// factorization: Euclid's algorithm, modular integers whose division can
// fail, and polynomial evaluation over them.
package math

import "math/big"

// ModInt is an integer reduced into [0, modulus). Values are immutable:
// every operation returns a new ModInt and never modifies its operands.
type ModInt struct {
	value   *big.Int
	modulus *big.Int
}

// NewModInt reduces value modulo modulus
func NewModInt(value, modulus *big.Int) (ModInt, error) {
	if value == nil {
		return ModInt{}, ErrNilValue
	}
	if modulus == nil || modulus.Sign() <= 0 {
		return ModInt{}, ErrInvalidModulus
	}

	return ModInt{
		value:   new(big.Int).Mod(value, modulus),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// MustModInt is like NewModInt but panics on an invalid modulus.
// Intended for constants and tests.
func MustModInt(value, modulus int64) ModInt {
	m, err := NewModInt(big.NewInt(value), big.NewInt(modulus))
	if err != nil {
		panic(err)
	}
	return m
}

// reduce builds a ModInt sharing x's modulus without revalidating it
func (x ModInt) reduce(v *big.Int) ModInt {
	return ModInt{value: v.Mod(v, x.modulus), modulus: x.modulus}
}

func (x ModInt) check(y ModInt) error {
	if x.modulus == nil || y.modulus == nil {
		return ErrInvalidModulus
	}
	if x.modulus.Cmp(y.modulus) != 0 {
		return ErrModulusMismatch
	}
	return nil
}

// Valid reports whether x was built by NewModInt
func (x ModInt) Valid() bool {
	return x.value != nil && x.modulus != nil
}

// Value returns a copy of the reduced value
func (x ModInt) Value() *big.Int {
	return new(big.Int).Set(x.value)
}

// Modulus returns a copy of the modulus
func (x ModInt) Modulus() *big.Int {
	return new(big.Int).Set(x.modulus)
}

// IsZero reports whether the value is 0
func (x ModInt) IsZero() bool {
	return x.value.Sign() == 0
}

// Add computes x + y mod m
func (x ModInt) Add(y ModInt) (ModInt, error) {
	if err := x.check(y); err != nil {
		return ModInt{}, err
	}
	return x.reduce(new(big.Int).Add(x.value, y.value)), nil
}

// Sub computes x - y mod m
func (x ModInt) Sub(y ModInt) (ModInt, error) {
	if err := x.check(y); err != nil {
		return ModInt{}, err
	}
	return x.reduce(new(big.Int).Sub(x.value, y.value)), nil
}

// Mul computes x * y mod m
func (x ModInt) Mul(y ModInt) (ModInt, error) {
	if err := x.check(y); err != nil {
		return ModInt{}, err
	}
	return x.reduce(new(big.Int).Mul(x.value, y.value)), nil
}

// MulInt computes k * x mod m for a plain integer k
func (x ModInt) MulInt(k int64) ModInt {
	return x.reduce(new(big.Int).Mul(x.value, big.NewInt(k)))
}

// Div computes x * y^-1 mod m. When y is not invertible the returned error
// is a *NotInvertibleError whose GCD is gcd(y, m).
func (x ModInt) Div(y ModInt) (ModInt, error) {
	if err := x.check(y); err != nil {
		return ModInt{}, err
	}

	inv, err := y.Inverse()
	if err != nil {
		return ModInt{}, err
	}
	return x.reduce(new(big.Int).Mul(x.value, inv.value)), nil
}

// Inverse computes x^-1 mod m
func (x ModInt) Inverse() (ModInt, error) {
	inv, err := Inverse(x.value, x.modulus)
	if err != nil {
		return ModInt{}, err
	}
	return ModInt{value: inv, modulus: x.modulus}, nil
}

// Neg computes -x mod m
func (x ModInt) Neg() ModInt {
	return x.reduce(new(big.Int).Sub(x.modulus, x.value))
}

// Pow computes x^e mod m by square-and-multiply
func (x ModInt) Pow(e *big.Int) (ModInt, error) {
	if e == nil {
		return ModInt{}, ErrNilValue
	}
	if e.Sign() < 0 {
		return ModInt{}, ErrNegativeExponent
	}

	r := big.NewInt(1)
	k := new(big.Int).Set(x.value)
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			r.Mul(r, k).Mod(r, x.modulus)
		}
		k.Mul(k, k).Mod(k, x.modulus)
	}

	return x.reduce(r), nil
}

// Cmp compares the values of x and y, which must share a modulus
func (x ModInt) Cmp(y ModInt) (int, error) {
	if err := x.check(y); err != nil {
		return 0, err
	}
	return x.value.Cmp(y.value), nil
}

// Equal reports whether x and y hold the same value under the same modulus
func (x ModInt) Equal(y ModInt) (bool, error) {
	c, err := x.Cmp(y)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

func (x ModInt) String() string {
	if x.value == nil {
		return "<nil>"
	}
	return x.value.String()
}
