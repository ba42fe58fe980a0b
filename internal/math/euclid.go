package math

import "math/big"

// GCD returns the greatest common divisor of x and y using the Euclidean
// algorithm. The result is always non-negative and GCD(0, y) == |y|.
func GCD(x, y *big.Int) *big.Int {
	a := new(big.Int).Abs(x)
	b := new(big.Int).Abs(y)
	r := new(big.Int)

	for a.Sign() != 0 {
		r.Mod(b, a)
		b.Set(a)
		a.Set(r)
	}

	return b
}

// ExtendedGCD returns Bézout coefficients (s, t) such that
// s*x + t*y == GCD(x, y) for non-negative x and y.
func ExtendedGCD(x, y *big.Int) (s, t *big.Int) {
	a := new(big.Int).Set(x)
	b := new(big.Int).Set(y)

	// b = s*x + t*y and a = s1*x + t1*y hold on every iteration
	s, t = big.NewInt(0), big.NewInt(1)
	s1, t1 := big.NewInt(1), big.NewInt(0)

	q := new(big.Int)
	r := new(big.Int)
	for a.Sign() != 0 {
		q.DivMod(b, a, r)

		nextS := new(big.Int).Sub(s, new(big.Int).Mul(s1, q))
		nextT := new(big.Int).Sub(t, new(big.Int).Mul(t1, q))

		b.Set(a)
		a.Set(r)
		s, t = s1, t1
		s1, t1 = nextS, nextT
	}

	return s, t
}

// Inverse computes v^-1 mod m. It returns a *NotInvertibleError carrying
// gcd(v, m) when v shares a factor with m.
func Inverse(v, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	reduced := new(big.Int).Mod(v, m)
	if g := GCD(reduced, m); g.Cmp(big.NewInt(1)) != 0 {
		return nil, &NotInvertibleError{GCD: g}
	}

	s, _ := ExtendedGCD(reduced, m)
	return s.Mod(s, m), nil
}
