// Package curve implements the elliptic-curve group law modulo a composite N.
//
// Since N need not be prime, Z/NZ is a ring with zero divisors and a slope
// denominator may fail to be invertible. The group operations report that
// as an OutcomeDegenerate Result carrying gcd(denominator, N) instead of an
// error; errors are reserved for caller bugs such as mixed moduli.
package curve

import (
	"errors"
	"math/big"

	"github.com/Caqil/lenstra-ecm/internal/math"
)

// Curve is y^2 = x^3 + A*x + 1 over Z/NZ where N is A's modulus.
// The constant term is fixed at 1 so that (0, 1) always lies on the curve.
type Curve struct {
	A math.ModInt

	n    *big.Int
	rhs  *math.Polynomial
	disc *math.Polynomial
}

// New builds the curve with parameter a
func New(a math.ModInt) (*Curve, error) {
	if !a.Valid() {
		return nil, ErrInvalidCurve
	}
	n := a.Modulus()

	// x^3 + a*x + 1
	rhs, err := math.NewPolynomial([]*big.Int{big.NewInt(1), a.Value(), big.NewInt(0), big.NewInt(1)}, n)
	if err != nil {
		return nil, err
	}

	// 4a^3 + 27, as a polynomial in a
	disc, err := math.NewPolynomial([]*big.Int{big.NewInt(27), nil, nil, big.NewInt(4)}, n)
	if err != nil {
		return nil, err
	}

	return &Curve{A: a, n: n, rhs: rhs, disc: disc}, nil
}

// NewFromInt builds the curve with parameter a mod n
func NewFromInt(a, n *big.Int) (*Curve, error) {
	ma, err := math.NewModInt(a, n)
	if err != nil {
		return nil, errors.Join(ErrInvalidCurve, err)
	}
	return New(ma)
}

// N returns the modulus
func (c *Curve) N() *big.Int {
	return new(big.Int).Set(c.n)
}

// BasePoint returns (0, 1), which lies on every curve of this family
func (c *Curve) BasePoint() Affine {
	p, _ := NewAffine(big.NewInt(0), big.NewInt(1), c.n)
	return p
}

// Discriminant returns 4a^3 + 27, the part of the discriminant
// -16(4a^3 + 27b^2) that can vanish modulo N when b = 1
func (c *Curve) Discriminant() (math.ModInt, error) {
	return c.disc.Evaluate(c.A)
}

// IsNonSingular reports whether gcd(4a^3 + 27, N) == 1
func (c *Curve) IsNonSingular() (bool, error) {
	d, err := c.Discriminant()
	if err != nil {
		return false, err
	}
	return math.GCD(d.Value(), c.n).Cmp(big.NewInt(1)) == 0, nil
}

// IsOnCurve reports whether p satisfies the curve equation
func (c *Curve) IsOnCurve(p Point) (bool, error) {
	switch p := p.(type) {
	case Infinity:
		return true, nil
	case Affine:
		lhs, err := p.Y.Mul(p.Y)
		if err != nil {
			return false, err
		}
		rhs, err := c.rhs.Evaluate(p.X)
		if err != nil {
			return false, err
		}
		return lhs.Equal(rhs)
	default:
		return false, ErrInvalidPoint
	}
}

// Negate computes -p
func (c *Curve) Negate(p Point) (Point, error) {
	switch p := p.(type) {
	case Infinity:
		return p, nil
	case Affine:
		return Affine{X: p.X, Y: p.Y.Neg()}, nil
	default:
		return nil, ErrInvalidPoint
	}
}

// Add computes p + q. If p == q the tangent (doubling) formula is used,
// otherwise the chord through p and q. When the slope denominator shares a
// factor with N the Result is OutcomeDegenerate with that gcd.
func (c *Curve) Add(p, q Point) (Result, error) {
	if p == nil || q == nil {
		return Result{}, ErrInvalidPoint
	}
	if p.IsInfinity() {
		return success(q), nil
	}
	if q.IsInfinity() {
		return success(p), nil
	}

	pa, ok := p.(Affine)
	if !ok {
		return Result{}, ErrInvalidPoint
	}
	qa, ok := q.(Affine)
	if !ok {
		return Result{}, ErrInvalidPoint
	}

	if pa.X.Modulus().Cmp(c.n) != 0 {
		return Result{}, math.ErrModulusMismatch
	}

	same, err := sameAffine(pa, qa)
	if err != nil {
		return Result{}, err
	}

	ops := &arith{}
	var num, den math.ModInt
	if same {
		// λ = (3x1^2 + a) / 2y1
		num = ops.add(ops.mul(pa.X, pa.X).MulInt(3), c.A)
		den = pa.Y.MulInt(2)
	} else {
		// λ = (y1 - y2) / (x1 - x2)
		num = ops.sub(pa.Y, qa.Y)
		den = ops.sub(pa.X, qa.X)
	}
	if ops.err != nil {
		return Result{}, ops.err
	}

	lambda, err := num.Div(den)
	if err != nil {
		var nie *math.NotInvertibleError
		if errors.As(err, &nie) {
			return degenerate(nie.GCD), nil
		}
		return Result{}, err
	}

	// x3 = λ^2 - x1 - x2, y3 = λ(x1 - x3) - y1
	x3 := ops.sub(ops.sub(ops.mul(lambda, lambda), pa.X), qa.X)
	y3 := ops.sub(ops.mul(lambda, ops.sub(pa.X, x3)), pa.Y)
	if ops.err != nil {
		return Result{}, ops.err
	}

	return success(Affine{X: x3, Y: y3}), nil
}

// Double computes 2p
func (c *Curve) Double(p Point) (Result, error) {
	return c.Add(p, p)
}

// ScalarMult computes k*p by left-to-right double-and-add. It stops at the
// first operation that is not a success and returns that Result.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Result, error) {
	if p == nil {
		return Result{}, ErrInvalidPoint
	}
	if k == nil || k.Sign() < 0 {
		return Result{}, ErrInvalidScalar
	}

	acc := success(Infinity{})
	for i := k.BitLen() - 1; i >= 0; i-- {
		next, err := c.Double(acc.Point)
		if err != nil {
			return Result{}, err
		}
		if next.Outcome == OutcomeDegenerate {
			return next, nil
		}
		acc = next

		if k.Bit(i) == 1 {
			next, err = c.Add(acc.Point, p)
			if err != nil {
				return Result{}, err
			}
			if next.Outcome == OutcomeDegenerate {
				return next, nil
			}
			acc = next
		}
	}

	return acc, nil
}

// Add is the group law as a free function: p + q on y^2 = x^3 + a*x + 1
// modulo a's modulus
func Add(p, q Point, a math.ModInt) (Result, error) {
	c, err := New(a)
	if err != nil {
		return Result{}, err
	}
	return c.Add(p, q)
}

// arith threads the first modulus error through a chain of ModInt operations
type arith struct {
	err error
}

func (a *arith) add(x, y math.ModInt) math.ModInt {
	if a.err != nil {
		return x
	}
	r, err := x.Add(y)
	if err != nil {
		a.err = err
		return x
	}
	return r
}

func (a *arith) sub(x, y math.ModInt) math.ModInt {
	if a.err != nil {
		return x
	}
	r, err := x.Sub(y)
	if err != nil {
		a.err = err
		return x
	}
	return r
}

func (a *arith) mul(x, y math.ModInt) math.ModInt {
	if a.err != nil {
		return x
	}
	r, err := x.Mul(y)
	if err != nil {
		a.err = err
		return x
	}
	return r
}
