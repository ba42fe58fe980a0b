package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/lenstra-ecm/internal/math"
)

// Point is either Infinity or an Affine point. No other implementations exist.
type Point interface {
	// IsInfinity reports whether this is the group identity
	IsInfinity() bool
	fmt.Stringer

	point()
}

// Infinity is the point at infinity, the identity of the group
type Infinity struct{}

func (Infinity) IsInfinity() bool { return true }
func (Infinity) String() string   { return "O" }
func (Infinity) point()           {}

// Affine is a point (X, Y) with both coordinates modulo the same N
type Affine struct {
	X math.ModInt
	Y math.ModInt
}

// NewAffine reduces x and y modulo n
func NewAffine(x, y, n *big.Int) (Affine, error) {
	mx, err := math.NewModInt(x, n)
	if err != nil {
		return Affine{}, err
	}
	my, err := math.NewModInt(y, n)
	if err != nil {
		return Affine{}, err
	}
	return Affine{X: mx, Y: my}, nil
}

func (Affine) IsInfinity() bool { return false }
func (Affine) point()           {}

func (p Affine) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Equal reports whether p and q are the same point. Affine points with
// different moduli yield math.ErrModulusMismatch.
func Equal(p, q Point) (bool, error) {
	switch p := p.(type) {
	case Infinity:
		return q != nil && q.IsInfinity(), nil
	case Affine:
		qa, ok := q.(Affine)
		if !ok {
			return false, nil
		}
		return sameAffine(p, qa)
	default:
		return false, ErrInvalidPoint
	}
}

func sameAffine(p, q Affine) (bool, error) {
	ex, err := p.X.Equal(q.X)
	if err != nil {
		return false, err
	}
	ey, err := p.Y.Equal(q.Y)
	if err != nil {
		return false, err
	}
	return ex && ey, nil
}
