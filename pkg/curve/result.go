package curve

import (
	"fmt"
	"math/big"
)

// Outcome tags the result of a group operation
type Outcome int

const (
	// OutcomeInfinity means the result is the point at infinity
	OutcomeInfinity Outcome = iota
	// OutcomeSuccess means the result is a new affine point
	OutcomeSuccess
	// OutcomeDegenerate means a denominator was not invertible modulo N
	OutcomeDegenerate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInfinity:
		return "infinity"
	case OutcomeSuccess:
		return "success"
	case OutcomeDegenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the value of a group operation. Point is set for
// OutcomeInfinity and OutcomeSuccess; Factor is set for OutcomeDegenerate
// and holds gcd(denominator, N) > 1.
type Result struct {
	Outcome Outcome
	Point   Point
	Factor  *big.Int
}

func success(p Point) Result {
	if p.IsInfinity() {
		return Result{Outcome: OutcomeInfinity, Point: Infinity{}}
	}
	return Result{Outcome: OutcomeSuccess, Point: p}
}

func degenerate(d *big.Int) Result {
	return Result{Outcome: OutcomeDegenerate, Factor: d}
}

// IsProperFactor reports whether a degenerate result revealed a factor d
// of n with 1 < d < n
func (r Result) IsProperFactor(n *big.Int) bool {
	if r.Outcome != OutcomeDegenerate || r.Factor == nil {
		return false
	}
	return r.Factor.Cmp(big.NewInt(1)) > 0 && r.Factor.Cmp(n) < 0
}
