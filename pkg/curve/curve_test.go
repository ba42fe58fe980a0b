package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/lenstra-ecm/internal/math"
)

func mustCurve(t *testing.T, a, n int64) *Curve {
	t.Helper()
	c, err := NewFromInt(big.NewInt(a), big.NewInt(n))
	require.NoError(t, err)
	return c
}

func mustAffine(t *testing.T, x, y, n int64) Affine {
	t.Helper()
	p, err := NewAffine(big.NewInt(x), big.NewInt(y), big.NewInt(n))
	require.NoError(t, err)
	return p
}

func requirePoint(t *testing.T, want Point, r Result) {
	t.Helper()
	require.Equal(t, OutcomeSuccess, r.Outcome, "outcome")
	eq, err := Equal(want, r.Point)
	require.NoError(t, err)
	assert.True(t, eq, "want %s, got %s", want, r.Point)
}

func TestBasePointOnCurve(t *testing.T) {
	for _, a := range []int64{0, 2, 5, 96} {
		c := mustCurve(t, a, 97)
		ok, err := c.IsOnCurve(c.BasePoint())
		require.NoError(t, err)
		assert.True(t, ok, "a=%d", a)
	}
}

func TestDoubleKnownValues(t *testing.T) {
	// a = 2: λ = 2/2 = 1, x = 1, y = 1*(0-1) - 1 = -2
	c := mustCurve(t, 2, 97)
	r, err := c.Double(c.BasePoint())
	require.NoError(t, err)
	requirePoint(t, mustAffine(t, 1, 95, 97), r)

	ok, err := c.IsOnCurve(r.Point)
	require.NoError(t, err)
	assert.True(t, ok)

	// a = 0: the tangent at (0, 1) is horizontal, so 2P = (0, -1) = -P
	c = mustCurve(t, 0, 97)
	r, err = c.Double(c.BasePoint())
	require.NoError(t, err)
	requirePoint(t, mustAffine(t, 0, 96, 97), r)
}

func TestAddCommutative(t *testing.T) {
	for _, a := range []int64{2, 3, 7, 1000} {
		c := mustCurve(t, a, 455839)
		p := c.BasePoint()

		r2, err := c.Double(p)
		require.NoError(t, err)
		require.Equal(t, OutcomeSuccess, r2.Outcome)
		q := r2.Point

		pq, err := c.Add(p, q)
		require.NoError(t, err)
		qp, err := c.Add(q, p)
		require.NoError(t, err)

		require.Equal(t, pq.Outcome, qp.Outcome)
		if pq.Outcome == OutcomeSuccess {
			requirePoint(t, pq.Point, qp)

			ok, err := c.IsOnCurve(pq.Point)
			require.NoError(t, err)
			assert.True(t, ok, "3P off curve for a=%d", a)
		}
	}
}

func TestAddInfinityIdentity(t *testing.T) {
	c := mustCurve(t, 2, 97)
	p := mustAffine(t, 1, 95, 97)

	r, err := c.Add(p, Infinity{})
	require.NoError(t, err)
	requirePoint(t, p, r)

	r, err = c.Add(Infinity{}, p)
	require.NoError(t, err)
	requirePoint(t, p, r)

	r, err = c.Add(Infinity{}, Infinity{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeInfinity, r.Outcome)
	assert.True(t, r.Point.IsInfinity())
}

func TestAddDegenerate(t *testing.T) {
	c := mustCurve(t, 2, 15)

	tests := []struct {
		name string
		p, q Affine
		want int64
	}{
		{"x difference shares 3", mustAffine(t, 1, 2, 15), mustAffine(t, 4, 7, 15), 3},
		{"x difference shares 5", mustAffine(t, 2, 2, 15), mustAffine(t, 7, 1, 15), 5},
		{"doubling with 2y sharing 5", mustAffine(t, 4, 5, 15), mustAffine(t, 4, 5, 15), 5},
		{"p plus its negation", mustAffine(t, 1, 2, 15), mustAffine(t, 1, 13, 15), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := c.Add(tt.p, tt.q)
			require.NoError(t, err)
			require.Equal(t, OutcomeDegenerate, r.Outcome)
			assert.Equal(t, tt.want, r.Factor.Int64())
			assert.Nil(t, r.Point)
			assert.Equal(t, tt.want != 15, r.IsProperFactor(big.NewInt(15)))
		})
	}
}

func TestAddFreeFunction(t *testing.T) {
	r, err := Add(mustAffine(t, 1, 2, 15), mustAffine(t, 4, 7, 15), math.MustModInt(2, 15))
	require.NoError(t, err)
	require.Equal(t, OutcomeDegenerate, r.Outcome)
	assert.Equal(t, int64(3), r.Factor.Int64())
}

func TestAddModulusMismatch(t *testing.T) {
	c := mustCurve(t, 2, 15)

	_, err := c.Add(mustAffine(t, 1, 2, 15), mustAffine(t, 4, 7, 17))
	assert.ErrorIs(t, err, math.ErrModulusMismatch)

	_, err = c.Add(mustAffine(t, 1, 2, 17), mustAffine(t, 4, 7, 17))
	assert.ErrorIs(t, err, math.ErrModulusMismatch)

	_, err = c.Add(nil, Infinity{})
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestScalarMult(t *testing.T) {
	c := mustCurve(t, 2, 455839)
	p := c.BasePoint()

	r, err := c.ScalarMult(p, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, OutcomeInfinity, r.Outcome)

	r, err = c.ScalarMult(p, big.NewInt(1))
	require.NoError(t, err)
	requirePoint(t, p, r)

	double, err := c.Double(p)
	require.NoError(t, err)
	r, err = c.ScalarMult(p, big.NewInt(2))
	require.NoError(t, err)
	requirePoint(t, double.Point, r)

	// 5P = 2(2P) + P
	quad, err := c.Double(double.Point)
	require.NoError(t, err)
	five, err := c.Add(quad.Point, p)
	require.NoError(t, err)
	r, err = c.ScalarMult(p, big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, five.Outcome, r.Outcome)
	if five.Outcome == OutcomeSuccess {
		requirePoint(t, five.Point, r)
	}

	_, err = c.ScalarMult(p, big.NewInt(-1))
	assert.ErrorIs(t, err, ErrInvalidScalar)
}

func TestScalarMultHitsIdentity(t *testing.T) {
	// On y^2 = x^3 + 1 mod 97, P = (0, 1) has order 3
	c := mustCurve(t, 0, 97)
	r, err := c.ScalarMult(c.BasePoint(), big.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, OutcomeDegenerate, r.Outcome)
	assert.Equal(t, int64(97), r.Factor.Int64())
}

func TestNegate(t *testing.T) {
	c := mustCurve(t, 2, 97)
	n, err := c.Negate(mustAffine(t, 1, 95, 97))
	require.NoError(t, err)
	eq, err := Equal(mustAffine(t, 1, 2, 97), n)
	require.NoError(t, err)
	assert.True(t, eq)

	n, err = c.Negate(Infinity{})
	require.NoError(t, err)
	assert.True(t, n.IsInfinity())
}

func TestIsNonSingular(t *testing.T) {
	tests := []struct {
		a    int64
		want bool
	}{
		{2, true},  // 4*8 + 27 = 59
		{0, false}, // 27 shares 3 with 15
		{3, false}, // 135 = 9*15
	}

	for _, tt := range tests {
		ok, err := mustCurve(t, tt.a, 15).IsNonSingular()
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "a=%d", tt.a)
	}
}

func TestNewInvalidCurve(t *testing.T) {
	_, err := New(math.ModInt{})
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewFromInt(big.NewInt(2), big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidCurve)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "infinity", OutcomeInfinity.String())
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "degenerate", OutcomeDegenerate.String())
}
