// Package rand provides the uniform integer sources used to pick curve
// parameters. A Source is not safe for concurrent use; give every
// goroutine its own.
package rand

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/Caqil/lenstra-ecm/internal/validation"
)

// Source draws uniform integers from [lo, hi)
type Source interface {
	Int(lo, hi *big.Int) (*big.Int, error)
}

// ReaderSource turns a stream of random bytes into uniform integers
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource wraps r. The distribution is only as good as r.
func NewReaderSource(r io.Reader) (*ReaderSource, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	return &ReaderSource{r: r}, nil
}

// NewCryptoSource returns a source backed by crypto/rand
func NewCryptoSource() *ReaderSource {
	return &ReaderSource{r: rand.Reader}
}

// Int returns a uniform integer in [lo, hi)
func (s *ReaderSource) Int(lo, hi *big.Int) (*big.Int, error) {
	if err := validation.ValidateRange(lo, hi); err != nil {
		return nil, err
	}

	span := new(big.Int).Sub(hi, lo)
	v, err := uniform(s.r, span)
	if err != nil {
		return nil, err
	}

	return v.Add(v, lo), nil
}

// uniform samples [0, max) by rejection: draw BitLen(max-1) bits and retry
// until the candidate falls below max. The byte consumption only depends
// on the stream, so a deterministic reader yields a deterministic sequence.
func uniform(r io.Reader, max *big.Int) (*big.Int, error) {
	limit := new(big.Int).Sub(max, big.NewInt(1))
	bitLen := limit.BitLen()
	if bitLen == 0 {
		return new(big.Int), nil
	}

	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff)
	if rem := uint(bitLen % 8); rem != 0 {
		mask = byte(1<<rem) - 1
	}

	n := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask

		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
