package ecm

import "math/big"

// primePowers returns, for every prime p <= bound, the largest power of p
// not exceeding bound
func primePowers(bound int) []*big.Int {
	if bound < 2 {
		return nil
	}

	composite := make([]bool, bound+1)
	var powers []*big.Int
	for p := 2; p <= bound; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= bound; m += p {
			composite[m] = true
		}

		q := p
		for q <= bound/p {
			q *= p
		}
		powers = append(powers, big.NewInt(int64(q)))
	}

	return powers
}
