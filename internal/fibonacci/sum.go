package fibonacci

import (
	"math/big"
	"math/bits"
)

// DefaultSumTerms is the number of leading terms summed by default.
const DefaultSumTerms = 50

// FastDoubling computes F(n) with F(0)=0 and F(1)=1 using the fast doubling
// identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
func FastDoubling(n uint64) *big.Int {
	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	if n == 0 {
		return fk
	}

	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// F(2k)
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		// F(2k+1)
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}

	return fk
}

// Sum returns F(0) + F(1) + ... + F(n-1), the sum of the first n terms,
// using the closed form F(n+1) - 1.
func Sum(n uint64) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	s := FastDoubling(n + 1)
	return s.Sub(s, big.NewInt(1))
}

// SumIterative returns the same value as Sum by adding terms one at a time.
func SumIterative(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	total := new(big.Int)
	for i := uint64(0); i < n; i++ {
		total.Add(total, a)
		a.Add(a, b)
		a, b = b, a
	}
	return total
}
