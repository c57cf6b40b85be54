// This file contains the membership predicates for recurrence sequences.
// The canonical Fibonacci pair has a closed-form fast path; every other
// specification is answered by scanning the forward stream until it passes
// the queried value.
//
// Scanning assumes the stream is eventually increasing past n, which holds
// for every non-negative, non-degenerate seed. Predicates never return
// errors: out-of-domain input is definitively false.
package recurrence

import (
	"context"
	"math/big"
)

// isPerfectSquare reports whether x is a perfect square, using the exact
// integer square root. No floating point is involved, so the answer is
// correct for arbitrarily large x.
func isPerfectSquare(x *big.Int) bool {
	if x.Sign() < 0 {
		return false
	}
	r := new(big.Int).Sqrt(x)
	return r.Mul(r, r).Cmp(x) == 0
}

// scanStream reports whether n occurs in the forward stream of spec. The
// scan stops at the first term strictly exceeding n once the seed prefix is
// behind: seed terms need not be ordered (the Lucas numbers open 2, 1, 3),
// so a large early seed term must not end the scan.
func scanStream(spec *Spec, n *big.Int) bool {
	s := NewStream(spec)
	ctx := context.Background()
	k := uint64(spec.Order())
	for {
		v, err := s.Next(ctx)
		if err != nil {
			return false
		}
		if v.Cmp(n) == 0 {
			return true
		}
		if v.Cmp(n) > 0 && s.Index() > k {
			return false
		}
	}
}

// IsFibonacci reports whether n occurs in the all-ones recurrence with the
// given seed. For the canonical (0, 1) seed it uses the closed-form test:
// n is a Fibonacci number iff 5n²+4 or 5n²-4 is a perfect square. Other
// seeds are answered by a stream scan.
//
// Parameters:
//   - n: The value to test. Negative values are never members.
//   - seeds: Optional initial terms, as for Fibonacci.
//
// Returns:
//   - bool: true if n occurs in the sequence.
func IsFibonacci(n *big.Int, seeds ...int64) bool {
	if n == nil || n.Sign() < 0 {
		return false
	}
	spec := Fibonacci(seeds...)
	if spec.isCanonicalFibonacci() {
		sq := new(big.Int).Mul(n, n)
		sq.Mul(sq, big.NewInt(5))
		plus := new(big.Int).Add(sq, big.NewInt(4))
		if isPerfectSquare(plus) {
			return true
		}
		minus := sq.Sub(sq, big.NewInt(4))
		return isPerfectSquare(minus)
	}
	return scanStream(spec, n)
}

// IsLucas reports whether n occurs in the Lucas sequence with parameters
// P, Q and the given two-term seed, by stream scan.
//
// Parameters:
//   - n: The value to test.
//   - p, q: The Lucas parameters.
//   - seeds: Exactly two initial terms; when omitted, (0, 1) is used.
//
// Returns:
//   - bool: true if n occurs in the sequence. A malformed seed yields false.
func IsLucas(n *big.Int, p, q int64, seeds ...int64) bool {
	if n == nil {
		return false
	}
	spec, err := Lucas(p, q, seeds...)
	if err != nil {
		return false
	}
	return scanStream(spec, n)
}

// IsPell reports whether n occurs in the Pell sequence with the given seed,
// the Lucas family member with P=2 and Q=-1.
//
// Parameters:
//   - n: The value to test.
//   - seeds: Exactly two initial terms; when omitted, (0, 1) is used.
//
// Returns:
//   - bool: true if n occurs in the sequence. A malformed seed yields false.
func IsPell(n *big.Int, seeds ...int64) bool {
	return IsLucas(n, 2, -1, seeds...)
}
