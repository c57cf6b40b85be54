// This file contains the primality predicates: exact trial division bounded
// by the wheel sieve, and the probabilistic Miller-Rabin test.
//
// Predicates never return errors. Out-of-domain input (values below the
// sequence's support) yields a definitive false rather than a distinct
// "inapplicable" outcome.
package prime

import (
	"context"
	"crypto/rand"
	"math/big"
)

// DefaultMillerRabinRounds is the default number of Miller-Rabin witness
// rounds. The false-positive probability is at most 4^-rounds.
const DefaultMillerRabinRounds = 8

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// smallestBoundedFactor trial-divides n by the prime stream, stopping once
// the candidate prime exceeds the square root of n. This is the one place
// the infinite generator is safely bounded.
func smallestBoundedFactor(n uint64) (uint64, bool) {
	s := NewSieve()
	for {
		p, _ := s.NextUint64(context.Background())
		if p > n/p {
			return 0, false
		}
		if n%p == 0 {
			return p, true
		}
	}
}

// IsPrime reports whether n is prime, exactly, by trial division against the
// wheel sieve's prime stream up to the square root of n.
//
// Parameters:
//   - n: The number to test. Values below 2 are never prime.
//
// Returns:
//   - bool: true if n is prime.
func IsPrime(n int64) bool {
	if n == 2 {
		return true
	}
	if n < 2 {
		return false
	}
	_, found := smallestBoundedFactor(uint64(n))
	return !found
}

// IsComposite reports whether n is composite, exactly. The unit is composite
// by the original convention (it is the first value the composite scan
// visits); 2 and values below 1 are not.
//
// Parameters:
//   - n: The number to test.
//
// Returns:
//   - bool: true if n is composite.
func IsComposite(n int64) bool {
	if n == 1 {
		return true
	}
	if n < 1 || n == 2 {
		return false
	}
	_, found := smallestBoundedFactor(uint64(n))
	return found
}

// MillerRabin probabilistically tests n for primality using the given number
// of witness rounds. A false result is definitive (n is composite); a true
// result is a probable prime with false-positive probability at most
// 4^-rounds. This test is independent of the wheel sieve.
//
// Witness bases are drawn uniformly from [2, n-2] using crypto/rand.
//
// Parameters:
//   - n: The number to test. nil or values below 2 are never prime.
//   - rounds: The number of witness rounds; values below 1 fall back to
//     DefaultMillerRabinRounds.
//
// Returns:
//   - bool: true if n passes every round (probable prime).
func MillerRabin(n *big.Int, rounds int) bool {
	if n == nil || n.Cmp(bigTwo) < 0 {
		return false
	}
	if n.Cmp(big.NewInt(3)) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if rounds < 1 {
		rounds = DefaultMillerRabinRounds
	}

	// Decompose n-1 = 2^r * d with d odd.
	nMinus1 := new(big.Int).Sub(n, bigOne)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	// witnessSpan is the size of the witness range [2, n-2].
	witnessSpan := new(big.Int).Sub(n, big.NewInt(3))
	x := new(big.Int)

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(rand.Reader, witnessSpan)
		if err != nil {
			// The system RNG failing is not recoverable here; base 2 keeps
			// the round meaningful rather than silently passing it.
			a = new(big.Int)
		}
		a.Add(a, bigTwo)

		x = powMod(x, a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		witnessed := false
		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return false
		}
	}
	return true
}
