// Package recurrence implements generic order-k linear integer recurrences:
// lazy forward and backward streams, closed-form nth-term evaluation by
// companion-matrix exponentiation, and membership predicates for the
// Fibonacci, Lucas and Pell families.
package recurrence

import (
	"errors"
	"math/big"
)

// Sentinel errors returned at construction time. A malformed specification
// is a caller contract violation and fails fast rather than producing a
// silently wrong sequence.
var (
	// ErrEmptySeed is returned when the seed vector contains no terms.
	ErrEmptySeed = errors.New("recurrence: seed vector must contain at least one term")
	// ErrDimensionMismatch is returned when seed and coefficient vectors
	// have different lengths.
	ErrDimensionMismatch = errors.New("recurrence: seed and coefficient vectors must have equal length")
	// ErrOrderTooSmall is returned by Term when closed-form indexing is
	// requested for an order-1 specification.
	ErrOrderTooSmall = errors.New("recurrence: closed-form indexing requires order k >= 2")
	// ErrLucasSeedLength is returned when a Lucas-family constructor is
	// given a seed vector whose length is not exactly two.
	ErrLucasSeedLength = errors.New("recurrence: Lucas sequences require exactly two seed terms")
	// ErrInexactInverse is returned by the backward stream when a step does
	// not divide exactly by the oldest coefficient.
	ErrInexactInverse = errors.New("recurrence: backward step does not divide exactly by the oldest coefficient")
)

// Spec is an immutable order-k linear recurrence specification: a seed
// vector of the k initial terms and a coefficient vector of k multipliers.
// The rightmost coefficient applies to the most recent preceding term:
//
//	t(n) = coeffs[0]*t(n-k) + coeffs[1]*t(n-k+1) + ... + coeffs[k-1]*t(n-1)
//
// A Spec never changes after construction; streams and evaluators copy what
// they need from it.
type Spec struct {
	seeds  []*big.Int
	coeffs []*big.Int
}

// NewSpec creates a recurrence specification from seed and coefficient
// vectors. Both vectors are deep-copied; the caller keeps ownership of its
// slices.
//
// Parameters:
//   - seeds: The k initial terms, oldest first. k must be at least 1.
//   - coeffs: The k multipliers, oldest-term multiplier first.
//
// Returns:
//   - *Spec: The validated specification.
//   - error: ErrEmptySeed or ErrDimensionMismatch on contract violation.
func NewSpec(seeds, coeffs []*big.Int) (*Spec, error) {
	if len(seeds) == 0 {
		return nil, ErrEmptySeed
	}
	if len(seeds) != len(coeffs) {
		return nil, ErrDimensionMismatch
	}
	return &Spec{seeds: copyVector(seeds), coeffs: copyVector(coeffs)}, nil
}

// Fibonacci creates an all-ones-coefficient specification: each term is the
// sum of the k preceding terms. With the default seed (0, 1) this is the
// Fibonacci sequence; with seed (0, 0, 1) the Tribonacci sequence, and so on.
//
// Parameters:
//   - seeds: The initial terms. When omitted, the canonical (0, 1) is used.
//
// Returns:
//   - *Spec: The specification. Construction cannot fail: the coefficient
//     vector is derived from the seed length.
func Fibonacci(seeds ...int64) *Spec {
	if len(seeds) == 0 {
		seeds = []int64{0, 1}
	}
	k := len(seeds)
	s := &Spec{seeds: make([]*big.Int, k), coeffs: make([]*big.Int, k)}
	for i, v := range seeds {
		s.seeds[i] = big.NewInt(v)
		s.coeffs[i] = big.NewInt(1)
	}
	return s
}

// Lucas creates a two-term specification for the Lucas sequence family
//
//	t(n) = P*t(n-1) - Q*t(n-2)
//
// generalizing Fibonacci (P=1, Q=-1) and Pell (P=2, Q=-1) numbers.
//
// Parameters:
//   - p, q: The Lucas parameters.
//   - seeds: Exactly two initial terms; when omitted, (0, 1) is used.
//
// Returns:
//   - *Spec: The specification.
//   - error: ErrLucasSeedLength if a seed of length other than two is given.
func Lucas(p, q int64, seeds ...int64) (*Spec, error) {
	if len(seeds) == 0 {
		seeds = []int64{0, 1}
	}
	if len(seeds) != 2 {
		return nil, ErrLucasSeedLength
	}
	return &Spec{
		seeds:  []*big.Int{big.NewInt(seeds[0]), big.NewInt(seeds[1])},
		coeffs: []*big.Int{big.NewInt(-q), big.NewInt(p)},
	}, nil
}

// Pell creates the Pell specification, the Lucas family member with P=2 and
// Q=-1. The default seed (0, 1) yields the Pell numbers; seed (2, 2) the
// Pell-Lucas numbers.
//
// Parameters:
//   - seeds: Exactly two initial terms; when omitted, (0, 1) is used.
//
// Returns:
//   - *Spec: The specification.
//   - error: ErrLucasSeedLength if a seed of length other than two is given.
func Pell(seeds ...int64) (*Spec, error) {
	return Lucas(2, -1, seeds...)
}

// Order returns k, the length of the seed and coefficient vectors.
func (s *Spec) Order() int { return len(s.seeds) }

// Seed returns a copy of the i-th initial term.
func (s *Spec) Seed(i int) *big.Int { return new(big.Int).Set(s.seeds[i]) }

// Coefficient returns a copy of the i-th multiplier.
func (s *Spec) Coefficient(i int) *big.Int { return new(big.Int).Set(s.coeffs[i]) }

// unitCoefficients reports whether every coefficient equals one.
func (s *Spec) unitCoefficients() bool {
	for _, c := range s.coeffs {
		if c.Cmp(intOne) != 0 {
			return false
		}
	}
	return true
}

// isCanonicalFibonacci reports whether the spec is the canonical Fibonacci
// pair: order two, unit coefficients, seed (0, 1).
func (s *Spec) isCanonicalFibonacci() bool {
	return s.Order() == 2 && s.unitCoefficients() &&
		s.seeds[0].Sign() == 0 && s.seeds[1].Cmp(intOne) == 0
}

// isCanonicalLucasNumbers reports whether the spec is the Lucas-number
// companion of the canonical pair: order two, unit coefficients, seed (2, 1).
func (s *Spec) isCanonicalLucasNumbers() bool {
	return s.Order() == 2 && s.unitCoefficients() &&
		s.seeds[0].Cmp(intTwo) == 0 && s.seeds[1].Cmp(intOne) == 0
}

var (
	intOne = big.NewInt(1)
	intTwo = big.NewInt(2)
)

// copyVector deep-copies a vector of big integers.
func copyVector(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}
	return out
}
