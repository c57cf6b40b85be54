package prime

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPrimalityProperties cross-validates the exact and probabilistic tests
// over random inputs using property-based testing.
func TestPrimalityProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("IsPrime agrees with MillerRabin", prop.ForAll(
		func(n int64) bool {
			return IsPrime(n) == MillerRabin(big.NewInt(n), 40)
		},
		gen.Int64Range(2, 20000),
	))

	properties.Property("IsComposite is the complement of IsPrime above 1", prop.ForAll(
		func(n int64) bool {
			return IsComposite(n) == !IsPrime(n)
		},
		gen.Int64Range(2, 20000),
	))

	properties.Property("the stream is strictly increasing and emits only primes", prop.ForAll(
		func(skip int) bool {
			s := NewSieve()
			prev := uint64(0)
			for i := 0; i < skip; i++ {
				p, err := s.NextUint64(context.Background())
				if err != nil {
					return false
				}
				if p <= prev || !IsPrime(int64(p)) {
					return false
				}
				prev = p
			}
			return true
		},
		gen.IntRange(1, 200),
	))

	properties.TestingRun(t)
}
