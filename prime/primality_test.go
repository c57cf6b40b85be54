package prime

import (
	"math/big"
	"testing"
)

func TestIsPrimeKnownValues(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n    int64
		want bool
	}{
		{-7, false}, {0, false}, {1, false},
		{2, true}, {3, true}, {4, false}, {5, true},
		{9, false}, {11, true}, {13, true},
		{25, false}, {97, true}, {169, false}, // 13^2, the first square past the wheel start
		{561, false},                          // Carmichael number
		{7919, true},                          // 1000th prime
		{7921, false},                         // 89^2
	}
	for _, tc := range cases {
		if got := IsPrime(tc.n); got != tc.want {
			t.Errorf("IsPrime(%d): expected %v, got %v", tc.n, tc.want, got)
		}
	}
}

func TestIsCompositeKnownValues(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n    int64
		want bool
	}{
		{-4, false}, {0, false},
		{1, true}, // by the original convention
		{2, false}, {3, false}, {4, true},
		{9, true}, {10, true}, {11, false},
		{561, true}, {7919, false},
	}
	for _, tc := range cases {
		if got := IsComposite(tc.n); got != tc.want {
			t.Errorf("IsComposite(%d): expected %v, got %v", tc.n, tc.want, got)
		}
	}
}

// TestMillerRabinCrossValidation compares the probabilistic test with exact
// trial division over [2, 10000]. With 40 rounds the false-positive
// probability is below 4^-40, so disagreement means a bug, not bad luck.
func TestMillerRabinCrossValidation(t *testing.T) {
	t.Parallel()
	for n := int64(2); n <= 10000; n++ {
		exact := IsPrime(n)
		probable := MillerRabin(big.NewInt(n), 40)
		if exact != probable {
			t.Fatalf("n=%d: IsPrime=%v but MillerRabin=%v", n, exact, probable)
		}
	}
}

// TestMillerRabinCarmichael checks that Carmichael numbers, which fool the
// plain Fermat test for every coprime base, are still rejected.
func TestMillerRabinCarmichael(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{561, 1105, 1729, 2465, 6601, 8911} {
		if MillerRabin(big.NewInt(n), 40) {
			t.Errorf("MillerRabin(%d) accepted a Carmichael number.", n)
		}
	}
}

func TestMillerRabinEdgeCases(t *testing.T) {
	t.Parallel()
	if MillerRabin(nil, 8) {
		t.Error("nil input must be false.")
	}
	for _, n := range []int64{-5, 0, 1} {
		if MillerRabin(big.NewInt(n), 8) {
			t.Errorf("MillerRabin(%d): out-of-domain input must be false.", n)
		}
	}
	for _, n := range []int64{2, 3} {
		if !MillerRabin(big.NewInt(n), 8) {
			t.Errorf("MillerRabin(%d): expected true.", n)
		}
	}
	if MillerRabin(big.NewInt(1 << 20), 8) {
		t.Error("Even composite must be false.")
	}
}

// TestMillerRabinLargePrime exercises the test beyond trial-division range:
// the Mersenne prime 2^61 - 1 and its predecessor.
func TestMillerRabinLargePrime(t *testing.T) {
	t.Parallel()
	m61 := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 61), bigOne)
	if !MillerRabin(m61, 40) {
		t.Error("2^61-1 is prime and must pass.")
	}
	even := new(big.Int).Sub(m61, bigOne)
	if MillerRabin(even, 40) {
		t.Error("2^61-2 is composite and must fail.")
	}
}

// TestMillerRabinDefaultRounds checks the rounds fallback.
func TestMillerRabinDefaultRounds(t *testing.T) {
	t.Parallel()
	if !MillerRabin(big.NewInt(101), 0) {
		t.Error("Rounds fallback: 101 is prime and must pass.")
	}
	if MillerRabin(big.NewInt(100), -3) {
		t.Error("Rounds fallback: 100 is composite and must fail.")
	}
}
