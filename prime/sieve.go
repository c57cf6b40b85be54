// Package prime provides an incremental, wheel-factorized prime generator
// and the primality predicates built on top of it.
//
// The generator never sieves a fixed range: it maintains a frontier map from
// "next composite value" to "prime that produces it", extending itself as
// candidates are consumed. A factorization wheel over the first five primes
// (2*3*5*7*11 = 2310) skips candidates sharing a factor with the wheel
// product before the frontier is ever consulted.
package prime

import (
	"context"
	"math/big"
)

// Wheel configuration. The wheel is fixed at construction of the package:
// the product of the first five primes and the odd-candidate start point.
const (
	// wheelSpan is the wheel modulus, the product 2*3*5*7*11.
	wheelSpan = 2310
	// wheelStart is the first candidate examined by the wheel: the smallest
	// odd number greater than the largest wheel factor's successor prime gap,
	// i.e. the first prime not dividing the wheel product.
	wheelStart = 13
)

// wheelPrimes are the primes dividing the wheel product. They are emitted
// unconditionally before the wheel takes over: they lie outside its coprime
// residue logic.
var wheelPrimes = [...]uint64{2, 3, 5, 7, 11}

// coprime marks the residues modulo wheelSpan that are coprime to the wheel
// product. Every prime above 11 falls on one of these residues.
var coprime [wheelSpan]bool

// skipMask is the per-position skip pattern over one full wheel period of
// odd candidates starting at wheelStart. Cycling it gives O(1) amortized
// rejection of candidates outside the residue set.
var skipMask [wheelSpan / 2]bool

func init() {
	for r := 0; r < wheelSpan; r++ {
		coprime[r] = gcd(uint64(r), wheelSpan) == 1
	}
	for i, n := 0, uint64(wheelStart); i < len(skipMask); i, n = i+1, n+2 {
		skipMask[i] = coprime[n%wheelSpan]
	}
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Sieve is a lazy, infinite, strictly increasing generator of prime numbers.
//
// Each call to NewSieve creates fresh state; a Sieve is not restartable and
// must not be shared across goroutines (no internal locking). Two
// independently created Sieves are safe to consume concurrently.
//
// The frontier map keys are squares and multiples of discovered primes, so
// the generator is exact for all candidates below 2^32; memory exhausts far
// before that bound is reached.
type Sieve struct {
	// frontier maps the next not-yet-reached composite to the prime that
	// produced it. At any point every discovered prime above the wheel
	// factors has exactly one pending entry.
	frontier map[uint64]uint64
	// candidate is the next odd value to examine.
	candidate uint64
	// maskPos is the current position in the cycled skip mask.
	maskPos int
	// queued counts how many wheel primes have been emitted so far.
	queued int
	// emitted counts all primes emitted so far.
	emitted uint64
}

// NewSieve creates a prime generator starting at 2.
//
// Returns:
//   - *Sieve: A generator with fresh, independent state.
func NewSieve() *Sieve {
	return &Sieve{
		frontier:  make(map[uint64]uint64),
		candidate: wheelStart,
	}
}

// NextUint64 advances the generator and returns the next prime as a uint64.
// The sequence is infinite and never fails; the only error returned is the
// context's, checked once per call.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//
// Returns:
//   - uint64: The next prime.
//   - error: ctx.Err() if the context was cancelled.
func (s *Sieve) NextUint64(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// The primes dividing the wheel product come first, unconditionally.
	if s.queued < len(wheelPrimes) {
		p := wheelPrimes[s.queued]
		s.queued++
		s.emitted++
		return p, nil
	}

	for {
		n := s.candidate
		inSet := skipMask[s.maskPos]
		s.candidate += 2
		s.maskPos++
		if s.maskPos == len(skipMask) {
			s.maskPos = 0
		}
		if !inSet {
			continue
		}

		p, composite := s.frontier[n]
		if !composite {
			// n is prime: its first interesting multiple is its square
			// (smaller multiples have smaller prime factors already tracked).
			s.frontier[n*n] = n
			s.emitted++
			return n, nil
		}

		// n is composite: advance the producing prime's frontier entry to
		// its next multiple that is free and inside the residue set.
		delete(s.frontier, n)
		m := n + 2*p
		for {
			if _, taken := s.frontier[m]; !taken && coprime[m%wheelSpan] {
				break
			}
			m += 2 * p
		}
		s.frontier[m] = p
	}
}

// Next advances the generator and returns the next prime as a *big.Int,
// implementing sequence.Stream.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//
// Returns:
//   - *big.Int: The next prime.
//   - error: ctx.Err() if the context was cancelled.
func (s *Sieve) Next(ctx context.Context) (*big.Int, error) {
	p, err := s.NextUint64(ctx)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(p), nil
}

// Index returns the number of primes emitted so far.
func (s *Sieve) Index() uint64 { return s.emitted }

// CompositeStream is a lazy, infinite, strictly increasing generator of
// composite numbers (4, 6, 8, 9, 10, ...). It drives an internal Sieve and
// emits every value the prime sequence skips.
//
// The scan starts at 1; the unit itself is emitted by no stream, being
// neither prime nor composite in sequence form (IsComposite still reports
// true for 1, matching the trial-division predicate).
type CompositeStream struct {
	sieve     *Sieve
	nextPrime uint64
	value     uint64
	emitted   uint64
}

// NewCompositeStream creates a composite generator with fresh state.
//
// Returns:
//   - *CompositeStream: A generator whose first values are 4, 6, 8, 9, 10.
func NewCompositeStream() *CompositeStream {
	return &CompositeStream{sieve: NewSieve()}
}

// NextUint64 advances the generator and returns the next composite.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//
// Returns:
//   - uint64: The next composite number.
//   - error: ctx.Err() if the context was cancelled.
func (c *CompositeStream) NextUint64(ctx context.Context) (uint64, error) {
	if c.nextPrime == 0 {
		p, err := c.sieve.NextUint64(ctx)
		if err != nil {
			return 0, err
		}
		c.nextPrime = p
		c.value = 1
	}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		c.value++
		if c.value == c.nextPrime {
			p, err := c.sieve.NextUint64(ctx)
			if err != nil {
				return 0, err
			}
			c.nextPrime = p
			continue
		}
		c.emitted++
		return c.value, nil
	}
}

// Next advances the generator and returns the next composite as a *big.Int,
// implementing sequence.Stream.
func (c *CompositeStream) Next(ctx context.Context) (*big.Int, error) {
	v, err := c.NextUint64(ctx)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(v), nil
}

// Index returns the number of composites emitted so far.
func (c *CompositeStream) Index() uint64 { return c.emitted }
