// Package polygonal provides the closed-form stream of s-gonal numbers and
// the matching membership predicate.
//
// P(s, n) = ((s-2)n² - (s-4)n) / 2 counts the dots forming a regular
// s-sided polygon at side length n. The stream is stateless beyond its
// counter: every term comes straight from the closed form.
package polygonal

import (
	"context"
	"errors"
	"math/big"
)

// ErrTooFewSides is returned when constructing a stream for a polygon with
// fewer than three sides.
var ErrTooFewSides = errors.New("polygonal: a polygon requires at least three sides")

// Stream is a lazy, infinite generator of s-gonal numbers starting at
// index 1: P(s, 1), P(s, 2), P(s, 3), ...
type Stream struct {
	sides int64
	n     uint64
}

// NewStream creates an s-gonal number stream.
//
// Parameters:
//   - sides: The number of polygon sides; must be at least 3.
//
// Returns:
//   - *Stream: A generator with fresh state.
//   - error: ErrTooFewSides when sides < 3.
func NewStream(sides int) (*Stream, error) {
	if sides < 3 {
		return nil, ErrTooFewSides
	}
	return &Stream{sides: int64(sides)}, nil
}

// Next advances the stream and returns the next s-gonal number.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//
// Returns:
//   - *big.Int: The next term, owned by the caller.
//   - error: ctx.Err() if the context was cancelled.
func (s *Stream) Next(ctx context.Context) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.n++
	return Nth(int(s.sides), int64(s.n)), nil
}

// Index returns the number of terms emitted so far.
func (s *Stream) Index() uint64 { return s.n }

// Nth returns the n-th s-gonal number by the closed form
// ((s-2)n² - (s-4)n) / 2. The division is always exact.
//
// Parameters:
//   - sides: The number of polygon sides.
//   - n: The 1-based index.
//
// Returns:
//   - *big.Int: P(sides, n).
func Nth(sides int, n int64) *big.Int {
	s := int64(sides)
	bn := big.NewInt(n)
	out := new(big.Int).Mul(bn, bn)
	out.Mul(out, big.NewInt(s-2))
	tmp := new(big.Int).Mul(bn, big.NewInt(s-4))
	out.Sub(out, tmp)
	return out.Rsh(out, 1)
}

// IsPolygonal reports whether n is an s-gonal number, by inverting the
// closed form exactly: n is s-gonal iff
//
//	(sqrt(8(s-2)n + (s-4)²) + s - 4) / (2(s-2))
//
// is a positive integer. The square root is the exact integer square root;
// no floating point is involved, so the answer is correct for arbitrarily
// large n.
//
// Parameters:
//   - n: The value to test. Values below 1 are never polygonal.
//   - sides: The number of polygon sides; values below 3 yield false.
//
// Returns:
//   - bool: true if n is an s-gonal number.
func IsPolygonal(n *big.Int, sides int) bool {
	if n == nil || sides < 3 || n.Sign() < 1 {
		return false
	}
	s := int64(sides)

	// discriminant = 8(s-2)n + (s-4)²
	disc := new(big.Int).Mul(n, big.NewInt(8*(s-2)))
	disc.Add(disc, big.NewInt((s-4)*(s-4)))

	root := new(big.Int).Sqrt(disc)
	if new(big.Int).Mul(root, root).Cmp(disc) != 0 {
		return false
	}

	num := root.Add(root, big.NewInt(s-4))
	den := big.NewInt(2 * (s - 2))
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	return rem.Sign() == 0 && quo.Sign() == 1
}
