// This file contains the lazy streaming generators: the forward stream
// emitting t(0), t(1), t(2), ... and the backward stream emitting
// t(0), t(-1), t(-2), ... over the negative indices.
package recurrence

import (
	"context"
	"math/big"
)

// Stream is a lazy, infinite forward generator for a recurrence
// specification. It first emits the seed terms in order, then each
// coefficient-weighted sum of the trailing k terms.
//
// Every call to NewStream creates fresh state; a Stream must not be shared
// across goroutines.
type Stream struct {
	spec *Spec
	// window holds the trailing k terms, oldest first.
	window  []*big.Int
	emitted uint64
}

// NewStream creates a forward stream over spec.
//
// Parameters:
//   - spec: The recurrence specification. Must be non-nil.
//
// Returns:
//   - *Stream: A generator with fresh, independent state.
func NewStream(spec *Spec) *Stream {
	return &Stream{spec: spec, window: make([]*big.Int, 0, spec.Order())}
}

// Next advances the stream and returns the next term.
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
	k := s.spec.Order()

	// The seed terms are emitted verbatim before the recurrence kicks in.
	if int(s.emitted) < k {
		v := s.spec.Seed(int(s.emitted))
		s.window = append(s.window, new(big.Int).Set(v))
		s.emitted++
		return v, nil
	}

	next := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < k; i++ {
		tmp.Mul(s.spec.coeffs[i], s.window[i])
		next.Add(next, tmp)
	}

	// Slide the window: drop the oldest term, reuse its allocation.
	oldest := s.window[0]
	copy(s.window, s.window[1:])
	s.window[k-1] = oldest.Set(next)

	s.emitted++
	return next, nil
}

// Index returns the number of terms emitted so far.
func (s *Stream) Index() uint64 { return s.emitted }

// BackwardStream is a lazy, infinite generator extending a recurrence into
// negative indices: it emits t(0), then t(-1), t(-2), and so on, by solving
// the recurrence for the earliest unknown term of the window.
//
// The solving step divides by the oldest coefficient. For unit-coefficient
// families (Fibonacci-like, and Lucas with Q = ±1 up to sign) the division
// is always exact; for other coefficients an inexact step returns
// ErrInexactInverse.
type BackwardStream struct {
	spec *Spec
	// window holds k consecutive terms t(m), ..., t(m+k-1), oldest first.
	window  []*big.Int
	emitted uint64
}

// NewBackwardStream creates a backward stream over spec.
//
// Parameters:
//   - spec: The recurrence specification. Must be non-nil.
//
// Returns:
//   - *BackwardStream: A generator with fresh, independent state.
func NewBackwardStream(spec *Spec) *BackwardStream {
	return &BackwardStream{spec: spec}
}

// Next advances the stream and returns the next term: t(0) on the first
// call, then t(-1), t(-2), ...
//
// Parameters:
//   - ctx: The context for managing cancellation.
//
// Returns:
//   - *big.Int: The next term, owned by the caller.
//   - error: ctx.Err() on cancellation, or ErrInexactInverse when the
//     inverse relation does not divide exactly.
func (s *BackwardStream) Next(ctx context.Context) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	k := s.spec.Order()

	if s.emitted == 0 {
		s.window = copyVector(s.spec.seeds)
		s.emitted++
		return s.spec.Seed(0), nil
	}

	// The window spans t(m), ..., t(m+k-1). The recurrence at index m+k-1
	// reads t(m+k-1) = coeffs[k-1]*t(m+k-2) + ... + coeffs[0]*t(m-1);
	// solve it for the earliest unknown t(m-1).
	num := new(big.Int).Set(s.window[k-1])
	tmp := new(big.Int)
	for i := 1; i < k; i++ {
		tmp.Mul(s.spec.coeffs[i], s.window[i-1])
		num.Sub(num, tmp)
	}

	prev := new(big.Int)
	if s.spec.coeffs[0].Cmp(intOne) != 0 {
		rem := new(big.Int)
		prev.QuoRem(num, s.spec.coeffs[0], rem)
		if rem.Sign() != 0 {
			return nil, ErrInexactInverse
		}
	} else {
		prev.Set(num)
	}

	// Slide the window toward negative indices, reusing the allocation of
	// the newest term, which falls off.
	newest := s.window[k-1]
	copy(s.window[1:], s.window[:k-1])
	s.window[0] = newest.Set(prev)

	s.emitted++
	return prev, nil
}

// Index returns the number of terms emitted so far.
func (s *BackwardStream) Index() uint64 { return s.emitted }
