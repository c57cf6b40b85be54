// This file contains the closed-form nth-term evaluator: companion-matrix
// exponentiation by squaring, with parity identities for the canonical
// Fibonacci/Lucas pair on negative indices.
package recurrence

import (
	"context"
	"math/big"
)

// matrix is a dense k-by-k integer matrix in row-major order. It is an
// ephemeral computation buffer: built fresh per Term query and discarded.
type matrix struct {
	k     int
	cells []*big.Int
}

// newMatrix creates a k-by-k zero matrix.
func newMatrix(k int) *matrix {
	m := &matrix{k: k, cells: make([]*big.Int, k*k)}
	for i := range m.cells {
		m.cells[i] = new(big.Int)
	}
	return m
}

// at returns the cell at row r, column c.
func (m *matrix) at(r, c int) *big.Int { return m.cells[r*m.k+c] }

// newCompanion builds the companion matrix of a specification: the reversed
// coefficient vector as the first row, a shifted identity below. Applying
// its n-th power to the reversed seed vector advances the recurrence by n
// steps.
func newCompanion(spec *Spec) *matrix {
	k := spec.Order()
	m := newMatrix(k)
	for j := 0; j < k; j++ {
		m.at(0, j).Set(spec.coeffs[k-1-j])
	}
	for r := 1; r < k; r++ {
		m.at(r, r-1).SetInt64(1)
	}
	return m
}

// newIdentity builds the k-by-k identity matrix.
func newIdentity(k int) *matrix {
	m := newMatrix(k)
	for i := 0; i < k; i++ {
		m.at(i, i).SetInt64(1)
	}
	return m
}

// mul sets m to the product a*b. The destination must be distinct from both
// operands; the caller rotates buffers to guarantee this.
func (m *matrix) mul(a, b *matrix) {
	k := m.k
	tmp := new(big.Int)
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			cell := m.at(r, c)
			cell.SetInt64(0)
			for i := 0; i < k; i++ {
				tmp.Mul(a.at(r, i), b.at(i, c))
				cell.Add(cell, tmp)
			}
		}
	}
}

// set copies the cells of other into m.
func (m *matrix) set(other *matrix) {
	for i, c := range other.cells {
		m.cells[i].Set(c)
	}
}

// power computes base^e by binary exponentiation (square-and-multiply),
// rotating three buffers so no multiplication aliases its destination.
// The exponent e must be at least 1.
func power(base *matrix, e uint64) *matrix {
	k := base.k
	result := newIdentity(k)
	sq := newMatrix(k)
	sq.set(base)
	scratch := newMatrix(k)

	for e > 0 {
		if e&1 == 1 {
			scratch.mul(result, sq)
			result, scratch = scratch, result
		}
		e >>= 1
		if e > 0 {
			scratch.mul(sq, sq)
			sq, scratch = scratch, sq
		}
	}
	return result
}

// Term returns the exact term of the recurrence at index n, for any sign of
// n, in O(log |n|) big-integer matrix multiplications.
//
// Indices inside the seed short-circuit to the seed vector and never enter
// matrix exponentiation. Negative indices use the parity identities for the
// canonical Fibonacci (0, 1) and Lucas-number (2, 1) unit-coefficient pairs,
// and fall back to consuming the backward stream otherwise.
//
// Parameters:
//   - spec: The recurrence specification.
//   - n: The index, possibly negative.
//
// Returns:
//   - *big.Int: The term at index n.
//   - error: ErrOrderTooSmall when the matrix path is required for an
//     order-1 spec, or ErrInexactInverse from the backward fallback.
func Term(spec *Spec, n int64) (*big.Int, error) {
	k := spec.Order()

	if n >= 0 && n < int64(k) {
		return spec.Seed(int(n)), nil
	}

	if n < 0 {
		return negativeTerm(spec, n)
	}

	if k < 2 {
		return nil, ErrOrderTooSmall
	}

	// t(n) is the first component of C^(n-k+1) applied to the reversed
	// seed vector (t(k-1), ..., t(0)).
	p := power(newCompanion(spec), uint64(n)-uint64(k)+1)
	out := new(big.Int)
	tmp := new(big.Int)
	for j := 0; j < k; j++ {
		tmp.Mul(p.at(0, j), spec.seeds[k-1-j])
		out.Add(out, tmp)
	}
	return out, nil
}

// negativeTerm evaluates a negative index, via closed parity identities for
// the canonical pairs or the backward stream for everything else.
func negativeTerm(spec *Spec, n int64) (*big.Int, error) {
	m := -n

	// F(-m) = (-1)^(m+1) * F(m) for the canonical Fibonacci seed, and
	// L(-m) = (-1)^m * L(m) for its Lucas companion.
	if spec.isCanonicalFibonacci() || spec.isCanonicalLucasNumbers() {
		v, err := Term(spec, m)
		if err != nil {
			return nil, err
		}
		negateOnEven := spec.isCanonicalFibonacci()
		if (m%2 == 0) == negateOnEven {
			v.Neg(v)
		}
		return v, nil
	}

	bs := NewBackwardStream(spec)
	ctx := context.Background()
	var v *big.Int
	var err error
	for i := int64(0); i <= m; i++ {
		v, err = bs.Next(ctx)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NthFibonacci returns the term at index n of the all-ones recurrence with
// the given seed (canonical Fibonacci when omitted). It is the closed-form
// companion of Fibonacci + NewStream.
//
// Parameters:
//   - n: The index, possibly negative.
//   - seeds: Optional initial terms, as for Fibonacci.
//
// Returns:
//   - *big.Int: The term at index n.
//   - error: See Term.
func NthFibonacci(n int64, seeds ...int64) (*big.Int, error) {
	return Term(Fibonacci(seeds...), n)
}
