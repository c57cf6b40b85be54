package polygonal

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func takeInt64(t *testing.T, s *Stream, n int) []int64 {
	t.Helper()
	ctx := context.Background()
	out := make([]int64, n)
	for i := range out {
		v, err := s.Next(ctx)
		require.NoError(t, err)
		out[i] = v.Int64()
	}
	return out
}

func TestStreamFirstTerms(t *testing.T) {
	t.Parallel()
	cases := []struct {
		sides int
		want  []int64
	}{
		{3, []int64{1, 3, 6, 10, 15, 21, 28, 36, 45, 55}},
		{4, []int64{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}},
		{5, []int64{1, 5, 12, 22, 35, 51, 70, 92, 117, 145}},
		{6, []int64{1, 6, 15, 28, 45, 66, 91, 120, 153, 190}},
	}
	for _, tc := range cases {
		s, err := NewStream(tc.sides)
		require.NoError(t, err)
		assert.Equal(t, tc.want, takeInt64(t, s, len(tc.want)), "sides=%d", tc.sides)
		assert.Equal(t, uint64(len(tc.want)), s.Index())
	}
}

func TestNewStreamRejectsDegeneratePolygons(t *testing.T) {
	t.Parallel()
	for _, sides := range []int{-1, 0, 1, 2} {
		_, err := NewStream(sides)
		assert.True(t, errors.Is(err, ErrTooFewSides), "sides=%d", sides)
	}
}

func TestNthAgreesWithStream(t *testing.T) {
	t.Parallel()
	for sides := 3; sides <= 12; sides++ {
		s, err := NewStream(sides)
		require.NoError(t, err)
		got := takeInt64(t, s, 30)
		for i, v := range got {
			assert.Equal(t, v, Nth(sides, int64(i+1)).Int64(), "sides=%d n=%d", sides, i+1)
		}
	}
}

func TestIsPolygonal(t *testing.T) {
	t.Parallel()
	// Members straight from the closed form, including a large one.
	for sides := 3; sides <= 8; sides++ {
		for _, n := range []int64{1, 2, 3, 10, 1000, 123456} {
			v := Nth(sides, n)
			assert.True(t, IsPolygonal(v, sides), "P(%d,%d)=%s", sides, n, v)
		}
	}

	assert.True(t, IsPolygonal(big.NewInt(5050), 3), "5050 is triangular")
	assert.False(t, IsPolygonal(big.NewInt(2), 4))
	assert.False(t, IsPolygonal(big.NewInt(7), 3))
	assert.False(t, IsPolygonal(big.NewInt(48), 4), "one below a square")

	// Out-of-domain input is definitively false, never an error.
	assert.False(t, IsPolygonal(nil, 4))
	assert.False(t, IsPolygonal(big.NewInt(0), 4))
	assert.False(t, IsPolygonal(big.NewInt(-9), 4))
	assert.False(t, IsPolygonal(big.NewInt(9), 2))
}

// TestIsPolygonalExactSqrt pins the case the original float-based check got
// wrong: values adjacent to a huge perfect square must not be accepted.
func TestIsPolygonalExactSqrt(t *testing.T) {
	t.Parallel()
	root, ok := new(big.Int).SetString("123456789123456789123456789", 10)
	require.True(t, ok)
	square := new(big.Int).Mul(root, root)

	assert.True(t, IsPolygonal(square, 4))
	assert.False(t, IsPolygonal(new(big.Int).Add(square, big.NewInt(1)), 4))
	assert.False(t, IsPolygonal(new(big.Int).Sub(square, big.NewInt(1)), 4))
}

func TestStreamContextCancellation(t *testing.T) {
	t.Parallel()
	s, err := NewStream(3)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Next(ctx)
	assert.Error(t, err)
}
