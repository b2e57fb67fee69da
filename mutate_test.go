package bitkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitkit/testutil"
)

// fromModel builds a fixed set holding the bits of m.
func fromModel(t *testing.T, m testutil.Model) *BitSet {
	t.Helper()
	b, err := FromText(m.String(), '1', 0, len(m))
	require.NoError(t, err)
	return b
}

func TestPointOps(t *testing.T) {
	b := NewFixed(130)

	prev, err := b.Set(129, true)
	require.NoError(t, err)
	assert.False(t, prev)

	prev, err = b.Set(129, true)
	require.NoError(t, err)
	assert.True(t, prev)

	v, err := b.Test(129)
	require.NoError(t, err)
	assert.True(t, v)

	prev, err = b.Flip(64)
	require.NoError(t, err)
	assert.False(t, prev)
	assert.True(t, b.Get(64))

	prev, err = b.Reset(64)
	require.NoError(t, err)
	assert.True(t, prev)
	assert.False(t, b.Get(64))

	assert.Equal(t, 1, b.Popcount())
	requireTrailingZero(t, b)
}

func TestPointOps_OutOfRange(t *testing.T) {
	b := NewFixed(10)

	for _, i := range []int{-1, 10, 64} {
		_, err := b.Test(i)
		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, i, ie.Index)
		assert.Equal(t, 10, ie.Size)
		assert.ErrorIs(t, err, ErrArgument)

		_, err = b.Set(i, true)
		assert.ErrorIs(t, err, ErrArgument)
		_, err = b.Flip(i)
		assert.ErrorIs(t, err, ErrArgument)
		_, err = b.Reset(i)
		assert.ErrorIs(t, err, ErrArgument)
	}
	assert.True(t, b.None())
	requireTrailingZero(t, b)
}

func TestRangeOps(t *testing.T) {
	tests := []struct {
		name     string
		start, n int
	}{
		{"single bit", 5, 1},
		{"empty range", 7, 0},
		{"inside one block", 3, 40},
		{"exact block", 64, 64},
		{"two blocks", 60, 10},
		{"many blocks", 1, 298},
		{"whole set", 0, 300},
		{"tail", 250, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := testutil.NewRNG(int64(tt.start*1000 + tt.n))
			m := testutil.Model(rng.Bits(300, 0.5))

			b := fromModel(t, m)
			require.NoError(t, b.SetRange(tt.start, tt.n, true))
			want := m.Clone()
			want.SetRange(tt.start, tt.n, true)
			assert.Equal(t, want.String(), b.String())
			requireTrailingZero(t, b)

			b = fromModel(t, m)
			require.NoError(t, b.ResetRange(tt.start, tt.n))
			want = m.Clone()
			want.SetRange(tt.start, tt.n, false)
			assert.Equal(t, want.String(), b.String())
			requireTrailingZero(t, b)

			b = fromModel(t, m)
			require.NoError(t, b.FlipRange(tt.start, tt.n))
			want = m.Clone()
			want.FlipRange(tt.start, tt.n)
			assert.Equal(t, want.String(), b.String())
			requireTrailingZero(t, b)
		})
	}
}

func TestRangeOps_Laws(t *testing.T) {
	rng := testutil.NewRNG(7)
	m := testutil.Model(rng.Bits(517, 0.3))

	for range 200 {
		start := rng.Intn(len(m))
		n := rng.Intn(len(m) - start + 1)

		b := fromModel(t, m)
		require.NoError(t, b.SetRange(start, n, true))
		once := b.String()
		require.NoError(t, b.SetRange(start, n, true))
		assert.Equal(t, once, b.String(), "SetRange(%d, %d) is idempotent", start, n)

		b = fromModel(t, m)
		require.NoError(t, b.FlipRange(start, n))
		require.NoError(t, b.FlipRange(start, n))
		assert.Equal(t, m.String(), b.String(), "FlipRange(%d, %d) twice", start, n)
	}
}

func TestRangeOps_Invalid(t *testing.T) {
	b := NewFixed(100)
	require.NoError(t, b.SetRange(10, 20, true))
	before := b.String()

	tests := []struct {
		start, n int
	}{
		{-1, 1},
		{100, 0},
		{0, 101},
		{99, 2},
		{50, -1},
	}
	for _, tt := range tests {
		err := b.SetRange(tt.start, tt.n, true)
		var re *RangeError
		require.ErrorAs(t, err, &re, "start %d n %d", tt.start, tt.n)
		assert.ErrorIs(t, err, ErrArgument)

		assert.ErrorIs(t, b.ResetRange(tt.start, tt.n), ErrArgument)
		assert.ErrorIs(t, b.FlipRange(tt.start, tt.n), ErrArgument)
	}
	assert.Equal(t, before, b.String())
}

func TestWholeSetOps(t *testing.T) {
	b := NewFixed(77)

	b.SetAll(true)
	assert.Equal(t, 77, b.Popcount())
	assert.True(t, b.All())
	requireTrailingZero(t, b)

	b.FlipAll()
	assert.True(t, b.None())
	requireTrailingZero(t, b)

	_, _ = b.Set(3, true)
	b.FlipAll()
	assert.Equal(t, 76, b.Popcount())
	assert.False(t, b.Get(3))
	requireTrailingZero(t, b)

	b.ResetAll()
	assert.True(t, b.None())

	empty := NewDynamic(HeapAllocator{})
	empty.SetAll(true)
	empty.FlipAll()
	assert.True(t, empty.Empty())
}

func TestGet_Trusting(t *testing.T) {
	b := NewFixed(10)
	_, _ = b.Set(9, true)

	assert.True(t, b.Get(9))
	assert.False(t, b.Get(10))
	assert.False(t, b.Get(-1))
	assert.False(t, b.Get(1<<20))
}
