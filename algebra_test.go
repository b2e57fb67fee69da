package bitkit

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitkit/testutil"
)

func equalSets(t *testing.T, want, got *BitSet) {
	t.Helper()
	eq, err := want.Equal(got)
	require.NoError(t, err)
	assert.True(t, eq, "want %s\n got %s", want, got)
}

// formatOnes renders the indexes of true bits, e.g. "[2 150]".
func formatOnes(b *BitSet) string {
	return fmt.Sprint(slices.Collect(b.Ones()))
}

func TestAlgebra_Laws(t *testing.T) {
	rng := testutil.NewRNG(3)
	ma := testutil.Model(rng.Bits(389, 0.5))
	mb := testutil.Model(rng.Bits(389, 0.5))
	a := fromModel(t, ma)

	self := fromModel(t, ma)
	require.NoError(t, self.Or(self))
	equalSets(t, a, self)

	require.NoError(t, self.And(self))
	equalSets(t, a, self)

	require.NoError(t, self.Xor(self))
	assert.Zero(t, self.Popcount())

	ops := map[string]func(dst, src *BitSet) error{
		"or":  (*BitSet).Or,
		"and": (*BitSet).And,
		"xor": (*BitSet).Xor,
	}
	for name, op := range ops {
		t.Run(name+" commutes", func(t *testing.T) {
			ab, ba := fromModel(t, ma), fromModel(t, mb)
			require.NoError(t, op(ab, fromModel(t, mb)))
			require.NoError(t, op(ba, fromModel(t, ma)))
			equalSets(t, ab, ba)
			requireTrailingZero(t, ab)
		})
	}

	t.Run("and not", func(t *testing.T) {
		d := fromModel(t, ma)
		require.NoError(t, d.AndNot(fromModel(t, mb)))
		for i := range ma {
			assert.Equal(t, ma[i] && !mb[i], d.Get(i), "bit %d", i)
		}
	})
}

func TestAlgebra_DifferentSizes(t *testing.T) {
	t.Run("or into smaller destination", func(t *testing.T) {
		dst, src := NewFixed(100), NewFixed(200)
		src.SetAll(true)

		require.NoError(t, dst.Or(src))
		assert.Equal(t, 100, dst.Popcount())
		requireTrailingZero(t, dst)
	})

	t.Run("or leaves destination tail", func(t *testing.T) {
		dst, src := NewFixed(200), NewFixed(10)
		_, _ = dst.Set(150, true)
		_, _ = src.Set(2, true)

		require.NoError(t, dst.Or(src))
		assert.Equal(t, "[2 150]", formatOnes(dst))
	})

	t.Run("xor from smaller source", func(t *testing.T) {
		dst, src := NewFixed(200), NewFixed(70)
		src.SetAll(true)

		require.NoError(t, dst.Xor(src))
		assert.Equal(t, 70, dst.Popcount())
	})

	t.Run("and clears destination tail", func(t *testing.T) {
		dst, src := NewFixed(100), NewFixed(50)
		dst.SetAll(true)
		_, _ = src.Set(10, true)

		require.NoError(t, dst.And(src))
		assert.Equal(t, "[10]", formatOnes(dst))
		assert.Equal(t, 100, dst.Count())
	})

	t.Run("and with empty source clears destination", func(t *testing.T) {
		dst := NewFixed(100)
		dst.SetAll(true)

		require.NoError(t, dst.And(NewDynamic(HeapAllocator{})))
		assert.True(t, dst.None())
		assert.Equal(t, 100, dst.Count())
	})

	t.Run("and not ignores source tail", func(t *testing.T) {
		dst, src := NewFixed(64), NewFixed(128)
		dst.SetAll(true)
		src.SetAll(true)

		require.NoError(t, dst.AndNot(src))
		assert.True(t, dst.None())
	})
}

func TestShift(t *testing.T) {
	t.Run("full set", func(t *testing.T) {
		b := NewFixed(512)
		b.SetAll(true)
		require.NoError(t, b.ShiftLeft(510))
		assert.Equal(t, "[510 511]", formatOnes(b))

		b.SetAll(true)
		require.NoError(t, b.ShiftRight(510))
		assert.Equal(t, "[0 1]", formatOnes(b))
	})

	t.Run("shift past size clears", func(t *testing.T) {
		for _, n := range []int{512, 513, 1 << 20} {
			b := NewFixed(512)
			b.SetAll(true)
			require.NoError(t, b.ShiftLeft(n))
			assert.True(t, b.None())

			b.SetAll(true)
			require.NoError(t, b.ShiftRight(n))
			assert.True(t, b.None())
		}
	})

	t.Run("negative shift", func(t *testing.T) {
		b := NewFixed(8)
		assert.ErrorIs(t, b.ShiftLeft(-1), ErrArgument)
		assert.ErrorIs(t, b.ShiftRight(-1), ErrArgument)
	})

	t.Run("matches model", func(t *testing.T) {
		rng := testutil.NewRNG(99)
		for range 100 {
			size := 1 + rng.Intn(600)
			m := testutil.Model(rng.Bits(size, 0.5))
			n := rng.Intn(size + 10)

			b := fromModel(t, m)
			require.NoError(t, b.ShiftLeft(n))
			want := m.Clone()
			want.ShiftLeft(n)
			assert.Equal(t, want.String(), b.String(), "left %d", n)
			requireTrailingZero(t, b)

			b = fromModel(t, m)
			require.NoError(t, b.ShiftRight(n))
			want = m.Clone()
			want.ShiftRight(n)
			assert.Equal(t, want.String(), b.String(), "right %d", n)
			requireTrailingZero(t, b)
		}
	})
}

func TestSubset(t *testing.T) {
	full := NewFixed(512)
	for i := 0; i < 512; i += 2 {
		_, _ = full.Set(i, true)
	}
	truncated, err := FromText(full.String(), '1', 0, 244)
	require.NoError(t, err)

	ok, err := full.IsSubsetOf(full)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = full.IsProperSubsetOf(full)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = truncated.IsSubsetOf(full)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = truncated.IsProperSubsetOf(full)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = full.IsSubsetOf(truncated)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _ = truncated.Set(1, true)
	ok, err = truncated.IsSubsetOf(full)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = full.IsSubsetOf(nil)
	assert.ErrorIs(t, err, ErrArgument)
}

func TestEqual(t *testing.T) {
	a, err := FromText("1011", '1', 0, 4)
	require.NoError(t, err)
	b, err := FromText("1011", '1', 0, 4, WithCapacity(256), WithAllocator(HeapAllocator{}))
	require.NoError(t, err)

	ok, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, ok)

	c, err := FromText("10110", '1', 0, 5)
	require.NoError(t, err)
	ok, err = a.Equal(c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCopy(t *testing.T) {
	src := NewFixed(100)
	require.NoError(t, src.SetRange(40, 30, true))

	t.Run("needs allocator to grow", func(t *testing.T) {
		dst := NewFixed(10)
		assert.ErrorIs(t, Copy(dst, src, nil), ErrNoAllocator)
		assert.Equal(t, 10, dst.Count())
	})

	t.Run("grows with allocator", func(t *testing.T) {
		dst := NewFixed(10)
		require.NoError(t, Copy(dst, src, HeapAllocator{}))
		equalSets(t, src, dst)
		assert.GreaterOrEqual(t, dst.Capacity(), src.Capacity())

		// The growth allocator is not retained.
		assert.ErrorIs(t, dst.Reserve(dst.Capacity()), ErrNoAllocator)
	})

	t.Run("into larger destination", func(t *testing.T) {
		dst := NewFixed(300)
		dst.SetAll(true)
		require.NoError(t, Copy(dst, src, nil))
		equalSets(t, src, dst)
		assert.Equal(t, 300, dst.Capacity())
		requireTrailingZero(t, dst)
	})

	t.Run("self copy", func(t *testing.T) {
		require.NoError(t, Copy(src, src, nil))
		assert.Equal(t, 30, src.Popcount())
	})
}
