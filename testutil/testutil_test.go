package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Uint64()
	rng.Reset()
	assert.Equal(t, a, rng.Uint64())
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestRNG_Bits(t *testing.T) {
	rng := NewRNG(4711)

	assert.Len(t, rng.Bits(100, 0.5), 100)
	assert.Equal(t, 0, Model(rng.Bits(100, 0)).Popcount(0, 100))
	assert.Equal(t, 100, Model(rng.Bits(100, 1)).Popcount(0, 100))
}

func TestRNG_RunBits(t *testing.T) {
	rng := NewRNG(4711)
	bits := rng.RunBits(1000, 1)

	// Runs of length one alternate.
	for i := 1; i < len(bits); i++ {
		assert.NotEqual(t, bits[i-1], bits[i], "index %d", i)
	}
}

func TestModel_Runs(t *testing.T) {
	m := ParseModel("0011101111")

	assert.Equal(t, 2, m.TrailingRun(0, 10, 3, true))
	assert.Equal(t, 6, m.TrailingRun(0, 10, 4, true))
	assert.Equal(t, -1, m.TrailingRun(0, 10, 5, true))
	assert.Equal(t, 9, m.LeadingRun(0, 10, 3, true))
	assert.Equal(t, 4, m.LeadingRun(0, 6, 3, true))
	assert.Equal(t, 1, m.LeadingRun(0, 10, 2, false))
}

func TestModel_Shift(t *testing.T) {
	m := ParseModel("1100")
	m.ShiftLeft(1)
	assert.Equal(t, "0110", m.String())
	m.ShiftRight(2)
	assert.Equal(t, "1000", m.String())
}
