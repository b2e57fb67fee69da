package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bits returns n random booleans, each true with probability density.
// Locks only once per call.
func (r *RNG) Bits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// RunBits returns n booleans made of alternating runs whose lengths are
// drawn from [1, maxRun]. Long runs exercise block-crossing scans better
// than uniform noise does.
func (r *RNG) RunBits(n, maxRun int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	v := r.rand.Intn(2) == 1
	for i := 0; i < n; {
		l := 1 + r.rand.Intn(maxRun)
		for j := 0; j < l && i < n; j++ {
			out[i] = v
			i++
		}
		v = !v
	}
	return out
}

// Model is a reference bit set backed by one bool per bit.
// It favors obviously correct loops over speed.
type Model []bool

// ParseModel returns a model with bit i true iff s[i] == '1'.
func ParseModel(s string) Model {
	m := make(Model, len(s))
	for i := range s {
		m[i] = s[i] == '1'
	}
	return m
}

// String renders the model as '1' and '0', index 0 first.
func (m Model) String() string {
	var sb strings.Builder
	sb.Grow(len(m))
	for _, v := range m {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Clone returns a copy of the model.
func (m Model) Clone() Model {
	return append(Model(nil), m...)
}

// SetRange assigns v to [start, start+n).
func (m Model) SetRange(start, n int, v bool) {
	for i := start; i < start+n; i++ {
		m[i] = v
	}
}

// FlipRange inverts [start, start+n).
func (m Model) FlipRange(start, n int) {
	for i := start; i < start+n; i++ {
		m[i] = !m[i]
	}
}

// Popcount counts true bits in [start, start+n).
func (m Model) Popcount(start, n int) int {
	c := 0
	for i := start; i < start+n; i++ {
		if m[i] {
			c++
		}
	}
	return c
}

// TrailingRun returns the lowest start of k consecutive bits equal to v in
// [start, start+n), or -1.
func (m Model) TrailingRun(start, n, k int, v bool) int {
	run := 0
	for i := start; i < start+n; i++ {
		if m[i] != v {
			run = 0
			continue
		}
		run++
		if run == k {
			return i - k + 1
		}
	}
	return -1
}

// LeadingRun returns the highest top index of k consecutive bits equal to v
// in [start, start+n), or -1.
func (m Model) LeadingRun(start, n, k int, v bool) int {
	run := 0
	for i := start + n - 1; i >= start; i-- {
		if m[i] != v {
			run = 0
			continue
		}
		run++
		if run == k {
			return i + k - 1
		}
	}
	return -1
}

// ShiftLeft moves bits toward higher indexes, filling with false.
func (m Model) ShiftLeft(n int) {
	for i := len(m) - 1; i >= 0; i-- {
		m[i] = i-n >= 0 && m[i-n]
	}
}

// ShiftRight moves bits toward lower indexes, filling with false.
func (m Model) ShiftRight(n int) {
	for i := range m {
		m[i] = i+n < len(m) && m[i+n]
	}
}
