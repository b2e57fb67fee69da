package bitkit

import "github.com/hupe1980/bitkit/internal/simd"

// Popcount returns the number of true bits.
func (b *BitSet) Popcount() int {
	if b == nil {
		return 0
	}
	return simd.PopcountWords(b.active())
}

// PopcountRange returns the number of true bits in [start, start+n).
func (b *BitSet) PopcountRange(start, n int) (int, error) {
	if err := b.checkRange("PopcountRange", start, n); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	end := start + n - 1
	first, last := blockIndex(start), blockIndex(end)
	if first == last {
		return simd.Popcount(b.blocks[first] & rangeMask(bitOffset(start), bitOffset(end))), nil
	}

	c := simd.Popcount(b.blocks[first] & rangeMask(bitOffset(start), BlockBits-1))
	c += simd.PopcountWords(b.blocks[first+1 : last])
	c += simd.Popcount(b.blocks[last] & rangeMask(0, bitOffset(end)))
	return c, nil
}

// Any reports whether at least one bit is true.
func (b *BitSet) Any() bool {
	if b == nil {
		return false
	}
	return b.anyOrNone(0, b.count, true)
}

// None reports whether every bit is false.
func (b *BitSet) None() bool {
	if b == nil {
		return true
	}
	return b.anyOrNone(0, b.count, false)
}

// All reports whether every bit is true. An empty set is vacuously all true.
func (b *BitSet) All() bool {
	if b == nil {
		return true
	}
	return b.all(0, b.count)
}

// AnyRange reports whether at least one bit in [start, start+n) is true.
func (b *BitSet) AnyRange(start, n int) (bool, error) {
	if err := b.checkRange("AnyRange", start, n); err != nil {
		return false, err
	}
	return b.anyOrNone(start, n, true), nil
}

// NoneRange reports whether every bit in [start, start+n) is false.
func (b *BitSet) NoneRange(start, n int) (bool, error) {
	if err := b.checkRange("NoneRange", start, n); err != nil {
		return false, err
	}
	return b.anyOrNone(start, n, false), nil
}

// AllRange reports whether every bit in [start, start+n) is true.
func (b *BitSet) AllRange(start, n int) (bool, error) {
	if err := b.checkRange("AllRange", start, n); err != nil {
		return false, err
	}
	return b.all(start, n), nil
}

// anyOrNone returns onSet as soon as a true bit is found in
// [start, start+n), and !onSet if there is none.
func (b *BitSet) anyOrNone(start, n int, onSet bool) bool {
	found := false
	b.eachSpan(start, n, func(bi int, m Block) bool {
		found = b.blocks[bi]&m != 0
		return !found
	})
	if found {
		return onSet
	}
	return !onSet
}

// all compares each block against its in-range mask; it can only stop
// early on a false bit.
func (b *BitSet) all(start, n int) bool {
	ok := true
	b.eachSpan(start, n, func(bi int, m Block) bool {
		ok = b.blocks[bi]&m == m
		return ok
	})
	return ok
}

// eachSpan calls fn with every block overlapping [start, start+n) and the
// mask of its in-range bits, until fn returns false.
func (b *BitSet) eachSpan(start, n int, fn func(bi int, m Block) bool) {
	if n <= 0 {
		return
	}
	end := start + n
	for bi := blockIndex(start); bi <= blockIndex(end-1); bi++ {
		if !fn(bi, spanMask(bi, start, end)) {
			return
		}
	}
}
