package bitkit

import (
	"fmt"
	"iter"
	"math/bits"
)

// Scans come in two directions. Trailing scans walk from the low end of a
// range upward and report the lowest index of a match. Leading scans walk
// from the high end downward and report the highest index of a match; for a
// run that is the run's top bit.
//
// Whole-set scans return ok == false when nothing matches, including on an
// empty set. Range scans additionally return an error when the range is
// invalid, so a failed search and a bad range are never confused.

// FirstTrailingOne returns the lowest index holding a true bit.
func (b *BitSet) FirstTrailingOne() (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.trailingBit(start, end, true) })
}

// FirstTrailingZero returns the lowest index holding a false bit.
func (b *BitSet) FirstTrailingZero() (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.trailingBit(start, end, false) })
}

// FirstLeadingOne returns the highest index holding a true bit.
func (b *BitSet) FirstLeadingOne() (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.leadingBit(start, end, true) })
}

// FirstLeadingZero returns the highest index holding a false bit.
func (b *BitSet) FirstLeadingZero() (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.leadingBit(start, end, false) })
}

// FirstTrailingOnes returns the start of the lowest run of k true bits.
func (b *BitSet) FirstTrailingOnes(k int) (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.trailingRun(start, end, k, true) })
}

// FirstTrailingZeros returns the start of the lowest run of k false bits.
func (b *BitSet) FirstTrailingZeros(k int) (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.trailingRun(start, end, k, false) })
}

// FirstLeadingOnes returns the top index of the highest run of k true bits.
func (b *BitSet) FirstLeadingOnes(k int) (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.leadingRun(start, end, k, true) })
}

// FirstLeadingZeros returns the top index of the highest run of k false bits.
func (b *BitSet) FirstLeadingZeros(k int) (int, bool) {
	return b.scanAll(func(start, end int) (int, bool) { return b.leadingRun(start, end, k, false) })
}

// FirstTrailingOneRange is FirstTrailingOne restricted to [start, start+n).
func (b *BitSet) FirstTrailingOneRange(start, n int) (int, bool, error) {
	return b.scanRange("FirstTrailingOneRange", start, n, 1, func(s, e int) (int, bool) { return b.trailingBit(s, e, true) })
}

// FirstTrailingZeroRange is FirstTrailingZero restricted to [start, start+n).
func (b *BitSet) FirstTrailingZeroRange(start, n int) (int, bool, error) {
	return b.scanRange("FirstTrailingZeroRange", start, n, 1, func(s, e int) (int, bool) { return b.trailingBit(s, e, false) })
}

// FirstLeadingOneRange is FirstLeadingOne restricted to [start, start+n).
func (b *BitSet) FirstLeadingOneRange(start, n int) (int, bool, error) {
	return b.scanRange("FirstLeadingOneRange", start, n, 1, func(s, e int) (int, bool) { return b.leadingBit(s, e, true) })
}

// FirstLeadingZeroRange is FirstLeadingZero restricted to [start, start+n).
func (b *BitSet) FirstLeadingZeroRange(start, n int) (int, bool, error) {
	return b.scanRange("FirstLeadingZeroRange", start, n, 1, func(s, e int) (int, bool) { return b.leadingBit(s, e, false) })
}

// FirstTrailingOnesRange is FirstTrailingOnes restricted to [start, start+n).
func (b *BitSet) FirstTrailingOnesRange(start, n, k int) (int, bool, error) {
	return b.scanRange("FirstTrailingOnesRange", start, n, k, func(s, e int) (int, bool) { return b.trailingRun(s, e, k, true) })
}

// FirstTrailingZerosRange is FirstTrailingZeros restricted to [start, start+n).
func (b *BitSet) FirstTrailingZerosRange(start, n, k int) (int, bool, error) {
	return b.scanRange("FirstTrailingZerosRange", start, n, k, func(s, e int) (int, bool) { return b.trailingRun(s, e, k, false) })
}

// FirstLeadingOnesRange is FirstLeadingOnes restricted to [start, start+n).
func (b *BitSet) FirstLeadingOnesRange(start, n, k int) (int, bool, error) {
	return b.scanRange("FirstLeadingOnesRange", start, n, k, func(s, e int) (int, bool) { return b.leadingRun(s, e, k, true) })
}

// FirstLeadingZerosRange is FirstLeadingZeros restricted to [start, start+n).
func (b *BitSet) FirstLeadingZerosRange(start, n, k int) (int, bool, error) {
	return b.scanRange("FirstLeadingZerosRange", start, n, k, func(s, e int) (int, bool) { return b.leadingRun(s, e, k, false) })
}

// Ones returns an iterator over the indexes of true bits in ascending order.
func (b *BitSet) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		if b == nil {
			return
		}
		for bi, w := range b.active() {
			for w != 0 {
				if !yield(bi*BlockBits + bits.TrailingZeros64(w)) {
					return
				}
				w &= w - 1
			}
		}
	}
}

func (b *BitSet) scanAll(scan func(start, end int) (int, bool)) (int, bool) {
	if b == nil {
		return -1, false
	}
	return scan(0, b.count)
}

func (b *BitSet) scanRange(op string, start, n, k int, scan func(start, end int) (int, bool)) (int, bool, error) {
	if err := b.checkRange(op, start, n); err != nil {
		return -1, false, err
	}
	if k <= 0 {
		return -1, false, fmt.Errorf("%w: %s: run length %d", ErrArgument, op, k)
	}
	i, ok := scan(start, start+n)
	return i, ok, nil
}

// scanBlock returns block bi restricted to [start, end), inverted first
// when searching for false bits. Bits outside the range read as 0.
func (b *BitSet) scanBlock(bi, start, end int, v bool) Block {
	w := b.blocks[bi]
	if !v {
		w = ^w
	}
	return w & spanMask(bi, start, end)
}

func (b *BitSet) trailingBit(start, end int, v bool) (int, bool) {
	if start >= end {
		return -1, false
	}
	for bi := blockIndex(start); bi <= blockIndex(end-1); bi++ {
		if w := b.scanBlock(bi, start, end, v); w != 0 {
			return bi*BlockBits + bits.TrailingZeros64(w), true
		}
	}
	return -1, false
}

func (b *BitSet) leadingBit(start, end int, v bool) (int, bool) {
	if start >= end {
		return -1, false
	}
	for bi := blockIndex(end - 1); bi >= blockIndex(start); bi-- {
		if w := b.scanBlock(bi, start, end, v); w != 0 {
			return bi*BlockBits + BlockBits - 1 - bits.LeadingZeros64(w), true
		}
	}
	return -1, false
}

// trailingRun finds the lowest run of k bits equal to v in [start, end).
//
// Each block is visited once. A candidate survives a block boundary only
// when its run touches the block's top edge; found counts the bits it has
// so far.
func (b *BitSet) trailingRun(start, end, k int, v bool) (int, bool) {
	if k <= 0 || end-start < k {
		return -1, false
	}
	if k == 1 {
		return b.trailingBit(start, end, v)
	}

	candidate, found := -1, 0
	for bi := blockIndex(start); bi <= blockIndex(end-1); bi++ {
		base := bi * BlockBits
		w := b.scanBlock(bi, start, end, v)

		if found > 0 {
			// The carried run continues from bit 0 of this block.
			t := bits.TrailingZeros64(^w)
			if found+t >= k {
				return candidate, true
			}
			if t == BlockBits {
				found += t
			} else {
				found = 0
			}
		}

		if found == 0 {
			if k <= BlockBits {
				if s := runStarts(w, k); s != 0 {
					return base + bits.TrailingZeros64(s), true
				}
			}
			if l := bits.LeadingZeros64(^w); l > 0 {
				candidate, found = base+BlockBits-l, l
			}
		}

		if found+(end-base-BlockBits) < k {
			return -1, false
		}
	}
	return -1, false
}

// leadingRun finds the highest run of k bits equal to v in [start, end) and
// returns the run's top index. It mirrors trailingRun: the carried candidate
// must touch each block's bottom edge.
func (b *BitSet) leadingRun(start, end, k int, v bool) (int, bool) {
	if k <= 0 || end-start < k {
		return -1, false
	}
	if k == 1 {
		return b.leadingBit(start, end, v)
	}

	candidate, found := -1, 0
	for bi := blockIndex(end - 1); bi >= blockIndex(start); bi-- {
		base := bi * BlockBits
		w := b.scanBlock(bi, start, end, v)

		if found > 0 {
			// The carried run continues from bit 63 of this block.
			t := bits.LeadingZeros64(^w)
			if found+t >= k {
				return candidate, true
			}
			if t == BlockBits {
				found += t
			} else {
				found = 0
			}
		}

		if found == 0 {
			if k <= BlockBits {
				if s := runStarts(w, k); s != 0 {
					top := BlockBits - 1 - bits.LeadingZeros64(s)
					return base + top + k - 1, true
				}
			}
			if l := bits.TrailingZeros64(^w); l > 0 {
				candidate, found = base+l-1, l
			}
		}

		if found+(base-start) < k {
			return -1, false
		}
	}
	return -1, false
}

// runStarts returns a block whose bit p is set iff bits p through p+k-1 of
// w are all set, 1 <= k <= BlockBits.
func runStarts(w Block, k int) Block {
	// w marks starts of runs of length have; doubling keeps it O(log k).
	for have := 1; have < k && w != 0; {
		s := min(have, k-have)
		w &= w >> uint(s)
		have += s
	}
	return w
}
