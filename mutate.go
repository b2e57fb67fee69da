package bitkit

// checkIndex validates i against the active bits.
func (b *BitSet) checkIndex(op string, i int) error {
	if b == nil {
		return nilSetError(op)
	}
	if i < 0 || i >= b.count {
		return &IndexError{Op: op, Index: i, Size: b.count}
	}
	return nil
}

// checkRange validates [start, start+n): start must index an active bit and
// the range must end at or before Count.
func (b *BitSet) checkRange(op string, start, n int) error {
	if b == nil {
		return nilSetError(op)
	}
	if start < 0 || start >= b.count || n < 0 || n > b.count-start {
		return &RangeError{Op: op, Start: start, Count: n, Size: b.count}
	}
	return nil
}

// Test reports the value of bit i.
func (b *BitSet) Test(i int) (bool, error) {
	if err := b.checkIndex("Test", i); err != nil {
		return false, err
	}
	return b.blocks[blockIndex(i)]&bitMask(i) != 0, nil
}

// Get reports the value of bit i without validating it against Count.
// Indexes outside the storage read as false.
func (b *BitSet) Get(i int) bool {
	if b == nil || i < 0 {
		return false
	}
	bi := blockIndex(i)
	if bi >= len(b.blocks) {
		return false
	}
	return b.blocks[bi]&bitMask(i) != 0
}

// Set assigns v to bit i and returns the previous value.
func (b *BitSet) Set(i int, v bool) (bool, error) {
	if err := b.checkIndex("Set", i); err != nil {
		return false, err
	}
	w, m := &b.blocks[blockIndex(i)], bitMask(i)
	prev := *w&m != 0
	if v {
		*w |= m
	} else {
		*w &^= m
	}
	return prev, nil
}

// Reset clears bit i and returns the previous value.
func (b *BitSet) Reset(i int) (bool, error) {
	if err := b.checkIndex("Reset", i); err != nil {
		return false, err
	}
	w, m := &b.blocks[blockIndex(i)], bitMask(i)
	prev := *w&m != 0
	*w &^= m
	return prev, nil
}

// Flip inverts bit i and returns the previous value.
func (b *BitSet) Flip(i int) (bool, error) {
	if err := b.checkIndex("Flip", i); err != nil {
		return false, err
	}
	w, m := &b.blocks[blockIndex(i)], bitMask(i)
	prev := *w&m != 0
	*w ^= m
	return prev, nil
}

type rangeOp uint8

const (
	opSet rangeOp = iota
	opReset
	opFlip
)

// SetRange assigns v to every bit in [start, start+n).
func (b *BitSet) SetRange(start, n int, v bool) error {
	if err := b.checkRange("SetRange", start, n); err != nil {
		return err
	}
	if v {
		b.mutateRange(opSet, start, n)
	} else {
		b.mutateRange(opReset, start, n)
	}
	return nil
}

// ResetRange clears every bit in [start, start+n).
func (b *BitSet) ResetRange(start, n int) error {
	if err := b.checkRange("ResetRange", start, n); err != nil {
		return err
	}
	b.mutateRange(opReset, start, n)
	return nil
}

// FlipRange inverts every bit in [start, start+n).
func (b *BitSet) FlipRange(start, n int) error {
	if err := b.checkRange("FlipRange", start, n); err != nil {
		return err
	}
	b.mutateRange(opFlip, start, n)
	return nil
}

// SetAll assigns v to every active bit.
func (b *BitSet) SetAll(v bool) {
	if b == nil {
		return
	}
	if v {
		b.mutateRange(opSet, 0, b.count)
	} else {
		b.mutateRange(opReset, 0, b.count)
	}
}

// ResetAll clears every active bit.
func (b *BitSet) ResetAll() {
	b.SetAll(false)
}

// FlipAll inverts every active bit.
func (b *BitSet) FlipAll() {
	if b == nil {
		return
	}
	b.mutateRange(opFlip, 0, b.count)
}

// mutateRange applies op to the masked first block, the fully covered
// middle blocks in bulk, then the masked last block.
func (b *BitSet) mutateRange(op rangeOp, start, n int) {
	if n == 0 {
		return
	}
	end := start + n - 1
	first, last := blockIndex(start), blockIndex(end)

	if first == last {
		b.applyMask(op, first, rangeMask(bitOffset(start), bitOffset(end)))
		b.fixTrailing()
		return
	}

	b.applyMask(op, first, rangeMask(bitOffset(start), BlockBits-1))

	mid := b.blocks[first+1 : last]
	switch op {
	case opSet:
		for i := range mid {
			mid[i] = allOnes
		}
	case opReset:
		clear(mid)
	case opFlip:
		for i := range mid {
			mid[i] = ^mid[i]
		}
	}

	b.applyMask(op, last, rangeMask(0, bitOffset(end)))
	b.fixTrailing()
}

func (b *BitSet) applyMask(op rangeOp, bi int, m Block) {
	switch op {
	case opSet:
		b.blocks[bi] |= m
	case opReset:
		b.blocks[bi] &^= m
	case opFlip:
		b.blocks[bi] ^= m
	}
}
