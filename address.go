package bitkit

// blockIndex returns the block holding bit i.
func blockIndex(i int) int {
	return i / BlockBits
}

// bitOffset returns the position of bit i within its block.
func bitOffset(i int) uint {
	return uint(i) % BlockBits
}

// bitMask returns a block with only bit i's position set.
func bitMask(i int) Block {
	return Block(1) << bitOffset(i)
}

// lowMask returns a block with the low n bits set, 0 <= n <= BlockBits.
func lowMask(n uint) Block {
	if n >= BlockBits {
		return allOnes
	}
	return Block(1)<<n - 1
}

// rangeMask returns a block with bits lo through hi set, lo <= hi < BlockBits.
func rangeMask(lo, hi uint) Block {
	return (allOnes >> (BlockBits - 1 - hi)) & (allOnes << lo)
}

// trailingMask returns the mask of valid bits in the last block of a set of
// count bits. A count that fills its last block, including zero, yields all ones.
func trailingMask(count int) Block {
	return lowMask(uint(count-1)%BlockBits + 1)
}

// fixTrailing zeroes the bits past count in the last active block.
func (b *BitSet) fixTrailing() {
	if b.count == 0 {
		return
	}
	b.blocks[blockIndex(b.count-1)] &= trailingMask(b.count)
}

// spanMask returns the bits of block bi that fall inside [start, end).
func spanMask(bi, start, end int) Block {
	base := bi * BlockBits
	lo, hi := 0, BlockBits-1
	if start > base {
		lo = start - base
	}
	if end-1 < base+BlockBits-1 {
		hi = end - 1 - base
	}
	return rangeMask(uint(lo), uint(hi))
}
