package bitkit

import (
	"fmt"
	"slices"

	"github.com/hupe1980/bitkit/internal/simd"
)

// Algebra between sets of different sizes works on the shared block prefix.
// Destination bits past Count are cleared afterwards, so the destination
// never picks up bits it cannot represent.

// Or sets b to b | src. Bits of b beyond src's extent are unchanged.
func (b *BitSet) Or(src *BitSet) error {
	dst, s, err := b.shared("Or", src)
	if err != nil {
		return err
	}
	simd.OrWords(dst, s)
	b.fixTrailing()
	return nil
}

// Xor sets b to b ^ src. Bits of b beyond src's extent are unchanged.
func (b *BitSet) Xor(src *BitSet) error {
	dst, s, err := b.shared("Xor", src)
	if err != nil {
		return err
	}
	simd.XorWords(dst, s)
	b.fixTrailing()
	return nil
}

// AndNot clears the bits of b that are true in src. Bits of b beyond src's
// extent are unchanged.
func (b *BitSet) AndNot(src *BitSet) error {
	dst, s, err := b.shared("AndNot", src)
	if err != nil {
		return err
	}
	simd.AndNotWords(dst, s)
	return nil
}

// And sets b to b & src. src is treated as false past its own Count, so the
// bits of b beyond src's extent are cleared. An empty src clears b.
func (b *BitSet) And(src *BitSet) error {
	dst, s, err := b.shared("And", src)
	if err != nil {
		return err
	}
	if src.count == 0 {
		clear(b.active())
		return nil
	}
	simd.AndWords(dst, s)
	clear(b.active()[len(dst):])
	b.fixTrailing()
	return nil
}

// shared returns the block prefix common to b and src.
func (b *BitSet) shared(op string, src *BitSet) ([]Block, []Block, error) {
	if b == nil || src == nil {
		return nil, nil, nilSetError(op)
	}
	n := min(BlockCount(b.count), BlockCount(src.count))
	return b.blocks[:n], src.blocks[:n], nil
}

// ShiftLeft moves every bit n positions toward higher indexes. Bits shifted
// past Count are lost and the low n bits become false.
func (b *BitSet) ShiftLeft(n int) error {
	if err := b.checkShift("ShiftLeft", n); err != nil {
		return err
	}
	if n == 0 || b.count == 0 {
		return nil
	}

	blocks := b.active()
	if n >= b.count {
		clear(blocks)
		return nil
	}

	nb := len(blocks)
	whole, k := blockIndex(n), bitOffset(n)
	if whole > 0 {
		copy(blocks[whole:], blocks[:nb-whole])
		clear(blocks[:whole])
	}
	if k > 0 {
		for i := nb - 1; i > whole; i-- {
			blocks[i] = blocks[i]<<k | blocks[i-1]>>(BlockBits-k)
		}
		blocks[whole] <<= k
	}
	b.fixTrailing()
	return nil
}

// ShiftRight moves every bit n positions toward lower indexes. Bits shifted
// below index 0 are lost and the high n bits become false.
func (b *BitSet) ShiftRight(n int) error {
	if err := b.checkShift("ShiftRight", n); err != nil {
		return err
	}
	if n == 0 || b.count == 0 {
		return nil
	}

	blocks := b.active()
	if n >= b.count {
		clear(blocks)
		return nil
	}

	nb := len(blocks)
	whole, k := blockIndex(n), bitOffset(n)
	if whole > 0 {
		copy(blocks[:nb-whole], blocks[whole:])
		clear(blocks[nb-whole:])
	}
	if k > 0 {
		last := nb - whole - 1
		for i := 0; i < last; i++ {
			blocks[i] = blocks[i]>>k | blocks[i+1]<<(BlockBits-k)
		}
		blocks[last] >>= k
	}
	b.fixTrailing()
	return nil
}

func (b *BitSet) checkShift(op string, n int) error {
	if b == nil {
		return nilSetError(op)
	}
	if n < 0 {
		return fmt.Errorf("%w: %s: negative shift %d", ErrArgument, op, n)
	}
	return nil
}

// IsSubsetOf reports whether every true bit of b is true in set.
// set must be at least as large as b.
func (b *BitSet) IsSubsetOf(set *BitSet) (bool, error) {
	if b == nil || set == nil {
		return false, nilSetError("IsSubsetOf")
	}
	if set.count < b.count {
		return false, nil
	}
	// Bits of b past its Count are zero, so whole blocks compare safely.
	sub := b.active()
	for i, w := range sub {
		if set.blocks[i]&w != w {
			return false, nil
		}
	}
	return true, nil
}

// IsProperSubsetOf reports whether b is a subset of set and strictly smaller.
func (b *BitSet) IsProperSubsetOf(set *BitSet) (bool, error) {
	if b == nil || set == nil {
		return false, nilSetError("IsProperSubsetOf")
	}
	if b.count >= set.count {
		return false, nil
	}
	return b.IsSubsetOf(set)
}

// Equal reports whether b and other have the same Count and bits.
// Capacity is ignored.
func (b *BitSet) Equal(other *BitSet) (bool, error) {
	if b == nil || other == nil {
		return false, nilSetError("Equal")
	}
	if b.count != other.count {
		return false, nil
	}
	return slices.Equal(b.active(), other.active()), nil
}

// Copy makes dst hold the same bits and Count as src.
//
// If dst's capacity is smaller than src's, alloc grows dst in place; dst
// keeps its own allocator for later growth. Without alloc the copy fails
// with ErrNoAllocator and dst is unchanged.
func Copy(dst, src *BitSet, alloc Allocator) error {
	if dst == nil || src == nil {
		return nilSetError("Copy")
	}
	if dst == src {
		return nil
	}

	if dst.capacity < src.capacity {
		if alloc == nil {
			return ErrNoAllocator
		}
		if err := dst.resize(alloc, BlockCount(src.capacity)); err != nil {
			return err
		}
	}

	n := copy(dst.blocks, src.blocks)
	clear(dst.blocks[n:])
	dst.count = src.count
	dst.fixTrailing()
	return nil
}
