package bitkit

import (
	"fmt"
	"strings"
)

// FromText builds a set from n bytes of text starting at start. Byte on
// produces a true bit; any other byte a false bit. Index 0 of the set is
// text[start].
//
// The capacity defaults to n and can be raised with WithCapacity. Without
// WithStorage or WithAllocator the set gets fixed heap storage of that
// capacity; otherwise capacity beyond the storage requires WithAllocator.
func FromText(text string, on byte, start, n int, opts ...Option) (*BitSet, error) {
	if start < 0 || n < 0 || start > len(text) || n > len(text)-start {
		return nil, fmt.Errorf("%w: text range start %d count %d invalid for length %d", ErrArgument, start, n, len(text))
	}

	b, err := newSized(n, opts)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if text[start+i] == on {
			b.blocks[blockIndex(i)] |= bitMask(i)
		}
	}
	return b, nil
}

// String renders the active bits as '1' and '0', index 0 first.
func (b *BitSet) String() string {
	if b == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.Grow(b.count)
	for i := 0; i < b.count; i++ {
		if b.blocks[blockIndex(i)]&bitMask(i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// newSized returns an all-false set with Count size. Its capacity is the
// WithCapacity option, defaulting to size.
func newSized(size int, opts []Option) (*BitSet, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	capacity := size
	if o.textCapacitySet {
		capacity = o.textCapacity
	}
	if capacity < size {
		return nil, fmt.Errorf("%w: capacity %d below size %d", ErrArgument, capacity, size)
	}

	if o.storage == nil && o.allocator == nil {
		o.storage, o.capacity = make([]Block, BlockCount(capacity)), capacity
	}
	o.count, o.countSet = 0, true
	b, err := newFromOptions(&o)
	if err != nil {
		return nil, err
	}
	if err := b.growTo(capacity); err != nil {
		return nil, err
	}
	b.count = size
	return b, nil
}
