package bitkit

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// maxRoaringBits is the largest Count that fits roaring's uint32 universe.
const maxRoaringBits = math.MaxUint32 + 1

// ToRoaring returns a compressed bitmap holding the indexes of b's true bits.
func (b *BitSet) ToRoaring() (*roaring.Bitmap, error) {
	if b == nil {
		return nil, nilSetError("ToRoaring")
	}
	if uint64(b.count) > maxRoaringBits {
		return nil, fmt.Errorf("%w: %d bits exceed the roaring universe", ErrArgument, b.count)
	}

	rb := roaring.New()
	for bi, w := range b.active() {
		if w == allOnes {
			start := uint64(bi) * BlockBits
			rb.AddRange(start, start+BlockBits)
			continue
		}
		for w != 0 {
			rb.Add(uint32(bi*BlockBits) + uint32(bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return rb, nil
}

// FromRoaring builds a set of size bits whose true bits are the members of
// rb. A size of zero means one past rb's maximum. Options are those of FromText.
func FromRoaring(rb *roaring.Bitmap, size int, opts ...Option) (*BitSet, error) {
	if rb == nil {
		return nil, fmt.Errorf("%w: nil roaring bitmap", ErrArgument)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrArgument, size)
	}
	if !rb.IsEmpty() {
		limit := int(rb.Maximum()) + 1
		if size == 0 {
			size = limit
		}
		if limit > size {
			return nil, fmt.Errorf("%w: member %d outside size %d", ErrArgument, limit-1, size)
		}
	}

	b, err := newSized(size, opts)
	if err != nil {
		return nil, err
	}
	b.orRoaring(rb)
	return b, nil
}

// OrRoaring sets every bit whose index is a member of rb. Every member must
// be below Count; otherwise b is unchanged.
func (b *BitSet) OrRoaring(rb *roaring.Bitmap) error {
	if b == nil || rb == nil {
		return nilSetError("OrRoaring")
	}
	if !rb.IsEmpty() && int(rb.Maximum()) >= b.count {
		return &IndexError{Op: "OrRoaring", Index: int(rb.Maximum()), Size: b.count}
	}
	b.orRoaring(rb)
	return nil
}

func (b *BitSet) orRoaring(rb *roaring.Bitmap) {
	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		b.blocks[blockIndex(i)] |= bitMask(i)
	}
}
