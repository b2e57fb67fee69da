package bitkit

import (
	"context"
	"fmt"
	"math"
)

// Block is one fixed-width storage unit of a BitSet. Bits fill a block from
// the least-significant bit upward; bit 0 of the set is bit 0 of block 0.
type Block = uint64

const (
	// BlockBits is the number of bits per Block.
	BlockBits = 64

	blockBytes = BlockBits / 8
	allOnes    = ^Block(0)
)

// BlockCount returns the number of blocks needed to hold bits bits.
// Callers use it to size storage passed to WithStorage.
func BlockCount(bits int) int {
	if bits <= 0 {
		return 0
	}
	return (bits-1)/BlockBits + 1
}

// BitSet is a dense set of bits packed into an array of blocks.
//
// A BitSet has Count active bits, visible to every query, and a Capacity of
// bits its storage can hold without reallocation. Bits at index >= Count are
// always zero, so whole-block algebra never reads stale bits.
//
// A BitSet is not safe for concurrent use.
type BitSet struct {
	blocks   []Block
	count    int
	capacity int
	alloc    Allocator
	logger   *Logger
	metrics  MetricsCollector
}

// New creates a BitSet.
//
// With WithStorage the set uses the given blocks and capacity; without it
// the set starts with no storage. Count defaults to the capacity. A set
// created with WithAllocator grows on demand; one without is fixed.
func New(opts ...Option) (*BitSet, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newFromOptions(&o)
}

func newFromOptions(o *options) (*BitSet, error) {
	if o.capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrArgument, o.capacity)
	}
	if len(o.storage) < BlockCount(o.capacity) {
		return nil, fmt.Errorf("%w: %d blocks cannot hold %d bits", ErrArgument, len(o.storage), o.capacity)
	}

	count := o.capacity
	if o.countSet {
		count = o.count
	}
	if count < 0 || count > o.capacity {
		return nil, fmt.Errorf("%w: count %d outside capacity %d", ErrArgument, count, o.capacity)
	}

	b := &BitSet{
		blocks:   o.storage[:BlockCount(o.capacity)],
		count:    count,
		capacity: o.capacity,
		alloc:    o.allocator,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
	if b.logger == nil {
		b.logger = NoopLogger()
	}
	if b.metrics == nil {
		b.metrics = NoopMetricsCollector{}
	}

	b.clearFrom(count)
	return b, nil
}

// NewFixed returns a set of capacity bits, all false, that cannot grow.
// It panics if capacity is negative.
func NewFixed(capacity int) *BitSet {
	b, err := New(WithStorage(make([]Block, BlockCount(capacity)), capacity))
	if err != nil {
		panic(err)
	}
	return b
}

// NewDynamic returns an empty set that grows through a.
func NewDynamic(a Allocator, opts ...Option) *BitSet {
	b, err := New(append(opts, WithAllocator(a))...)
	if err != nil {
		// Without storage the only failure is a bad WithCount.
		panic(err)
	}
	return b
}

// Count returns the number of active bits.
func (b *BitSet) Count() int {
	if b == nil {
		return 0
	}
	return b.count
}

// Capacity returns the number of bits the storage holds without reallocation.
func (b *BitSet) Capacity() int {
	if b == nil {
		return 0
	}
	return b.capacity
}

// Empty reports whether the set has no active bits.
func (b *BitSet) Empty() bool {
	return b.Count() == 0
}

// Blocks returns a copy of the blocks covering the active bits.
func (b *BitSet) Blocks() []Block {
	if b == nil {
		return nil
	}
	return append([]Block(nil), b.active()...)
}

// Reserve ensures room for toAdd more bits past Count.
//
// If the storage is too small, the set asks its allocator for
// max(BlockBits, 2*(Count+toAdd)) bits rounded up to whole blocks.
func (b *BitSet) Reserve(toAdd int) error {
	if b == nil {
		return nilSetError("Reserve")
	}
	if toAdd < 0 || toAdd > math.MaxInt-b.count {
		return fmt.Errorf("%w: cannot reserve %d bits past %d", ErrArgument, toAdd, b.count)
	}

	need := b.count + toAdd
	if need <= b.capacity {
		return nil
	}
	if need > math.MaxInt/2 {
		return fmt.Errorf("%w: %d bits overflows growth", ErrArgument, need)
	}
	return b.growTo(max(BlockBits, need*2))
}

// growTo resizes the storage to hold at least bits bits.
func (b *BitSet) growTo(bits int) error {
	if bits <= b.capacity {
		return nil
	}
	if b.alloc == nil {
		return ErrNoAllocator
	}

	n := BlockCount(bits)
	if n > math.MaxInt/BlockBits {
		return fmt.Errorf("%w: %d bits overflows capacity", ErrArgument, bits)
	}
	return b.resize(b.alloc, n)
}

// resize swaps in n blocks from a. On failure the set is unchanged.
func (b *BitSet) resize(a Allocator, n int) error {
	from, to := b.capacity, n*BlockBits

	blocks, err := a.Realloc(b.blocks, n)
	if err == nil && len(blocks) < n {
		err = fmt.Errorf("%w: allocator returned %d of %d blocks", ErrAllocationFailure, len(blocks), n)
	}
	err = allocationError(err)

	b.metrics.RecordGrow(from, to, err)
	b.logger.LogGrow(context.Background(), from, to, err)
	if err != nil {
		return err
	}

	blocks = blocks[:n]
	// Custom allocators are not trusted to zero-extend.
	if old := len(b.blocks); old < n {
		clear(blocks[old:])
	}
	b.blocks = blocks
	b.capacity = to
	return nil
}

// PushBack appends a bit, growing the storage if needed.
func (b *BitSet) PushBack(v bool) error {
	if err := b.Reserve(1); err != nil {
		return err
	}

	i := b.count
	b.count++
	if v {
		b.blocks[blockIndex(i)] |= bitMask(i)
	}
	return nil
}

// PopBack removes the last bit and returns its value.
func (b *BitSet) PopBack() (bool, error) {
	if b == nil {
		return false, nilSetError("PopBack")
	}
	if b.count == 0 {
		return false, ErrEmpty
	}

	b.count--
	i := b.count
	w := &b.blocks[blockIndex(i)]
	v := *w&bitMask(i) != 0
	*w &^= bitMask(i)
	return v, nil
}

// Clear drops every bit. Count becomes zero; the storage is kept.
func (b *BitSet) Clear() {
	if b == nil {
		return
	}
	clear(b.blocks)
	b.count = 0
}

// ClearAndFree drops every bit and returns the storage to the allocator.
// A set without an allocator returns ErrNoAllocator and is unchanged.
func (b *BitSet) ClearAndFree() error {
	if b == nil {
		return nilSetError("ClearAndFree")
	}
	if b.alloc == nil {
		return ErrNoAllocator
	}

	bits := b.capacity
	_, err := b.alloc.Realloc(b.blocks, 0)
	err = allocationError(err)

	b.metrics.RecordFree(bits, err)
	b.logger.LogFree(context.Background(), bits, err)
	if err != nil {
		return err
	}

	b.blocks = nil
	b.count = 0
	b.capacity = 0
	return nil
}

// active returns the blocks that hold active bits.
func (b *BitSet) active() []Block {
	return b.blocks[:BlockCount(b.count)]
}

// clearFrom zeroes every stored bit at index >= i.
func (b *BitSet) clearFrom(i int) {
	bi := blockIndex(i)
	if bi >= len(b.blocks) {
		return
	}
	if off := bitOffset(i); off != 0 {
		b.blocks[bi] &= lowMask(off)
		bi++
	}
	clear(b.blocks[bi:])
}
