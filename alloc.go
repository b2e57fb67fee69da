package bitkit

import (
	"fmt"
	"sync"

	"github.com/hupe1980/bitkit/internal/mem"
	"github.com/hupe1980/bitkit/resource"
)

// Allocator provides block storage to growable sets.
//
// Realloc returns storage of exactly n blocks whose prefix holds the
// contents of old, truncated or zero-extended as needed. n == 0 frees old
// and returns nil. Returning an error, or a nil slice for n > 0, is an
// allocation failure; the set then keeps old.
//
// Calls are synchronous and never reentrant for a given set.
type Allocator interface {
	Realloc(old []Block, n int) ([]Block, error)
}

// AllocatorFunc adapts a function to the Allocator interface.
// Any context the function needs travels in its closure.
type AllocatorFunc func(old []Block, n int) ([]Block, error)

// Realloc implements Allocator.
func (f AllocatorFunc) Realloc(old []Block, n int) ([]Block, error) {
	return f(old, n)
}

// HeapAllocator allocates cache-line aligned blocks from the Go heap.
type HeapAllocator struct{}

// Realloc implements Allocator.
func (HeapAllocator) Realloc(old []Block, n int) ([]Block, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative block count %d", ErrArgument, n)
	case n == 0:
		return nil, nil
	case n <= len(old):
		return old[:n], nil
	}

	blocks := mem.AllocAlignedUint64(n)
	copy(blocks, old)
	return blocks, nil
}

// BudgetAllocator charges block storage against a resource.Controller
// memory budget before delegating to Next.
//
// Growth beyond the budget fails with ErrAllocationFailure wrapping
// resource.ErrMemoryLimitExceeded. Shrinking and freeing return bytes to
// the budget, but never more than this allocator charged: storage a set
// started with (WithStorage) was not charged and is not released.
type BudgetAllocator struct {
	// Controller holds the budget. A nil Controller is unlimited.
	Controller *resource.Controller

	// Next provides the storage. Nil means HeapAllocator.
	Next Allocator

	mu      sync.Mutex
	charged int64
}

// Charged returns the bytes currently held against the Controller.
func (a *BudgetAllocator) Charged() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.charged
}

// Realloc implements Allocator.
func (a *BudgetAllocator) Realloc(old []Block, n int) ([]Block, error) {
	next := a.Next
	if next == nil {
		next = HeapAllocator{}
	}

	oldBytes := int64(len(old)) * blockBytes
	newBytes := int64(n) * blockBytes

	if grow := newBytes - oldBytes; grow > 0 {
		if err := a.charge(grow); err != nil {
			return nil, allocationError(err)
		}
	}

	blocks, err := next.Realloc(old, n)
	if err == nil && blocks == nil && n > 0 {
		err = ErrAllocationFailure
	}
	if err != nil {
		if grow := newBytes - oldBytes; grow > 0 {
			a.release(grow)
		}
		return nil, allocationError(err)
	}

	if shrink := oldBytes - newBytes; shrink > 0 {
		a.release(shrink)
	}
	return blocks, nil
}

func (a *BudgetAllocator) charge(bytes int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.Controller.AcquireMemory(bytes); err != nil {
		return err
	}
	a.charged += bytes
	return nil
}

// release returns up to bytes to the Controller, capped at what is charged.
func (a *BudgetAllocator) release(bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	bytes = min(bytes, a.charged)
	a.charged -= bytes
	a.Controller.ReleaseMemory(bytes)
}
