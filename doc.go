// Package bitkit provides a packed bit set for Go.
//
// A BitSet stores booleans densely in an array of 64-bit blocks and supports
// point queries, bulk range mutation, run scanning, and set algebra. Storage
// is either caller-owned with a fixed capacity, or grown on demand through an
// Allocator.
//
// # Quick Start
//
// Fixed capacity:
//
//	set := bitkit.NewFixed(512)
//	set.Set(3, true)
//	set.SetRange(64, 128, true)
//	n := set.Popcount() // 129
//
// Caller-owned storage:
//
//	storage := make([]bitkit.Block, bitkit.BlockCount(81))
//	set, _ := bitkit.New(bitkit.WithStorage(storage, 81))
//
// Growable:
//
//	set := bitkit.NewDynamic(bitkit.HeapAllocator{})
//	_ = set.PushBack(true)
//
// Growth under a memory budget:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	set := bitkit.NewDynamic(&bitkit.BudgetAllocator{Controller: rc})
//
// # Scanning
//
// Trailing scans search upward from the low end; leading scans search
// downward from the high end:
//
//	i, ok := set.FirstTrailingZero()      // lowest false bit
//	j, ok := set.FirstTrailingOnes(16)    // lowest run of 16 true bits
//	k, ok, err := set.FirstLeadingOneRange(100, 50)
//
// Whole-set scans report a miss with ok == false. Range scans also return an
// error for an invalid range, so a miss is never mistaken for bad input.
//
// # Compressed Bitmaps
//
// ToRoaring, FromRoaring and OrRoaring convert to and from
// github.com/RoaringBitmap/roaring/v2 bitmaps for sparse exchange.
//
// # Errors
//
// Mutations validate their input before touching the set and leave it
// unchanged on failure. Errors match ErrArgument, ErrNoAllocator or
// ErrAllocationFailure with errors.Is; ResultOf and TriboolOf fold them
// into flat status codes.
//
// # Invariant
//
// Bits at index >= Count are always zero. Every mutation restores this,
// which lets algebra, equality and popcount work on whole blocks even when
// the operands differ in size.
//
// # Concurrency
//
// A BitSet is not safe for concurrent use. Sets never share storage, so
// distinct sets may be used from distinct goroutines.
package bitkit
