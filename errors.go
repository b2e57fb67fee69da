package bitkit

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is returned when a caller passes a nil operand, an
	// out-of-bounds index, or a negative or overflowing range. The set is
	// left unchanged.
	ErrArgument = errors.New("invalid argument")

	// ErrNoAllocator is returned when a resize or free is attempted on a
	// set that was configured without an allocator.
	ErrNoAllocator = errors.New("no allocator configured")

	// ErrAllocationFailure is returned when the allocator could not provide
	// storage. The set keeps its previous storage.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrEmpty is returned when removing a bit from an empty set.
	ErrEmpty = fmt.Errorf("%w: bit set is empty", ErrArgument)
)

// IndexError reports an index outside [0, Size).
//
// It unwraps to ErrArgument.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrArgument }

// RangeError reports a bit range [Start, Start+Count) that does not fit a set of Size bits.
//
// It unwraps to ErrArgument.
type RangeError struct {
	Op    string
	Start int
	Count int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: range start %d count %d invalid for size %d", e.Op, e.Start, e.Count, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrArgument }

func nilSetError(op string) error {
	return fmt.Errorf("%w: %s: nil bit set", ErrArgument, op)
}

// allocationError normalizes an allocator error so it always matches ErrAllocationFailure.
func allocationError(err error) error {
	if err == nil || errors.Is(err, ErrAllocationFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrAllocationFailure, err)
}
