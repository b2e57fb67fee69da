// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Block arrays are allocated on 64-byte (cache line) boundaries so that a
// bit set's blocks never straddle more cache lines than necessary.
package mem
