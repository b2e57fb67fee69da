// Package simd provides word-parallel kernels over packed bit blocks.
//
// # Supported Platforms
//
//   - x86-64: POPCNT
//   - ARM64: ASIMD (CNT)
//
// Runtime CPU feature detection selects the population count kernel. When the
// hardware instruction is unavailable, or BITKIT_SIMD=generic is set, a portable
// bit loop is used instead.
//
// # Operations
//
//   - Combine: AndWords, AndNotWords, OrWords, XorWords
//   - Count: Popcount, PopcountWords
//
// The combine kernels are unrolled pure Go. Vector assembly is not implemented.
package simd
