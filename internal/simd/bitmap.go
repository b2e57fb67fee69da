package simd

import "math/bits"

// Block kernels back the bitkit.BitSet algebra and aggregate queries.
// Binary kernels combine src into dst word by word over min(len(dst),
// len(src)) words; callers normally pass slices of equal length.
//
// The combine kernels have no hardware variant: the compiler already emits
// a tight loop for them. Only the population count is dispatched per CPU,
// by useISA in capability.go.
var (
	kernelPopcount      = popcountPortable
	kernelPopcountWords = popcountWordsPortable
)

// AndWords performs dst[i] &= src[i].
func AndWords(dst, src []uint64) {
	d, s := pair(dst, src)
	for len(d) >= 4 && len(s) >= 4 {
		d[0] &= s[0]
		d[1] &= s[1]
		d[2] &= s[2]
		d[3] &= s[3]
		d, s = d[4:], s[4:]
	}
	for i := range d {
		d[i] &= s[i]
	}
}

// AndNotWords performs dst[i] &^= src[i].
func AndNotWords(dst, src []uint64) {
	d, s := pair(dst, src)
	for len(d) >= 4 && len(s) >= 4 {
		d[0] &^= s[0]
		d[1] &^= s[1]
		d[2] &^= s[2]
		d[3] &^= s[3]
		d, s = d[4:], s[4:]
	}
	for i := range d {
		d[i] &^= s[i]
	}
}

// OrWords performs dst[i] |= src[i].
func OrWords(dst, src []uint64) {
	d, s := pair(dst, src)
	for len(d) >= 4 && len(s) >= 4 {
		d[0] |= s[0]
		d[1] |= s[1]
		d[2] |= s[2]
		d[3] |= s[3]
		d, s = d[4:], s[4:]
	}
	for i := range d {
		d[i] |= s[i]
	}
}

// XorWords performs dst[i] ^= src[i].
func XorWords(dst, src []uint64) {
	d, s := pair(dst, src)
	for len(d) >= 4 && len(s) >= 4 {
		d[0] ^= s[0]
		d[1] ^= s[1]
		d[2] ^= s[2]
		d[3] ^= s[3]
		d, s = d[4:], s[4:]
	}
	for i := range d {
		d[i] ^= s[i]
	}
}

// pair trims dst and src to a common length so the loops above compile
// without bounds checks.
func pair(dst, src []uint64) ([]uint64, []uint64) {
	n := min(len(dst), len(src))
	return dst[:n:n], src[:n:n]
}

// Popcount returns the number of set bits in w.
func Popcount(w uint64) int {
	return kernelPopcount(w)
}

// PopcountWords returns the number of set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// popcountHardware lowers to POPCNT or CNT where the CPU has it.
func popcountHardware(w uint64) int {
	return bits.OnesCount64(w)
}

// popcountWordsHardware keeps four independent sums so consecutive
// POPCNTs do not serialize on one register.
func popcountWordsHardware(words []uint64) int {
	var c0, c1, c2, c3 int
	for len(words) >= 4 {
		c0 += bits.OnesCount64(words[0])
		c1 += bits.OnesCount64(words[1])
		c2 += bits.OnesCount64(words[2])
		c3 += bits.OnesCount64(words[3])
		words = words[4:]
	}
	for _, w := range words {
		c0 += bits.OnesCount64(w)
	}
	return c0 + c1 + c2 + c3
}

// popcountPortable clears the lowest set bit until none remain.
func popcountPortable(w uint64) int {
	n := 0
	for ; w != 0; n++ {
		w &= w - 1
	}
	return n
}

func popcountWordsPortable(words []uint64) int {
	n := 0
	for _, w := range words {
		n += popcountPortable(w)
	}
	return n
}
