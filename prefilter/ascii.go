package prefilter

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasWideAccel mirrors the teacher corpus's practice of gating SIMD
// dispatch on a runtime CPU feature flag (simd/memchr_amd64.go checks
// cpu.X86.HasAVX2). regexlite carries no hand-written assembly, so rather
// than dispatch to an intrinsic, the flag gates between two pure-Go memchr
// strategies: a SWAR (SIMD-within-a-register) word-at-a-time loop on
// platforms with cheap unaligned 64-bit loads, and a plain byte loop
// everywhere else. Both are ordinary Go; the flag only decides whether the
// wider loop is worth its setup cost.
var hasWideAccel = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

// memchr returns the index of the first occurrence of b in haystack at or
// after start, or -1.
func memchr(haystack []byte, start int, b byte) int {
	if !hasWideAccel || len(haystack)-start < 8 {
		return memchrBytes(haystack, start, b)
	}
	return memchrSWAR(haystack, start, b)
}

func memchrBytes(haystack []byte, start int, b byte) int {
	for i := start; i < len(haystack); i++ {
		if haystack[i] == b {
			return i
		}
	}
	return -1
}

// memchrSWAR scans 8 bytes at a time using the classic broadcast-compare-
// and-mask trick, falling back to a byte loop for the final partial word.
func memchrSWAR(haystack []byte, start int, b byte) int {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080

	pattern := lo * uint64(b)
	i := start
	end := len(haystack) - 8

	for ; i <= end; i += 8 {
		word := uint64(haystack[i]) | uint64(haystack[i+1])<<8 |
			uint64(haystack[i+2])<<16 | uint64(haystack[i+3])<<24 |
			uint64(haystack[i+4])<<32 | uint64(haystack[i+5])<<40 |
			uint64(haystack[i+6])<<48 | uint64(haystack[i+7])<<56

		x := word ^ pattern
		hit := (x - lo) & ^x & hi
		if hit != 0 {
			return i + bits.TrailingZeros64(hit)/8
		}
	}
	return memchrBytes(haystack, i, b)
}
