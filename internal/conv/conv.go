// Package conv provides safe integer conversion helpers for the matcher.
//
// These functions bounds-check narrowing conversions and panic on overflow,
// since an overflow here indicates a programming error (a text or table size
// outside the limits the kernel arguments were designed for).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so the upper bound is representable on 32-bit
	// platforms, where int cannot hold math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
