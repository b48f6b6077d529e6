// Package satmath provides unsigned arithmetic that clamps at math.MaxUint64
// instead of wrapping. Every helper returns the clamped result together with
// a flag reporting whether clamping happened.
package satmath

import (
	"math"
	"math/bits"
)

// SaturatingAdd returns x+y, or math.MaxUint64 and true on overflow.
// Complexity: O(1).
func SaturatingAdd(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return math.MaxUint64, true
	}

	return sum, false
}

// SaturatingMultiply returns x*y, or math.MaxUint64 and true on overflow.
// Complexity: O(1).
func SaturatingMultiply(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return math.MaxUint64, true
	}

	return lo, false
}

// SaturatingMultiplyAdd returns x*y+a, saturating if either step overflows.
func SaturatingMultiplyAdd(x, y, a uint64) (uint64, bool) {
	prod, overflow := SaturatingMultiply(x, y)
	if overflow {
		return prod, true
	}

	return SaturatingAdd(prod, a)
}
