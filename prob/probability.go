// SPDX-License-Identifier: MIT

package prob

import (
	"fmt"
	"math/bits"

	"tlog.app/go/errors"
)

// denominator is the fixed denominator of every BranchProbability.
const denominator = uint32(1) << 31

var (
	// ErrZeroDenominator is used when a probability is built over zero.
	ErrZeroDenominator = errors.New("prob: zero denominator")

	// ErrAboveOne is used when the numerator exceeds the denominator.
	ErrAboveOne = errors.New("prob: probability above one")
)

// BranchProbability is the probability of taking one control-flow edge,
// stored as n / 2^31. The zero value is probability zero.
type BranchProbability struct {
	n uint32
}

// New returns num/den rounded to the nearest representable probability.
// Panics with ErrZeroDenominator or ErrAboveOne on invalid input.
func New(num, den uint32) BranchProbability {
	if den == 0 {
		panic(errors.Wrap(ErrZeroDenominator, "New(%d,%d)", num, den))
	}
	if num > den {
		panic(errors.Wrap(ErrAboveOne, "New(%d,%d)", num, den))
	}
	if den == denominator {
		return BranchProbability{n: num}
	}
	p64 := (uint64(num)*uint64(denominator) + uint64(den)/2) / uint64(den)

	return BranchProbability{n: uint32(p64)}
}

// FromCounts returns taken/total for 64-bit counts, shifting both down until
// the denominator fits 32 bits.
func FromCounts(taken, total uint64) BranchProbability {
	if total == 0 {
		panic(errors.Wrap(ErrZeroDenominator, "FromCounts(%d,%d)", taken, total))
	}
	if taken > total {
		panic(errors.Wrap(ErrAboveOne, "FromCounts(%d,%d)", taken, total))
	}
	if shift := 32 - bits.LeadingZeros64(total); shift > 0 {
		taken >>= uint(shift)
		total >>= uint(shift)
	}
	return New(uint32(taken), uint32(total))
}

// Zero is the probability of an edge never taken.
func Zero() BranchProbability { return BranchProbability{} }

// One is the probability of an edge always taken.
func One() BranchProbability { return BranchProbability{n: denominator} }

// Numerator returns n of n/2^31.
func (p BranchProbability) Numerator() uint32 { return p.n }

// Denominator returns the fixed denominator 2^31.
func (p BranchProbability) Denominator() uint32 { return denominator }

// Complement returns 1 - p.
func (p BranchProbability) Complement() BranchProbability {
	return BranchProbability{n: denominator - p.n}
}

// Scale returns floor(v * p).
// Complexity: O(1).
func (p BranchProbability) Scale(v uint64) uint64 {
	hi, lo := bits.Mul64(v, uint64(p.n))
	// (hi:lo) >> 31; p <= 1 keeps the result within 64 bits
	return hi<<(64-31) | lo>>31
}

// String renders p as "0x%08x / 0x%08x = %.2f%%".
func (p BranchProbability) String() string {
	pct := float64(p.n) * 100 / float64(denominator)

	return fmt.Sprintf("0x%08x / 0x%08x = %.2f%%", p.n, denominator, pct)
}
