// SPDX-License-Identifier: MIT

package pbqp

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// HashVector returns a structural hash of v: its length followed by the raw
// IEEE-754 bit pattern of every entry, in order.
//
// The hash is structural, not numeric: -0.0 and +0.0 compare equal under
// Equal but hash differently, and NaNs hash by payload.
// Complexity: O(n).
func HashVector(v *Vector) uint64 {
	v.mustBeValid("Hash")

	d := xxhash.New()
	writeWord(d, uint64(len(v.data)))
	writeBits(d, v.data)

	return d.Sum64()
}

// HashMatrix returns a structural hash of m: rows, cols, then the raw bit
// pattern of all r*c elements in row-major order.
// Complexity: O(r*c).
func HashMatrix(m *Matrix) uint64 {
	m.mustBeValid("Hash")

	d := xxhash.New()
	writeWord(d, uint64(m.r))
	writeWord(d, uint64(m.c))
	writeBits(d, m.data)

	return d.Sum64()
}

func writeWord(d *xxhash.Digest, w uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], w)
	_, _ = d.Write(buf[:]) // Digest.Write never fails
}

// writeBits feeds the bit patterns of data in chunks to keep allocations flat.
func writeBits(d *xxhash.Digest, data []Num) {
	var buf [8 * 32]byte
	n := 0
	for _, x := range data {
		binary.LittleEndian.PutUint64(buf[n:], math.Float64bits(x))
		n += 8
		if n == len(buf) {
			_, _ = d.Write(buf[:])
			n = 0
		}
	}
	if n > 0 {
		_, _ = d.Write(buf[:n])
	}
}
