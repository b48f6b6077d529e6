// SPDX-License-Identifier: MIT

package pbqp

import (
	"strconv"
	"strings"
)

// Num is the scalar type of every cost entry.
type Num = float64

// Vector is a dense cost vector with exclusively owned storage.
// A valid Vector has Len() > 0; the zero value and moved-from vectors are invalid.
type Vector struct {
	data []Num // backing storage, len(data) == length
}

// NewVector creates a zero-initialized Vector of the given length.
// Panics with ErrBadShape if length <= 0.
// Complexity: O(n).
func NewVector(length int) *Vector {
	if length <= 0 {
		contractf(ErrBadShape, "NewVector(%d)", length)
	}

	return &Vector{data: make([]Num, length)}
}

// NewVectorFill creates a Vector of the given length with every entry set to v.
// Complexity: O(n).
func NewVectorFill(length int, v Num) *Vector {
	vec := NewVector(length)
	for i := range vec.data {
		vec.data[i] = v
	}

	return vec
}

// VectorOf builds a Vector from a copy of vals.
func VectorOf(vals ...Num) *Vector {
	vec := NewVector(len(vals))
	copy(vec.data, vals)

	return vec
}

// mustBeValid panics if the vector has been moved from or was never built.
func (v *Vector) mustBeValid(method string) {
	if v == nil || len(v.data) == 0 {
		contractf(ErrInvalidVector, "Vector.%s", method)
	}
}

// Valid reports whether v owns a non-empty buffer.
func (v *Vector) Valid() bool {
	return v != nil && len(v.data) != 0
}

// Len returns the number of entries.
// Complexity: O(1).
func (v *Vector) Len() int {
	v.mustBeValid("Len")

	return len(v.data)
}

// At returns the entry at index i.
// Panics with ErrOutOfRange unless 0 <= i < Len().
func (v *Vector) At(i int) Num {
	return *v.Ptr(i)
}

// Set assigns x to the entry at index i.
func (v *Vector) Set(i int, x Num) {
	*v.Ptr(i) = x
}

// Ptr returns a reference to the entry at index i, valid until v is moved.
func (v *Vector) Ptr(i int) *Num {
	v.mustBeValid("Ptr")
	if i < 0 || i >= len(v.data) {
		contractf(ErrOutOfRange, "Vector.Ptr(%d) len=%d", i, len(v.data))
	}

	return &v.data[i]
}

// Values returns a copy of the entries.
func (v *Vector) Values() []Num {
	v.mustBeValid("Values")
	out := make([]Num, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports whether w has the same length and bit-for-bit equal entries
// under float comparison (==). There is no tolerance: entries one ULP apart differ.
// Panics if v is invalid; an invalid or nil w is never equal.
// Complexity: O(n).
func (v *Vector) Equal(w *Vector) bool {
	v.mustBeValid("Equal")
	if w == nil || len(v.data) != len(w.data) {
		return false
	}
	for i, x := range v.data {
		if x != w.data[i] {
			return false
		}
	}

	return true
}

// AddInPlace adds w to v element-wise (v += w) and returns v.
// Panics with ErrDimensionMismatch if lengths differ.
// Complexity: O(n).
func (v *Vector) AddInPlace(w *Vector) *Vector {
	v.mustBeValid("AddInPlace")
	w.mustBeValid("AddInPlace")
	if len(v.data) != len(w.data) {
		contractf(ErrDimensionMismatch, "Vector.AddInPlace: %d vs %d", len(v.data), len(w.data))
	}
	for i := range v.data {
		v.data[i] += w.data[i]
	}

	return v
}

// Add returns a new vector v + w, leaving both operands untouched.
func (v *Vector) Add(w *Vector) *Vector {
	v.mustBeValid("Add")

	return v.Clone().AddInPlace(w)
}

// MinIndex returns the index of the smallest entry. Ties resolve to the
// lowest index because the scan only moves on a strictly smaller value.
// Complexity: O(n).
func (v *Vector) MinIndex() int {
	v.mustBeValid("MinIndex")
	best := 0
	for i := 1; i < len(v.data); i++ {
		if v.data[i] < v.data[best] {
			best = i
		}
	}

	return best
}

// Clone returns an independent deep copy of v.
// Complexity: O(n) time and memory.
func (v *Vector) Clone() *Vector {
	v.mustBeValid("Clone")
	data := make([]Num, len(v.data))
	copy(data, v.data)

	return &Vector{data: data}
}

// Move transfers the buffer of v into a new Vector. v is left invalid.
// Complexity: O(1).
func (v *Vector) Move() *Vector {
	v.mustBeValid("Move")
	out := &Vector{data: v.data}
	v.data = nil

	return out
}

// Hash returns the structural hash of v. See HashVector.
func (v *Vector) Hash() uint64 {
	return HashVector(v)
}

// String formats v as "[ e0, e1, ..., en-1 ]".
func (v *Vector) String() string {
	v.mustBeValid("String")
	var sb strings.Builder
	writeVector(&sb, v.data)

	return sb.String()
}

// writeVector renders one row of entries in the "[ a, b ]" form.
func writeVector(sb *strings.Builder, data []Num) {
	sb.WriteString("[ ")
	for i, x := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteString(" ]")
}
