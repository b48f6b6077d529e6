// Package pbqp: Matrix is a concrete row-major cost matrix storing elements in
// a flat slice, the same layout used for every edge cost in a PBQP graph.
package pbqp

import (
	"strings"
)

// Matrix is a row-major matrix of Num values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A valid Matrix has r > 0 and c > 0.
type Matrix struct {
	r, c int   // number of rows and columns
	data []Num // flat backing storage, length == r*c
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0, else panic with ErrBadShape.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) *Matrix {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		contractf(ErrBadShape, "NewMatrix(%d,%d)", rows, cols)
	}

	return &Matrix{r: rows, c: cols, data: make([]Num, rows*cols)}
}

// NewMatrixFill creates an r×c Matrix with every element set to v.
// Complexity: O(r*c).
func NewMatrixFill(rows, cols int, v Num) *Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = v
	}

	return m
}

// MatrixOf builds a Matrix from a copy of the given rows.
// All rows must have the same non-zero length (ErrDimensionMismatch otherwise).
func MatrixOf(rows [][]Num) *Matrix {
	if len(rows) == 0 {
		contractf(ErrBadShape, "MatrixOf: no rows")
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			contractf(ErrDimensionMismatch, "MatrixOf: row %d has %d cols, want %d", i, len(row), m.c)
		}
		copy(m.data[i*m.c:], row)
	}

	return m
}

func (m *Matrix) mustBeValid(method string) {
	if m == nil || m.r == 0 || m.c == 0 || m.data == nil {
		contractf(ErrInvalidMatrix, "Matrix.%s", method)
	}
}

// Valid reports whether m owns a non-empty buffer.
func (m *Matrix) Valid() bool {
	return m != nil && m.r != 0 && m.c != 0 && m.data != nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	m.mustBeValid("Rows")

	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	m.mustBeValid("Cols")

	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or panics with ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) int {
	m.mustBeValid(method)
	// Validate row and column index
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		contractf(ErrOutOfRange, "Matrix.%s(%d,%d) shape=%dx%d", method, row, col, m.r, m.c)
	}

	// Compute flat offset
	return row*m.c + col
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) Num {
	return m.data[m.indexOf("At", row, col)]
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v Num) {
	m.data[m.indexOf("Set", row, col)] = v
}

// Row returns a mutable view of row r: m.Row(r)[c] addresses element (r, c).
// The view aliases m and is capped so that append cannot spill into the next row.
// Panics with ErrOutOfRange unless 0 <= r < Rows().
func (m *Matrix) Row(r int) []Num {
	m.mustBeValid("Row")
	if r < 0 || r >= m.r {
		contractf(ErrOutOfRange, "Matrix.Row(%d) rows=%d", r, m.r)
	}
	base := r * m.c

	return m.data[base : base+m.c : base+m.c]
}

// RowVector returns row r as a new independent Vector.
// Complexity: O(c).
func (m *Matrix) RowVector(r int) *Vector {
	row := m.Row(r)
	v := NewVector(m.c)
	copy(v.data, row)

	return v
}

// ColVector returns column c as a new independent Vector.
// Complexity: O(r).
func (m *Matrix) ColVector(c int) *Vector {
	m.mustBeValid("ColVector")
	if c < 0 || c >= m.c {
		contractf(ErrOutOfRange, "Matrix.ColVector(%d) cols=%d", c, m.c)
	}
	v := NewVector(m.r)
	for i := 0; i < m.r; i++ {
		v.data[i] = m.data[i*m.c+c]
	}

	return v
}

// Transpose returns a new c×r matrix T with T[j][i] = m[i][j].
// Complexity: O(r*c) time and memory.
func (m *Matrix) Transpose() *Matrix {
	m.mustBeValid("Transpose")
	t := NewMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c // base offset for row i
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[base+j]
		}
	}

	return t
}

// Equal reports whether n has the same shape and exactly equal elements.
// Complexity: O(r*c).
func (m *Matrix) Equal(n *Matrix) bool {
	m.mustBeValid("Equal")
	if n == nil || m.r != n.r || m.c != n.c {
		return false
	}
	for i, x := range m.data {
		if x != n.data[i] {
			return false
		}
	}

	return true
}

// AddInPlace adds n to m element-wise (m += n) and returns m.
// Panics with ErrDimensionMismatch on different shapes.
// Complexity: O(r*c).
func (m *Matrix) AddInPlace(n *Matrix) *Matrix {
	m.mustBeValid("AddInPlace")
	n.mustBeValid("AddInPlace")
	if m.r != n.r || m.c != n.c {
		contractf(ErrDimensionMismatch, "Matrix.AddInPlace: %dx%d vs %dx%d", m.r, m.c, n.r, n.c)
	}
	// flat pass over the row-major buffer
	for i := range m.data {
		m.data[i] += n.data[i]
	}

	return m
}

// Add returns a new matrix m + n.
func (m *Matrix) Add(n *Matrix) *Matrix {
	m.mustBeValid("Add")

	return m.Clone().AddInPlace(n)
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Matrix) Clone() *Matrix {
	m.mustBeValid("Clone")
	// Allocate new slice for data copy
	copyData := make([]Num, len(m.data))
	copy(copyData, m.data)

	return &Matrix{r: m.r, c: m.c, data: copyData}
}

// Move transfers the buffer of m into a new Matrix and leaves m invalid
// (zero rows, zero cols, no buffer).
// Complexity: O(1).
func (m *Matrix) Move() *Matrix {
	m.mustBeValid("Move")
	out := &Matrix{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Hash returns the structural hash of m. See HashMatrix.
func (m *Matrix) Hash() uint64 {
	return HashMatrix(m)
}

// String renders one "[ a, b, ... ]" line per row.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	m.mustBeValid("String")
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		writeVector(&sb, m.data[i*m.c:(i+1)*m.c])
		sb.WriteByte('\n')
	}

	return sb.String()
}
