// SPDX-License-Identifier: MIT

package pbqp

import (
	"math"
)

// Register-allocation cost tables reserve option 0 for "spill"; options
// 1..n-1 are registers. An entry of +Inf forbids the option (or option pair).

// OptionsMetadata summarizes a node cost vector.
type OptionsMetadata struct {
	// NumOpts is the number of register options (length minus the spill slot).
	NumOpts int
	// NumDisallowed counts register options whose cost is +Inf.
	NumDisallowed int
}

// AllowedOptions computes OptionsMetadata for v. Use it as the compute
// function of NewMDVector.
// Complexity: O(n).
func AllowedOptions(v *Vector) OptionsMetadata {
	md := OptionsMetadata{NumOpts: v.Len() - 1}
	for i := 1; i < len(v.data); i++ {
		if math.IsInf(v.data[i], 1) {
			md.NumDisallowed++
		}
	}

	return md
}

// MatrixMetadata records how strongly an edge cost matrix constrains its two
// endpoints. Row/column 0 (spill) is ignored.
type MatrixMetadata struct {
	// WorstRow is the largest number of +Inf entries in any register row.
	WorstRow int
	// WorstCol is the largest number of +Inf entries in any register column.
	WorstCol int
	// UnsafeRows[i-1] is true when row i holds at least one +Inf.
	UnsafeRows []bool
	// UnsafeCols[j-1] is true when column j holds at least one +Inf.
	UnsafeCols []bool
}

// InterferenceMetadata computes MatrixMetadata for m. Use it as the compute
// function of NewMDMatrix. A matrix with a single row or column has no
// register options on that side and yields empty Unsafe slices.
// Complexity: O(r*c).
func InterferenceMetadata(m *Matrix) MatrixMetadata {
	m.mustBeValid("InterferenceMetadata")
	md := MatrixMetadata{
		UnsafeRows: make([]bool, m.r-1),
		UnsafeCols: make([]bool, m.c-1),
	}
	colCounts := make([]int, m.c-1)
	for i := 1; i < m.r; i++ {
		rowCount := 0
		row := m.data[i*m.c : (i+1)*m.c]
		for j := 1; j < m.c; j++ {
			if !math.IsInf(row[j], 1) {
				continue
			}
			rowCount++
			colCounts[j-1]++
			md.UnsafeRows[i-1] = true
			md.UnsafeCols[j-1] = true
		}
		md.WorstRow = max(md.WorstRow, rowCount)
	}
	for _, n := range colCounts {
		md.WorstCol = max(md.WorstCol, n)
	}

	return md
}
