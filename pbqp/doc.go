// Package pbqp provides the cost algebra used by Partitioned Boolean Quadratic
// Programming solvers: dense cost vectors (one entry per allocation option of
// a node) and dense cost matrices (one entry per option pair of an edge).
//
// What & Why:
//
//	A PBQP problem attaches a Vector to every node and a Matrix to every edge.
//	Solvers reduce the graph by folding matrices into vectors (row/column
//	extraction, addition, transposition) and pick the cheapest option with
//	MinIndex. Identical costs are very common, so values carry a structural
//	hash and can be interned in a Pool.
//
// Value semantics:
//
//   - Vector and Matrix exclusively own their backing slice.
//   - Clone returns an independent deep copy.
//   - Move transfers the buffer to a new value and leaves the source invalid
//     (length 0, no buffer). Any further use of the source panics.
//   - Row/column extraction and Transpose always allocate new values.
//
// Contract violations (invalid value, index out of range, shape mismatch)
// are programmer errors and panic with an error wrapping one of the package
// sentinels (ErrInvalidVector, ErrInvalidMatrix, ErrOutOfRange,
// ErrDimensionMismatch, ErrBadShape). Equality is exact: no epsilon.
//
// Complexity:
//
//	Element access is O(1). Equal, AddInPlace, MinIndex and Hash are O(n)
//	for vectors and O(r*c) for matrices. Transpose is O(r*c) time and space.
package pbqp
