package pbqp

// MDVector decorates a Vector with metadata computed from it once, when the
// MDVector is built. The wrapped vector must be treated as read-only: the
// metadata is never recomputed afterwards.
type MDVector[M any] struct {
	vec *Vector
	md  M
}

// NewMDVector copies v and computes the metadata from the copy.
func NewMDVector[M any](v *Vector, compute func(*Vector) M) *MDVector[M] {
	return wrapVector(v.Clone(), compute)
}

// NewMDVectorMove takes ownership of v's buffer (v is left invalid) and
// computes the metadata from it.
func NewMDVectorMove[M any](v *Vector, compute func(*Vector) M) *MDVector[M] {
	return wrapVector(v.Move(), compute)
}

func wrapVector[M any](v *Vector, compute func(*Vector) M) *MDVector[M] {
	return &MDVector[M]{vec: v, md: compute(v)}
}

// Vector returns the wrapped vector.
func (v *MDVector[M]) Vector() *Vector { return v.vec }

// Metadata returns the value computed at construction.
func (v *MDVector[M]) Metadata() M { return v.md }

// Len returns the length of the wrapped vector.
func (v *MDVector[M]) Len() int { return v.vec.Len() }

// At returns entry i of the wrapped vector.
func (v *MDVector[M]) At(i int) Num { return v.vec.At(i) }

// Equal compares the wrapped vectors; metadata is derived and not compared.
func (v *MDVector[M]) Equal(w *MDVector[M]) bool {
	return w != nil && v.vec.Equal(w.vec)
}

// Clone copies the wrapped vector together with its metadata.
func (v *MDVector[M]) Clone() *MDVector[M] {
	return &MDVector[M]{vec: v.vec.Clone(), md: v.md}
}

// Hash is the hash of the wrapped vector.
func (v *MDVector[M]) Hash() uint64 { return HashVector(v.vec) }

func (v *MDVector[M]) String() string { return v.vec.String() }

// MDMatrix decorates a Matrix with metadata computed from it at construction.
type MDMatrix[M any] struct {
	mat *Matrix
	md  M
}

// NewMDMatrix copies m and computes the metadata from the copy.
func NewMDMatrix[M any](m *Matrix, compute func(*Matrix) M) *MDMatrix[M] {
	return wrapMatrix(m.Clone(), compute)
}

// NewMDMatrixMove takes ownership of m's buffer (m is left invalid).
func NewMDMatrixMove[M any](m *Matrix, compute func(*Matrix) M) *MDMatrix[M] {
	return wrapMatrix(m.Move(), compute)
}

func wrapMatrix[M any](m *Matrix, compute func(*Matrix) M) *MDMatrix[M] {
	return &MDMatrix[M]{mat: m, md: compute(m)}
}

// Matrix returns the wrapped matrix.
func (m *MDMatrix[M]) Matrix() *Matrix { return m.mat }

// Metadata returns the value computed at construction.
func (m *MDMatrix[M]) Metadata() M { return m.md }

// Rows returns the row count of the wrapped matrix.
func (m *MDMatrix[M]) Rows() int { return m.mat.Rows() }

// Cols returns the column count of the wrapped matrix.
func (m *MDMatrix[M]) Cols() int { return m.mat.Cols() }

// At returns element (r, c) of the wrapped matrix.
func (m *MDMatrix[M]) At(r, c int) Num { return m.mat.At(r, c) }

// Equal compares the wrapped matrices.
func (m *MDMatrix[M]) Equal(n *MDMatrix[M]) bool {
	return n != nil && m.mat.Equal(n.mat)
}

// Clone copies the wrapped matrix together with its metadata.
func (m *MDMatrix[M]) Clone() *MDMatrix[M] {
	return &MDMatrix[M]{mat: m.mat.Clone(), md: m.md}
}

// Hash is the hash of the wrapped matrix.
func (m *MDMatrix[M]) Hash() uint64 { return HashMatrix(m.mat) }

func (m *MDMatrix[M]) String() string { return m.mat.String() }
