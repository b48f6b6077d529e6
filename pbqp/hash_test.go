package pbqp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pbqpcfg/pbqp"
	"github.com/stretchr/testify/assert"
)

func TestHashVectorStructural(t *testing.T) {
	a := pbqp.VectorOf(1, 2, 3)
	b := pbqp.VectorOf(1, 2, 3)
	assert.Equal(t, pbqp.HashVector(a), pbqp.HashVector(b))
	assert.Equal(t, a.Hash(), pbqp.HashVector(a))

	// order-sensitive
	assert.NotEqual(t, a.Hash(), pbqp.VectorOf(3, 2, 1).Hash())
	// length participates
	assert.NotEqual(t, pbqp.VectorOf(0).Hash(), pbqp.VectorOf(0, 0).Hash())

	// bit pattern, not numeric value: +0 and -0 are Equal but hash apart
	pos := pbqp.VectorOf(0)
	neg := pbqp.VectorOf(math.Copysign(0, -1))
	assert.True(t, pos.Equal(neg))
	assert.NotEqual(t, pos.Hash(), neg.Hash())
}

func TestHashVectorLong(t *testing.T) {
	// Longer than the internal chunk so the flush path runs more than once.
	v := pbqp.NewVectorFill(100, 1)
	w := v.Clone()
	assert.Equal(t, v.Hash(), w.Hash())

	w.Set(99, 2)
	assert.NotEqual(t, v.Hash(), w.Hash())
}

func TestHashMatrixStructural(t *testing.T) {
	m := pbqp.MatrixOf([][]pbqp.Num{{1, 2}, {3, 4}})
	assert.Equal(t, m.Hash(), m.Clone().Hash())
	assert.NotEqual(t, m.Hash(), m.Transpose().Hash())

	// same flat data, different shape
	row := pbqp.MatrixOf([][]pbqp.Num{{1, 2, 3, 4}})
	col := row.Transpose()
	assert.NotEqual(t, row.Hash(), pbqp.MatrixOf([][]pbqp.Num{{1, 2}, {3, 4}}).Hash())
	assert.NotEqual(t, row.Hash(), col.Hash())

	requirePanicIs(t, pbqp.ErrInvalidMatrix, func() {
		moved := m.Clone()
		moved.Move()
		moved.Hash()
	})
}
