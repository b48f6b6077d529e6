package pbqp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"

	"github.com/katalvlaran/pbqpcfg/pbqp"
)

// requirePanicIs runs fn and asserts it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		p := recover()
		require.NotNil(t, p, "expected panic wrapping %v", target)

		err, ok := p.(error)
		require.True(t, ok, "panic value is %T, not error", p)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()

	fn()
}

// randomMatrix fills an r×c matrix with small random integers (exactly representable).
func randomMatrix(rng *rand.Rand, r, c int) *pbqp.Matrix {
	m := pbqp.NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, pbqp.Num(rng.Intn(100)-50))
		}
	}

	return m
}
