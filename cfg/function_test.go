package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"

	"github.com/katalvlaran/pbqpcfg/cfg"
)

// buildDiamond creates entry→{b1,b2}→b3.
func buildDiamond(t *testing.T) *cfg.Function {
	t.Helper()

	f := cfg.NewFunction("diamond")
	for _, name := range []string{"entry", "b1", "b2", "b3"} {
		_, err := f.AddBlock(name)
		require.NoError(t, err)
	}
	require.NoError(t, f.AddEdge("entry", "b1"))
	require.NoError(t, f.AddEdge("entry", "b2"))
	require.NoError(t, f.AddEdge("b1", "b3"))
	require.NoError(t, f.AddEdge("b2", "b3"))

	return f
}

func TestFunctionBuild(t *testing.T) {
	f := buildDiamond(t)

	assert.Equal(t, "diamond", f.Name())
	require.Len(t, f.Blocks(), 4)
	assert.Equal(t, f.Block("entry"), f.Entry())
	assert.Equal(t, 2, f.Block("b3").NumPredecessors())
	assert.Equal(t, 0, f.Block("entry").NumPredecessors())

	succs := f.Block("entry").Successors()
	require.Len(t, succs, 2)
	assert.Equal(t, "b1", succs[0].Name())
	assert.Equal(t, "b2", succs[1].Name())
}

func TestFunctionErrors(t *testing.T) {
	f := cfg.NewFunction("f")
	_, err := f.AddBlock("")
	assert.ErrorIs(t, err, cfg.ErrEmptyBlockName)

	_, err = f.AddBlock("a")
	require.NoError(t, err)
	_, err = f.AddBlock("a")
	assert.True(t, errors.Is(err, cfg.ErrDuplicateBlock))

	assert.ErrorIs(t, f.AddEdge("a", "zz"), cfg.ErrUnknownBlock)
	assert.ErrorIs(t, f.AddEdge("zz", "a"), cfg.ErrUnknownBlock)
	assert.ErrorIs(t, f.SetLandingPad("zz"), cfg.ErrUnknownBlock)

	require.NoError(t, f.SetLandingPad("a"))
	assert.True(t, f.Block("a").IsLandingPad())
}

func TestEmptyFunctionHasNoEntry(t *testing.T) {
	f := cfg.NewFunction("empty")
	assert.Nil(t, f.Entry())
	assert.Empty(t, f.Blocks())
}

func TestCriticalEdges(t *testing.T) {
	// Diamond: b1→b3 and b2→b3 come from single-successor blocks: not critical.
	assert.Empty(t, buildDiamond(t).CriticalEdges())

	// entry→{a, join}, a→join: entry→join is critical.
	f := cfg.NewFunction("tri")
	for _, n := range []string{"entry", "a", "join"} {
		_, err := f.AddBlock(n)
		require.NoError(t, err)
	}
	require.NoError(t, f.AddEdge("entry", "a"))
	require.NoError(t, f.AddEdge("entry", "join"))
	require.NoError(t, f.AddEdge("a", "join"))

	crit := f.CriticalEdges()
	require.Len(t, crit, 1)
	assert.Equal(t, "entry", crit[0].From.Name())
	assert.Equal(t, "join", crit[0].To.Name())
}
