package cfgmst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pbqpcfg/cfg"
	"github.com/katalvlaran/pbqpcfg/cfgmst"
)

// buildFunc creates a function whose blocks appear in order; succs maps a
// block to its ordered successors.
func buildFunc(t testing.TB, name string, order []string, succs map[string][]string) *cfg.Function {
	t.Helper()

	f := cfg.NewFunction(name)
	for _, b := range order {
		_, err := f.AddBlock(b)
		require.NoError(t, err)
	}
	for _, b := range order {
		for _, s := range succs[b] {
			require.NoError(t, f.AddEdge(b, s))
		}
	}

	return f
}

// linear is entry → b1 → b2.
func linear(t testing.TB) *cfg.Function {
	return buildFunc(t, "linear", []string{"entry", "b1", "b2"}, map[string][]string{
		"entry": {"b1"},
		"b1":    {"b2"},
	})
}

// diamond is entry → {b1, b2} → b3.
func diamond(t testing.TB) *cfg.Function {
	return buildFunc(t, "diamond", []string{"entry", "b1", "b2", "b3"}, map[string][]string{
		"entry": {"b1", "b2"},
		"b1":    {"b3"},
		"b2":    {"b3"},
	})
}

// randomFunc builds a connected-from-entry CFG with n blocks and extra random
// edges. The generator is seeded for reproducibility.
func randomFunc(t testing.TB, seed int64, n, extra int) *cfg.Function {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	f := cfg.NewFunction(fmt.Sprintf("rand%d", seed))
	for i := 0; i < n; i++ {
		_, err := f.AddBlock(fmt.Sprintf("B%d", i))
		require.NoError(t, err)
	}
	// chain for reachability
	for i := 1; i < n; i++ {
		require.NoError(t, f.AddEdge(fmt.Sprintf("B%d", r.Intn(i)), fmt.Sprintf("B%d", i)))
	}
	for i := 0; i < extra; i++ {
		require.NoError(t, f.AddEdge(fmt.Sprintf("B%d", r.Intn(n)), fmt.Sprintf("B%d", r.Intn(n))))
	}

	return f
}

// edgeNames renders edges as "src->dst" for compact assertions.
func edgeNames(edges []*cfgmst.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Src.String() + "->" + e.Dst.String()
	}

	return out
}

// findEdge returns the first edge src->dst.
func findEdge(t testing.TB, m *cfgmst.MST, src, dst string) *cfgmst.Edge {
	t.Helper()

	for _, e := range m.Edges() {
		if e.Src.String() == src && e.Dst.String() == dst {
			return e
		}
	}
	require.Failf(t, "edge not found", "%s->%s", src, dst)

	return nil
}

// requireForest checks that tree edges form a forest that connects the
// endpoints of every non-removed edge.
func requireForest(t testing.TB, m *cfgmst.MST) {
	t.Helper()

	parent := map[cfgmst.Node]cfgmst.Node{}
	var find func(n cfgmst.Node) cfgmst.Node
	find = func(n cfgmst.Node) cfgmst.Node {
		p, ok := parent[n]
		if !ok || p == n {
			return n
		}
		root := find(p)
		parent[n] = root
		return root
	}

	tree := m.TreeEdges()
	require.LessOrEqual(t, len(tree), m.NumNodes()-1)
	for _, e := range tree {
		a, b := find(e.Src), find(e.Dst)
		require.NotEqual(t, a, b, "tree edge %s->%s closes a cycle", e.Src, e.Dst)
		parent[a] = b
	}
	for _, e := range m.Edges() {
		if e.Removed {
			continue
		}
		require.Equal(t, find(e.Src), find(e.Dst), "edge %s->%s not spanned", e.Src, e.Dst)
	}
}

// fakeFreq is a BlockFrequencyInfo with fixed answers.
type fakeFreq struct {
	entry uint64
	block uint64
}

func (f fakeFreq) EntryFreq() uint64 { return f.entry }

func (f fakeFreq) BlockFreq(cfgmst.Block) uint64 { return f.block }
