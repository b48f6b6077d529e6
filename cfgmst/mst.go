// SPDX-License-Identifier: MIT

package cfgmst

import (
	"sort"

	"tlog.app/go/errors"

	"github.com/katalvlaran/pbqpcfg/satmath"
)

// MST holds the weighted edge list of one function and the union-find state
// of its spanning forest.
type MST struct {
	g    Graph
	opts Options

	// edges is append-only; discovery order until SortEdgesByWeight runs.
	edges []*Edge

	index map[Node]uint32 // node → position in infos
	nodes []Node          // nodes in first-seen order
	infos []BBInfo        // union-find records, infos[i].Index == i
}

// New builds the edge list of g, sorts it and computes the maximum spanning
// forest.
//
// Panics with ErrNilGraph or ErrNilEntry.
//
// Complexity: O(E log E + E·α(V)).
func New(g Graph, opts ...Option) *MST {
	m := newBuilder(g, opts...)
	m.BuildEdges()
	m.SortEdgesByWeight()
	m.ComputeMaximumSpanningTree()

	return m
}

// newBuilder validates g and applies options without building anything.
func newBuilder(g Graph, opts ...Option) *MST {
	if g == nil {
		panic(ErrNilGraph)
	}
	if g.Entry() == nil {
		panic(errors.Wrap(ErrNilEntry, "function %v", g.Name()))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &MST{
		g:     g,
		opts:  o,
		index: make(map[Node]uint32),
	}
}

// AddEdge appends an edge of weight w, registering unseen endpoints
// (source first) in the node index.
func (m *MST) AddEdge(src, dst Node, w uint64) *Edge {
	m.node(src)
	m.node(dst)

	e := &Edge{Src: src, Dst: dst, Weight: w}
	m.edges = append(m.edges, e)

	return e
}

// blockWeight is the frequency of b, or the default weight without BFI.
func (m *MST) blockWeight(b Block) uint64 {
	if m.opts.BFI == nil {
		return m.opts.Default
	}

	return m.opts.BFI.BlockFreq(b)
}

// BuildEdges discovers every edge of the function and assigns its weight.
// Edges with large weight go into the tree first, so they are less likely
// to be instrumented.
func (m *MST) BuildEdges() {
	tr := m.opts.Span
	tr.Printw("build edges", "func", m.g.Name())

	entry := m.g.Entry()
	entryWeight := m.opts.Default
	if m.opts.BFI != nil {
		entryWeight = m.opts.BFI.EntryFreq()
	}
	m.AddEdge(EntryNode, BlockNode(entry), entryWeight)

	// Single block function: entry → exit carries the entry weight.
	if len(entry.Successors()) == 0 {
		m.AddEdge(BlockNode(entry), ExitNode, entryWeight)
		return
	}

	for _, b := range m.g.Blocks() {
		bbWeight := m.blockWeight(b)
		succs := b.Successors()

		if len(succs) == 0 {
			m.AddEdge(BlockNode(b), ExitNode, bbWeight)
			tr.Printw("edge", "from", b.Name(), "to", ExitNode.String(), "w", bbWeight)
			continue
		}

		for _, s := range succs {
			critical := len(succs) > 1 && s.NumPredecessors() > 1

			scale := bbWeight
			if critical {
				scale, _ = satmath.SaturatingMultiply(scale, m.opts.Multiplier)
			}

			weight := scale
			if m.opts.BPI != nil {
				weight = m.opts.BPI.EdgeProbability(b, s).Scale(scale)
			}

			m.AddEdge(BlockNode(b), BlockNode(s), weight).Critical = critical
			tr.Printw("edge", "from", b.Name(), "to", s.Name(), "w", weight, "critical", critical)
		}
	}
}

// SortEdgesByWeight orders edges by descending weight. The sort is stable:
// equal weights keep discovery order, which keeps the tree reproducible.
// Complexity: O(E log E).
func (m *MST) SortEdgesByWeight() {
	sort.SliceStable(m.edges, func(i, j int) bool {
		return m.edges[i].Weight > m.edges[j].Weight
	})
}

// ComputeMaximumSpanningTree marks InMST on every edge that joins two
// different sets, visiting edges in their current order.
//
// Critical edges into landing pads are handled first: such edges cannot be
// split for instrumentation, so they must end up in the tree whenever possible.
func (m *MST) ComputeMaximumSpanningTree() {
	for _, e := range m.edges {
		if e.Removed || !e.Critical {
			continue
		}
		if dst := e.Dst.Block(); dst != nil && dst.IsLandingPad() {
			if m.unionIdx(m.index[e.Src], m.index[e.Dst]) {
				e.InMST = true
			}
		}
	}

	for _, e := range m.edges {
		if e.Removed {
			continue
		}
		if m.unionIdx(m.index[e.Src], m.index[e.Dst]) {
			e.InMST = true
		}
	}
}

// RemoveEdge marks e removed. The tree is not updated until Recompute.
func (m *MST) RemoveEdge(e *Edge) {
	e.Removed = true
}

// Recompute clears tree membership and union-find state, re-sorts the edge
// list and recomputes the spanning forest. Use it after RemoveEdge/AddEdge.
func (m *MST) Recompute() {
	for _, e := range m.edges {
		e.InMST = false
	}
	m.resetGroups()
	m.SortEdgesByWeight()
	m.ComputeMaximumSpanningTree()
}

// Edges returns all edges, including removed ones. The slice is owned by m.
func (m *MST) Edges() []*Edge { return m.edges }

// InstrumentedEdges returns the non-removed edges outside the tree, in edge order.
func (m *MST) InstrumentedEdges() []*Edge {
	var out []*Edge
	for _, e := range m.edges {
		if e.NeedsCounter() {
			out = append(out, e)
		}
	}

	return out
}

// TreeEdges returns the non-removed edges inside the tree, in edge order.
func (m *MST) TreeEdges() []*Edge {
	var out []*Edge
	for _, e := range m.edges {
		if !e.Removed && e.InMST {
			out = append(out, e)
		}
	}

	return out
}

// NumNodes returns the number of nodes seen, synthetic ones included.
func (m *MST) NumNodes() int { return len(m.infos) }

// Nodes returns the nodes in index order.
func (m *MST) Nodes() []Node { return m.nodes }

// Info returns a copy of the union-find record of n.
func (m *MST) Info(n Node) (BBInfo, bool) {
	idx, ok := m.index[n]
	if !ok {
		return BBInfo{}, false
	}

	return m.infos[idx], true
}
