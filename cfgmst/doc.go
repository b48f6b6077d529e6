// Package cfgmst computes the spanning tree that decides where a function's
// control-flow edges need execution counters.
//
// What & Why
//
//   - Counting every edge of a CFG is wasteful: by flow conservation, the count
//     of any edge in a spanning tree can be derived from the counts of the
//     edges outside it. Only the non-tree edges need runtime counters.
//   - Edges that run often are the most expensive to instrument, so they are
//     put into the tree first: the tree is a MAXIMUM-weight spanning forest
//     (Kruskal over edges sorted by descending weight).
//
// Steps performed by New
//
//  1. BuildEdges: one synthetic edge EntryNode→entry, one edge per
//     successor of every block, and one synthetic edge block→ExitNode for
//     every block without successors. Weights come from block frequencies and
//     branch probabilities when available, otherwise from a constant default
//     (2). Critical edges are scaled by a multiplier (1000) with saturation.
//  2. SortEdgesByWeight: stable sort, heaviest first; ties keep discovery order.
//  3. ComputeMaximumSpanningTree: critical edges into landing pads are unioned
//     first, then every remaining edge in sorted order. An edge whose union
//     merges two sets is marked InMST.
//
// Union-find
//
//	Nodes (blocks plus the two synthetic nodes) get dense indices in first-seen
//	order. find uses full path compression; union is by rank. Amortized cost
//	is O(α(V)) per operation.
//
// Complexity: O(V + E) to build, O(E log E) to sort, O(E·α(V)) for the tree.
//
// A builder is single-threaded and holds no shared state: run one per
// function, on as many goroutines as needed.
package cfgmst
