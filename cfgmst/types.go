// SPDX-License-Identifier: MIT

package cfgmst

import (
	"fmt"

	"tlog.app/go/errors"

	"github.com/katalvlaran/pbqpcfg/prob"
)

var (
	// ErrNilGraph is used when New is given no graph.
	ErrNilGraph = errors.New("cfgmst: graph is nil")

	// ErrNilEntry is used when the graph reports no entry block.
	ErrNilEntry = errors.New("cfgmst: graph has no entry block")

	// ErrUnknownNode is used when a union-find query names a node never added.
	ErrUnknownNode = errors.New("cfgmst: unknown node")
)

// Block is a basic block as seen by the builder.
// Implementations must be comparable (pointer types are).
type Block interface {
	// Name is used for dumps and logs only.
	Name() string

	// Successors returns the terminator's successors in order.
	// A block branching twice to the same target lists it twice.
	Successors() []Block

	// NumPredecessors returns the number of incoming edges.
	NumPredecessors() int

	// IsLandingPad reports whether the block is entered only by unwinding.
	IsLandingPad() bool
}

// Graph is a function's control-flow graph.
type Graph interface {
	Name() string

	// Entry returns the first block executed.
	Entry() Block

	// Blocks returns all blocks in function order.
	Blocks() []Block
}

// BranchProbabilityInfo answers the probability of an edge being taken.
type BranchProbabilityInfo interface {
	EdgeProbability(src, dst Block) prob.BranchProbability
}

// BlockFrequencyInfo answers relative block execution frequencies.
type BlockFrequencyInfo interface {
	EntryFreq() uint64
	BlockFreq(b Block) uint64
}

type nodeKind uint8

const (
	kindBlock nodeKind = iota
	kindEntry
	kindExit
)

// Node is a union-find handle: a real block or one of the two synthetic
// nodes, EntryNode and ExitNode.
type Node struct {
	block Block
	kind  nodeKind
}

var (
	// EntryNode is the synthetic source of the edge into the entry block.
	EntryNode = Node{kind: kindEntry}

	// ExitNode is the synthetic target of edges out of returning blocks.
	ExitNode = Node{kind: kindExit}
)

// BlockNode returns the node of a real block.
func BlockNode(b Block) Node { return Node{block: b} }

// Block returns the underlying block, or nil for a synthetic node.
func (n Node) Block() Block { return n.block }

// IsEntry reports whether n is EntryNode.
func (n Node) IsEntry() bool { return n.kind == kindEntry }

// IsExit reports whether n is ExitNode.
func (n Node) IsExit() bool { return n.kind == kindExit }

func (n Node) String() string {
	switch n.kind {
	case kindEntry:
		return "FakeEntry"
	case kindExit:
		return "FakeExit"
	}
	if n.block == nil {
		return "<nil>"
	}

	return n.block.Name()
}

// Edge is one weighted CFG edge.
// Only InMST and Removed change after the edge is created.
type Edge struct {
	Src, Dst Node
	Weight   uint64

	// Critical is set when Src has several successors and Dst several predecessors.
	Critical bool

	// Removed edges stay in the edge list for dumps but are otherwise ignored.
	Removed bool

	// InMST is set when the edge belongs to the spanning tree; its count is inferred.
	InMST bool
}

// FromEntry reports whether e is the synthetic entry edge.
func (e *Edge) FromEntry() bool { return e.Src.IsEntry() }

// ToExit reports whether e leads to the synthetic exit.
func (e *Edge) ToExit() bool { return e.Dst.IsExit() }

// NeedsCounter reports whether a consumer must instrument e.
func (e *Edge) NeedsCounter() bool { return !e.Removed && !e.InMST }

// InfoString returns the flag column of a dump line:
// '-' removed, '*' instrumented (not in tree), 'C' critical.
func (e *Edge) InfoString() string {
	removed, instr, crit := " ", " ", " "
	if e.Removed {
		removed = "-"
	}
	if !e.InMST {
		instr = "*"
	}
	if e.Critical {
		crit = "C"
	}

	return fmt.Sprintf("%s%s%s  W=%d", removed, instr, crit, e.Weight)
}

// BBInfo is the union-find record of one node.
type BBInfo struct {
	// Index is the node's first-seen position.
	Index uint32

	// Group is the index of the parent record; a root points to itself.
	Group uint32

	// Rank bounds the height of the tree rooted here.
	Rank uint32
}

func (i BBInfo) String() string {
	return fmt.Sprintf("Index=%d", i.Index)
}
