// SPDX-License-Identifier: MIT

package cfg

import (
	"tlog.app/go/errors"

	"github.com/katalvlaran/pbqpcfg/cfgmst"
)

var (
	// ErrEmptyBlockName is returned when a block is added without a name.
	ErrEmptyBlockName = errors.New("cfg: block name is empty")

	// ErrDuplicateBlock is returned when a block name is reused.
	ErrDuplicateBlock = errors.New("cfg: duplicate block")

	// ErrUnknownBlock is returned when an edge or profile names a missing block.
	ErrUnknownBlock = errors.New("cfg: unknown block")

	// ErrEmptyFunction is returned when a function has no blocks.
	ErrEmptyFunction = errors.New("cfg: function has no blocks")

	// ErrBadProfile is returned for inconsistent profile data.
	ErrBadProfile = errors.New("cfg: bad profile")
)

// Block is a basic block. Its successor list is ordered and may repeat a target.
type Block struct {
	name       string
	succs      []*Block
	preds      int
	landingPad bool
}

// Name returns the block name.
func (b *Block) Name() string { return b.name }

// Successors implements cfgmst.Block.
func (b *Block) Successors() []cfgmst.Block {
	out := make([]cfgmst.Block, len(b.succs))
	for i, s := range b.succs {
		out[i] = s
	}

	return out
}

// Succs returns the successor blocks. The slice is owned by b.
func (b *Block) Succs() []*Block { return b.succs }

// NumPredecessors returns the number of incoming edges.
func (b *Block) NumPredecessors() int { return b.preds }

// IsLandingPad reports whether the block is an exception landing pad.
func (b *Block) IsLandingPad() bool { return b.landingPad }

func (b *Block) String() string { return b.name }

// Function is an ordered list of blocks; the first block is the entry.
type Function struct {
	name   string
	blocks []*Block
	byName map[string]*Block
}

// NewFunction returns an empty function.
func NewFunction(name string) *Function {
	return &Function{
		name:   name,
		byName: make(map[string]*Block),
	}
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// AddBlock appends a new block. The first block added becomes the entry.
func (f *Function) AddBlock(name string) (*Block, error) {
	if name == "" {
		return nil, ErrEmptyBlockName
	}
	if _, ok := f.byName[name]; ok {
		return nil, errors.Wrap(ErrDuplicateBlock, "%q", name)
	}

	b := &Block{name: name}
	f.blocks = append(f.blocks, b)
	f.byName[name] = b

	return b, nil
}

// Block returns the block with the given name, or nil.
func (f *Function) Block(name string) *Block { return f.byName[name] }

// AddEdge appends to as the next successor of from.
func (f *Function) AddEdge(from, to string) error {
	src, ok := f.byName[from]
	if !ok {
		return errors.Wrap(ErrUnknownBlock, "edge source %q", from)
	}
	dst, ok := f.byName[to]
	if !ok {
		return errors.Wrap(ErrUnknownBlock, "edge target %q", to)
	}

	src.succs = append(src.succs, dst)
	dst.preds++

	return nil
}

// SetLandingPad marks the named block as a landing pad.
func (f *Function) SetLandingPad(name string) error {
	b, ok := f.byName[name]
	if !ok {
		return errors.Wrap(ErrUnknownBlock, "landing pad %q", name)
	}
	b.landingPad = true

	return nil
}

// Entry implements cfgmst.Graph. It returns nil for an empty function.
func (f *Function) Entry() cfgmst.Block {
	if len(f.blocks) == 0 {
		return nil
	}

	return f.blocks[0]
}

// Blocks implements cfgmst.Graph.
func (f *Function) Blocks() []cfgmst.Block {
	out := make([]cfgmst.Block, len(f.blocks))
	for i, b := range f.blocks {
		out[i] = b
	}

	return out
}

// BlockList returns the blocks in function order. The slice is owned by f.
func (f *Function) BlockList() []*Block { return f.blocks }

// CriticalEdge is a (From, To) pair where From has several successors and
// To several predecessors.
type CriticalEdge struct {
	From, To *Block
}

// CriticalEdges lists critical edges in function and successor order.
// A repeated successor yields one entry per edge.
// Complexity: O(V + E).
func (f *Function) CriticalEdges() []CriticalEdge {
	var out []CriticalEdge
	for _, b := range f.blocks {
		if len(b.succs) < 2 {
			continue
		}
		for _, s := range b.succs {
			if s.preds > 1 {
				out = append(out, CriticalEdge{From: b, To: s})
			}
		}
	}

	return out
}
