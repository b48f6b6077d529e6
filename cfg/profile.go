package cfg

import (
	"github.com/katalvlaran/pbqpcfg/cfgmst"
	"github.com/katalvlaran/pbqpcfg/prob"
)

type edgeKey struct {
	from, to *Block
}

// Profile holds block frequencies and edge probabilities of one function.
// Blocks without a frequency have frequency 0; edges without an explicit
// probability split their source evenly among its successor edges.
type Profile struct {
	f     *Function
	freqs map[*Block]uint64
	probs map[edgeKey]prob.BranchProbability
}

// NewProfile returns an empty profile for f.
func NewProfile(f *Function) *Profile {
	return &Profile{
		f:     f,
		freqs: make(map[*Block]uint64),
		probs: make(map[edgeKey]prob.BranchProbability),
	}
}

// SetBlockFreq records the frequency of b.
func (p *Profile) SetBlockFreq(b *Block, freq uint64) {
	p.freqs[b] = freq
}

// SetEdgeProbability records the probability of reaching to from from.
// For a target listed several times, it is the total over those edges.
func (p *Profile) SetEdgeProbability(from, to *Block, bp prob.BranchProbability) {
	p.probs[edgeKey{from, to}] = bp
}

// EntryFreq implements cfgmst.BlockFrequencyInfo.
func (p *Profile) EntryFreq() uint64 {
	if len(p.f.blocks) == 0 {
		return 0
	}

	return p.freqs[p.f.blocks[0]]
}

// BlockFreq implements cfgmst.BlockFrequencyInfo.
func (p *Profile) BlockFreq(b cfgmst.Block) uint64 {
	blk, ok := b.(*Block)
	if !ok {
		return 0
	}

	return p.freqs[blk]
}

// EdgeProbability implements cfgmst.BranchProbabilityInfo.
func (p *Profile) EdgeProbability(src, dst cfgmst.Block) prob.BranchProbability {
	from, ok1 := src.(*Block)
	to, ok2 := dst.(*Block)
	if !ok1 || !ok2 || len(from.succs) == 0 {
		return prob.Zero()
	}
	if bp, ok := p.probs[edgeKey{from, to}]; ok {
		return bp
	}

	n := 0
	for _, s := range from.succs {
		if s == to {
			n++
		}
	}

	return prob.New(uint32(n), uint32(len(from.succs)))
}
