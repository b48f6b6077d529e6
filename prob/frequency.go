package prob

import (
	"strconv"

	"github.com/katalvlaran/pbqpcfg/satmath"
)

// BlockFrequency is the relative execution frequency of a basic block.
// Only ratios between frequencies of one function are meaningful.
type BlockFrequency uint64

// Add returns f+g, saturating at the maximum frequency.
func (f BlockFrequency) Add(g BlockFrequency) BlockFrequency {
	sum, _ := satmath.SaturatingAdd(uint64(f), uint64(g))

	return BlockFrequency(sum)
}

// Scale returns the share of f that flows along an edge of probability p.
func (f BlockFrequency) Scale(p BranchProbability) BlockFrequency {
	return BlockFrequency(p.Scale(uint64(f)))
}

func (f BlockFrequency) String() string {
	return strconv.FormatUint(uint64(f), 10)
}
