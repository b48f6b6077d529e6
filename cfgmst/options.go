package cfgmst

import (
	"tlog.app/go/tlog"
)

// DefaultWeight is the weight of every block and edge when no profile is
// available.
const DefaultWeight = 2

// DefaultCriticalEdgeMultiplier scales the weight of critical edges, which are
// costly to instrument because instrumenting them requires splitting.
const DefaultCriticalEdgeMultiplier = 1000

// Options configures the builder. Use DefaultOptions and Option functions.
//
// Fields:
//
//	BPI:        branch probabilities; nil means "weight = scale factor".
//	BFI:        block frequencies; nil means DefaultWeight for every block.
//	Span:       tlog span receiving one record per discovered edge; the zero span is silent.
//	Multiplier: critical edge weight multiplier.
//	Default:    block weight used without BFI.
type Options struct {
	BPI        BranchProbabilityInfo
	BFI        BlockFrequencyInfo
	Span       tlog.Span
	Multiplier uint64
	Default    uint64
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with no profile data, a silent span,
// DefaultCriticalEdgeMultiplier and DefaultWeight.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Multiplier: DefaultCriticalEdgeMultiplier,
		Default:    DefaultWeight,
	}
}

// WithBranchProbabilities sets the branch probability provider.
func WithBranchProbabilities(bpi BranchProbabilityInfo) Option {
	return func(o *Options) { o.BPI = bpi }
}

// WithBlockFrequencies sets the block frequency provider.
func WithBlockFrequencies(bfi BlockFrequencyInfo) Option {
	return func(o *Options) { o.BFI = bfi }
}

// WithSpan sends edge discovery records to tr.
func WithSpan(tr tlog.Span) Option {
	return func(o *Options) { o.Span = tr }
}

// WithCriticalEdgeMultiplier overrides the critical edge multiplier.
// Panics if m == 0: a zero multiplier would erase critical edges' weight.
func WithCriticalEdgeMultiplier(m uint64) Option {
	if m == 0 {
		panic("cfgmst: critical edge multiplier must be > 0")
	}

	return func(o *Options) { o.Multiplier = m }
}

// WithDefaultWeight overrides the profile-less block weight. Panics if w == 0.
func WithDefaultWeight(w uint64) Option {
	if w == 0 {
		panic("cfgmst: default weight must be > 0")
	}

	return func(o *Options) { o.Default = w }
}
