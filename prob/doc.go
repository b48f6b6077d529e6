// Package prob models execution-likelihood data attached to a control-flow
// graph: fixed-point branch probabilities and relative block frequencies.
//
// BranchProbability stores a numerator over the fixed denominator 1<<31, so
// probabilities compare and scale exactly and deterministically. Scale(v)
// computes floor(v*n / 2^31) with a 128-bit intermediate and never overflows.
package prob
