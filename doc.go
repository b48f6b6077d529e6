// Package pbqpcfg collects two compiler back-end building blocks:
//
//	pbqp/     cost vectors and matrices for PBQP register allocation,
//	          with metadata wrappers and a hash-consing pool
//	cfgmst/   maximum spanning tree over a control-flow graph, used to
//	          place profile counters on the edges outside the tree
//	prob/     fixed-point branch probabilities and block frequencies
//	satmath/  saturating uint64 arithmetic
//	cfg/      a small in-memory CFG and profile, loadable from YAML
//
// The cfgmst command (cmd/cfgmst) drives both halves from YAML files.
//
// Quick ASCII example:
//
//	  entry
//	  /   \
//	 b1   b2
//	  \   /
//	   b3
//
// Every edge weighs 2. The tree takes entry→b1, entry→b2 and b1→b3 in
// discovery order, so only b2→b3 gets a counter.
package pbqpcfg
