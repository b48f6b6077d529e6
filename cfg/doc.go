// Package cfg is a small in-memory control-flow graph with optional profile
// data. Function and Block satisfy cfgmst.Graph and cfgmst.Block; Profile
// satisfies cfgmst.BlockFrequencyInfo and cfgmst.BranchProbabilityInfo.
//
// Graphs and profiles can be built programmatically or decoded from YAML
// (see LoadFunction and LoadProfile):
//
//	name: loop
//	blocks:
//	  - name: entry
//	    succs: [body]
//	  - name: body
//	    succs: [body, exit]
//	  - name: exit
//
// A Function is not safe for concurrent mutation.
package cfg
