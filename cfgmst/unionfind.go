package cfgmst

import (
	"tlog.app/go/errors"
)

// node returns the index of n, registering it on first sight.
func (m *MST) node(n Node) uint32 {
	if idx, ok := m.index[n]; ok {
		return idx
	}
	idx := uint32(len(m.infos))
	m.index[n] = idx
	m.nodes = append(m.nodes, n)
	m.infos = append(m.infos, BBInfo{Index: idx, Group: idx})

	return idx
}

// findRoot returns the root of idx and points every record on the path
// directly at it.
func (m *MST) findRoot(idx uint32) uint32 {
	// Walk up until the root (Group == self).
	root := idx
	for m.infos[root].Group != root {
		root = m.infos[root].Group
	}
	// Second pass: compress the path.
	for idx != root {
		next := m.infos[idx].Group
		m.infos[idx].Group = root
		idx = next
	}

	return root
}

// unionIdx merges the sets of a and b by rank.
// Returns false if they already share a set.
func (m *MST) unionIdx(a, b uint32) bool {
	ra, rb := m.findRoot(a), m.findRoot(b)
	if ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if m.infos[ra].Rank < m.infos[rb].Rank {
		m.infos[ra].Group = rb
	} else {
		m.infos[rb].Group = ra
		// If ranks are equal, increment the resulting root's rank by 1.
		if m.infos[ra].Rank == m.infos[rb].Rank {
			m.infos[ra].Rank++
		}
	}

	return true
}

func (m *MST) mustIndex(n Node) uint32 {
	idx, ok := m.index[n]
	if !ok {
		panic(errors.Wrap(ErrUnknownNode, "node %v", n))
	}

	return idx
}

// Find returns the Index of the root of n's set.
// Panics with ErrUnknownNode if n was never added.
func (m *MST) Find(n Node) uint32 {
	return m.findRoot(m.mustIndex(n))
}

// Union merges the sets of a and b and reports whether they were disjoint.
// Both nodes must already be known.
func (m *MST) Union(a, b Node) bool {
	return m.unionIdx(m.mustIndex(a), m.mustIndex(b))
}

// resetGroups makes every node a singleton set again.
func (m *MST) resetGroups() {
	for i := range m.infos {
		m.infos[i].Group = uint32(i)
		m.infos[i].Rank = 0
	}
}
