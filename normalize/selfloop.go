// Package normalize implements the pruning and canonicalization pipeline the
// quizmaster runs before spending a solve on a candidate maze: self-loop
// elimination, abstract terminal reachability, and canonical-form
// normalization.
package normalize

import "github.com/vinom-labs/repmaze/maze"

// IsSelfLoop reports whether flat port index idx names a normal-block port
// whose source and destination terminal are identical. nx/ny indices are
// never self-loops: the dense off-diagonal packing already excludes them.
func IsSelfLoop(nterm, idx int) bool {
	n4 := 4 * nterm
	normalCount := n4 * n4
	if idx < 0 || idx >= normalCount {
		return false
	}
	return idx/n4 == idx%n4
}

// CandidatePorts returns every flat port index of m that is not a
// normal-block self-loop, in ascending flat-index order.
func CandidatePorts(m *maze.PortStore) []int {
	n := m.NTerm
	out := make([]int, 0, m.TotalPorts())
	normalCount := m.NormalCount()
	for idx := 0; idx < normalCount; idx++ {
		if IsSelfLoop(n, idx) {
			continue
		}
		out = append(out, idx)
	}
	for idx := normalCount; idx < m.TotalPorts(); idx++ {
		out = append(out, idx)
	}
	return out
}
