package normalize

import "github.com/vinom-labs/repmaze/maze"

// AbstractReachable builds the 2N-node terminal-class graph (node i is the
// E/W class of index i, node N+i the N/S class), adds a directed edge
// between classes for every active port, and reports whether the goal class
// (1) is reachable from the start class (0) via a bitmask BFS.
//
// This loses all block-position information, so it is a necessary but not
// sufficient condition for a state-path to exist: use it only to reject a
// maze, never to confirm one is solvable. The 2N ≤ 64 bitmask bounds
// supported N to 32.
func AbstractReachable(m *maze.PortStore) bool {
	n := m.NTerm
	if n < 2 {
		return false
	}

	nodes := 2 * n
	adj := make([]uint64, nodes)

	classOf := func(d maze.Dir, idx int) int {
		if d == maze.DirE || d == maze.DirW {
			return idx
		}
		return n + idx
	}

	n4 := 4 * n
	for idx := 0; idx < m.NormalCount(); idx++ {
		if !m.Get(idx) {
			continue
		}
		src, dst := idx/n4, idx%n4
		sd, si := maze.Dir(src/n), src%n
		dd, di := maze.Dir(dst/n), dst%n
		a, b := classOf(sd, si), classOf(dd, di)
		adj[a] |= 1 << uint(b)
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si == di {
				continue
			}
			if m.NXPort(si, di) {
				adj[si] |= 1 << uint(di)
			}
			if m.NYPort(si, di) {
				adj[n+si] |= 1 << uint(n+di)
			}
		}
	}

	const startClass, goalClass = 0, 1
	visited := uint64(1) << startClass
	frontier := visited
	for frontier != 0 {
		var next uint64
		for i := 0; i < nodes; i++ {
			if frontier&(1<<uint(i)) != 0 {
				next |= adj[i]
			}
		}
		next &^= visited
		if next == 0 {
			break
		}
		visited |= next
		frontier = next
	}
	return visited&(1<<goalClass) != 0
}
