package solver

import "github.com/vinom-labs/repmaze/maze"

// BFS runs a classic breadth-first search over the canonical state graph
// of m from maze.Start, returning the shortest path (and its length) to
// maze.Goal. Returns an empty Path and NoPath if Goal is unreachable, and
// always does so if m.NTerm < 2.
func BFS(m *maze.PortStore) (Path, int) {
	length := BFSLength(m)
	if length == NoPath {
		return Path{}, NoPath
	}
	states, ok := bfsRun(m, true)
	if !ok {
		return Path{}, NoPath
	}
	return Path{States: states}, length
}

// BFSLength is the length-only form of BFS, avoiding path reconstruction
// on hot search paths.
func BFSLength(m *maze.PortStore) int {
	if m.NTerm < 2 {
		return NoPath
	}
	states, ok := bfsRun(m, false)
	if !ok {
		return NoPath
	}
	return len(states) - 1
}

// bfsRun performs the search once; withPath controls whether the full
// state sequence is reconstructed or only its existence/length is proven.
func bfsRun(m *maze.PortStore, withPath bool) ([]maze.State, bool) {
	v := newVisited()
	queue := make([]int, 0, 4096)

	startIdx := v.insert(maze.Start, -1)
	queue = append(queue, startIdx)

	nbrBuf := make([]maze.State, 0, maze.MaxFanOut(m.NTerm))
	goalIdx := -1

	for head := 0; head < len(queue) && goalIdx < 0; head++ {
		curIdx := queue[head]
		cur := v.entries[curIdx].state

		nbrBuf = nbrBuf[:0]
		nbrBuf = maze.Neighbors(m, cur, nbrBuf)
		for _, n := range nbrBuf {
			if v.find(n) >= 0 {
				continue
			}
			ni := v.insert(n, curIdx)
			queue = append(queue, ni)
			if n == maze.Goal {
				goalIdx = ni
				break
			}
		}
	}

	if goalIdx < 0 {
		return nil, false
	}
	if !withPath {
		// Reconstruct only the length by walking parent links.
		n := 0
		for i := goalIdx; i >= 0; i = v.entries[i].parent {
			n++
		}
		out := make([]maze.State, n)
		return out, true
	}

	n := 0
	for i := goalIdx; i >= 0; i = v.entries[i].parent {
		n++
	}
	out := make([]maze.State, n)
	j := n - 1
	for i := goalIdx; i >= 0; i = v.entries[i].parent {
		out[j] = v.entries[i].state
		j--
	}
	return out, true
}
