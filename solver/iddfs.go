package solver

import "github.com/vinom-labs/repmaze/maze"

// IDDFS runs iterative-deepening depth-first search from maze.Start,
// returning the shortest path to maze.Goal (or NoPath if none is found
// within the depth ceiling).
func IDDFS(m *maze.PortStore, opts Options) (Path, int) {
	return iddfsRun(m, 0, opts.depthCeiling(), true)
}

// IDDFSLength is the length-only form of IDDFS.
func IDDFSLength(m *maze.PortStore, opts Options) int {
	_, l := iddfsRun(m, 0, opts.depthCeiling(), false)
	return l
}

// SolveFrom runs IDDFS but begins the outer depth-limit loop at l0 instead
// of 0. Removing an active port from a maze whose shortest path was l0
// cannot decrease the shortest path, so callers who already know a lower
// bound (top-down port deletion) can skip the provably-empty iterations
// below it.
func SolveFrom(m *maze.PortStore, l0 int, opts Options) (Path, int) {
	if l0 < 0 {
		l0 = 0
	}
	return iddfsRun(m, l0, opts.depthCeiling(), true)
}

// SolveFromLength is the length-only form of SolveFrom.
func SolveFromLength(m *maze.PortStore, l0 int, opts Options) int {
	if l0 < 0 {
		l0 = 0
	}
	_, l := iddfsRun(m, l0, opts.depthCeiling(), false)
	return l
}

func iddfsRun(m *maze.PortStore, l0, ceiling int, withPath bool) (Path, int) {
	if m.NTerm < 2 {
		return Path{}, NoPath
	}

	prevCount := -1
	for limit := l0; limit <= ceiling; limit++ {
		table := map[maze.State]int{maze.Start: 0}
		var stack []maze.State
		var stackPtr *[]maze.State
		if withPath {
			stack = append(stack, maze.Start)
			stackPtr = &stack
		}

		if dfsLimited(m, table, stackPtr, maze.Start, 0, limit) {
			if !withPath {
				return Path{}, limit
			}
			out := make([]maze.State, len(stack))
			copy(out, stack)
			return Path{States: out}, limit
		}

		if len(table) <= prevCount {
			return Path{}, NoPath
		}
		prevCount = len(table)
	}
	return Path{}, NoPath
}

// dfsLimited runs one depth-limited DFS pass. table maps every state
// reached so far in this iteration to the shallowest depth it was reached
// at; a successor is only descended into when it is new or was previously
// only reachable more deeply. When stack is non-nil, the states on the
// current recursion path are tracked there so a hit can be reported by
// simply reading it back.
func dfsLimited(m *maze.PortStore, table map[maze.State]int, stack *[]maze.State, cur maze.State, depth, limit int) bool {
	if cur == maze.Goal {
		return true
	}
	if depth >= limit {
		return false
	}

	nbrs := maze.Neighbors(m, cur, nil)
	next := depth + 1
	for _, n := range nbrs {
		if rec, ok := table[n]; ok && rec <= next {
			continue
		}
		table[n] = next

		if stack != nil {
			*stack = append(*stack, n)
		}
		if dfsLimited(m, table, stack, n, next, limit) {
			return true
		}
		if stack != nil {
			*stack = (*stack)[:len(*stack)-1]
		}
	}
	return false
}
