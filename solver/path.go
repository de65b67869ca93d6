// Package solver runs shortest-path queries over the canonical state graph
// of a repeated maze: a breadth-first search, and an iterative-deepening
// depth-first search with a per-iteration transposition table (plus a
// warm-started variant of the latter for top-down search).
package solver

import (
	"strings"

	"github.com/vinom-labs/repmaze/maze"
)

// Path is a sequence of canonical states from Start to Goal, inclusive.
// Its length in edges is len(States)-1.
type Path struct {
	States []maze.State
}

// Len returns the number of edges in the path.
func (p Path) Len() int {
	if len(p.States) == 0 {
		return 0
	}
	return len(p.States) - 1
}

// String renders the arrow-separated textual path format:
// "(0,1,E0) -> (1,1,N0) -> (0,1,E1)".
func (p Path) String() string {
	parts := make([]string, len(p.States))
	for i, s := range p.States {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}

// NoPath is the sentinel length returned when Start cannot reach Goal.
const NoPath = -1

// Options tunes solver behavior. The zero value selects the package
// defaults.
type Options struct {
	// DepthCeiling bounds the outer IDDFS loop (default 200 per §9's
	// documented design limit, not an algorithmic conclusion).
	DepthCeiling int
}

const defaultDepthCeiling = 200

func (o Options) depthCeiling() int {
	if o.DepthCeiling > 0 {
		return o.DepthCeiling
	}
	return defaultDepthCeiling
}
