// Package quizmaster searches the space of repeated mazes for one whose
// shortest Start->Goal path is as long as possible, using three
// complementary strategies that all share the same candidate-port,
// normalization and abstract-reachability pruning pipeline: exhaustive
// combination enumeration, seeded random sampling, and top-down port
// deletion.
package quizmaster

import (
	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/solver"
)

// Best is the outcome of a search: the longest-shortest-path maze found, its
// length, and the full path. The caller owns Maze and Path.
type Best struct {
	Maze   *maze.PortStore
	Length int
	Path   []maze.State
}

// Logger receives progress reports during a search. Progress is called
// roughly every 10,000 evaluations, never on the hot path of a single
// evaluation.
type Logger interface {
	Progress(evaluated, solved, prunedAbstract, prunedNorm int, best Best)
}

// NoopLogger discards all progress reports.
type NoopLogger struct{}

func (NoopLogger) Progress(int, int, int, int, Best) {}

func finalizeBest(best Best) Best {
	if best.Maze == nil {
		return best
	}
	p, _ := solver.BFS(best.Maze)
	best.Path = p.States
	return best
}

const reportInterval = 10000
