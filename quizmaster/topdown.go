package quizmaster

import (
	"context"

	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/normalize"
	"github.com/vinom-labs/repmaze/solver"
)

// PMax bounds the priority-stack index; lengths at or beyond it all share
// the top stack.
const PMax = 1000

// TopDownOptions parameterizes the top-down port-deletion search.
type TopDownOptions struct {
	NTerm      int
	LengthCap  int
	SolverOpts solver.Options
	Logger     Logger
}

// priorityStacks is an array of LIFO stacks of maze byte-keys, indexed by a
// coarse best-first priority (the shortest-path length that produced the
// child): popping the highest nonempty stack explores children of a
// long-path maze before children of a shorter one, without a full priority
// queue's bookkeeping.
type priorityStacks struct {
	stacks [PMax][][]byte
}

func (p *priorityStacks) push(level int, key []byte) {
	if level >= PMax {
		level = PMax - 1
	}
	if level < 0 {
		level = 0
	}
	p.stacks[level] = append(p.stacks[level], key)
}

func (p *priorityStacks) popHighest() (level int, key []byte, ok bool) {
	for i := PMax - 1; i >= 0; i-- {
		n := len(p.stacks[i])
		if n > 0 {
			key = p.stacks[i][n-1]
			p.stacks[i] = p.stacks[i][:n-1]
			return i, key, true
		}
	}
	return 0, nil, false
}

// TopDown starts from the fully-connected candidate maze and walks the
// lattice of mazes reachable by deleting one active port at a time. A port
// deletion can never shorten the shortest path, so this strategy climbs
// toward longer paths as it descends the lattice.
func TopDown(ctx context.Context, opts TopDownOptions) Best {
	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	m := maze.New(opts.NTerm)
	candidates := normalize.CandidatePorts(m)
	for _, idx := range candidates {
		m.Set(idx, true)
	}
	normalize.Normalize(m)

	seen := newSeenSet()
	stacks := &priorityStacks{}
	initKey := m.Bytes()
	seen.insert(initKey)
	stacks.push(1, initKey)

	var best Best
	evaluated, solved := 0, 0

	for {
		select {
		case <-ctx.Done():
			return finalizeBest(best)
		default:
		}

		level, key, ok := stacks.popHighest()
		if !ok {
			return finalizeBest(best)
		}

		m.LoadBytes(key)
		length := solver.SolveFromLength(m, level, opts.SolverOpts)
		evaluated++
		if length == solver.NoPath {
			if evaluated%reportInterval == 0 {
				logger.Progress(evaluated, solved, 0, 0, best)
			}
			continue
		}
		solved++

		if length > best.Length {
			best = Best{Maze: m.Clone(), Length: length}
			if opts.LengthCap > 0 && length >= opts.LengthCap {
				return finalizeBest(best)
			}
		}

		for _, idx := range candidates {
			if !m.Get(idx) {
				continue
			}
			child := m.Clone()
			child.Set(idx, false)
			normalize.Normalize(child)
			childKey := child.Bytes()

			if seen.contains(childKey) {
				continue
			}
			if !normalize.AbstractReachable(child) {
				continue
			}
			seen.insert(childKey)
			stacks.push(length, childKey)
		}

		if evaluated%reportInterval == 0 {
			logger.Progress(evaluated, solved, 0, 0, best)
		}
	}
}
