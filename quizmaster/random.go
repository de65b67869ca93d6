package quizmaster

import (
	"context"

	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/normalize"
	"github.com/vinom-labs/repmaze/solver"
)

// RandomOptions parameterizes the random sampling search.
type RandomOptions struct {
	NTerm      int
	KMin, KMax int
	LengthCap  int
	Seed       uint64
	SolverOpts solver.Options
	Logger     Logger
}

// Random repeatedly samples a random k-subset of the candidate ports (k
// uniform in [KMin, KMax]) via a partial Fisher-Yates shuffle, prunes on
// abstract reachability only, and solves the rest, until ctx is cancelled.
// On cancellation it returns the best found so far; that is expected
// termination, not an error.
func Random(ctx context.Context, opts RandomOptions) Best {
	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	m := maze.New(opts.NTerm)
	candidates := normalize.CandidatePorts(m)
	c := len(candidates)

	kMax := opts.KMax
	if kMax > c {
		kMax = c
	}
	kMin := opts.KMin
	if kMin > kMax {
		kMin = kMax
	}

	rng := maze.NewRand(opts.Seed)
	idx := make([]int, c)
	for i := range idx {
		idx[i] = i
	}

	var best Best
	evaluated, solved, prunedAbstract := 0, 0, 0

	for {
		select {
		case <-ctx.Done():
			return finalizeBest(best)
		default:
		}

		k := kMin
		if kMax > kMin {
			k = kMin + rng.Intn(kMax-kMin+1)
		}
		partialFisherYates(idx, k, rng)

		m.Clear()
		for i := 0; i < k; i++ {
			m.Set(candidates[idx[i]], true)
		}
		evaluated++

		if normalize.AbstractReachable(m) {
			length := solver.IDDFSLength(m, opts.SolverOpts)
			if length != solver.NoPath {
				solved++
				if length > best.Length {
					best = Best{Maze: m.Clone(), Length: length}
					if opts.LengthCap > 0 && length >= opts.LengthCap {
						return finalizeBest(best)
					}
				}
			}
		} else {
			prunedAbstract++
		}

		if evaluated%reportInterval == 0 {
			logger.Progress(evaluated, solved, prunedAbstract, 0, best)
		}
	}
}

// partialFisherYates shuffles idx just enough to place a uniformly random
// k-subset (without replacement) into idx[:k].
func partialFisherYates(idx []int, k int, rng *maze.Rand) {
	n := len(idx)
	if k > n {
		k = n
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
}
