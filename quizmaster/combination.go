package quizmaster

import (
	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/normalize"
	"github.com/vinom-labs/repmaze/solver"
)

// ExhaustiveOptions parameterizes the exhaustive combination search.
type ExhaustiveOptions struct {
	NTerm      int
	KMin, KMax int
	// LengthCap, if > 0, stops the search as soon as a best is found whose
	// length is at least this value.
	LengthCap  int
	SolverOpts solver.Options
	Logger     Logger
}

// Exhaustive enumerates every k-subset of the candidate ports, for k in
// [KMin, min(KMax, C)], in lexicographic order, skipping subsets that are
// not their own normalization or that fail abstract reachability, and
// solving the rest to find the maze with the longest shortest path.
func Exhaustive(opts ExhaustiveOptions) Best {
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

	var best Best
	evaluated, solved, prunedAbstract, prunedNorm := 0, 0, 0, 0

	evalCombo := func(combo []int) (terminate bool) {
		m.Clear()
		for _, ci := range combo {
			m.Set(candidates[ci], true)
		}
		evaluated++

		switch {
		case !normalize.IsNormalized(m):
			prunedNorm++
		case !normalize.AbstractReachable(m):
			prunedAbstract++
		default:
			length := solver.IDDFSLength(m, opts.SolverOpts)
			if length != solver.NoPath {
				solved++
				if length > best.Length {
					best = Best{Maze: m.Clone(), Length: length}
					if opts.LengthCap > 0 && length >= opts.LengthCap {
						terminate = true
					}
				}
			}
		}

		if evaluated%reportInterval == 0 {
			logger.Progress(evaluated, solved, prunedAbstract, prunedNorm, best)
		}
		return terminate
	}

	for k := opts.KMin; k <= kMax; k++ {
		if k == 0 {
			if evalCombo(nil) {
				return finalizeBest(best)
			}
			continue
		}
		combo := make([]int, k)
		for i := range combo {
			combo[i] = i
		}
		for {
			if evalCombo(combo) {
				return finalizeBest(best)
			}
			if !nextCombination(combo, c) {
				break
			}
		}
	}
	return finalizeBest(best)
}

// nextCombination advances combo (a strictly increasing index sequence into
// [0, cMax)) to the next combination in lexicographic order using the
// standard rightmost-bumpable-position algorithm. Returns false once combo
// held the last combination.
func nextCombination(combo []int, cMax int) bool {
	k := len(combo)
	i := k - 1
	for i >= 0 && combo[i] == cMax-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[i] + (j - i)
	}
	return true
}
