package quizmaster

import (
	"context"
	"testing"
	"time"

	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/normalize"
)

// Scenario 6: a small exhaustive run must complete, find a best of length at
// least 1 (the direct nx port), and the final best must already be
// normalized.
func TestExhaustiveSmallCaseFindsDirectPort(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search over C(60,4) combinations is slow; run with -short=false")
	}
	best := Exhaustive(ExhaustiveOptions{NTerm: 2, KMin: 0, KMax: 4})
	if best.Length < 1 {
		t.Fatalf("expected best length >= 1, got %d", best.Length)
	}
	if !normalize.IsNormalized(best.Maze) {
		t.Fatalf("final best maze must equal its own normalization")
	}
	if len(best.Path) != best.Length+1 {
		t.Fatalf("path length %d does not match reported length %d", len(best.Path)-1, best.Length)
	}
}

func TestExhaustiveKZeroYieldsNoPathOnEmptyMaze(t *testing.T) {
	best := Exhaustive(ExhaustiveOptions{NTerm: 2, KMin: 0, KMax: 0})
	if best.Maze != nil {
		t.Fatalf("k=0 always evaluates the empty maze, which has no path: got a best")
	}
}

func TestNextCombinationEnumeratesAllSubsets(t *testing.T) {
	// C(4,2) = 6 combinations.
	combo := []int{0, 1}
	got := [][]int{append([]int(nil), combo...)}
	for nextCombination(combo, 4) {
		got = append(got, append([]int(nil), combo...))
	}
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %d combinations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Fatalf("combination %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRandomSearchRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	best := Random(ctx, RandomOptions{NTerm: 2, KMin: 1, KMax: 3, Seed: 7})
	// The search must return promptly after cancellation regardless of
	// whether it found anything; a non-negative length or a nil maze are
	// both valid outcomes for a very short budget.
	if best.Maze != nil && best.Length < 0 {
		t.Fatalf("a reported best must have a non-negative length, got %d", best.Length)
	}
}

func TestPartialFisherYatesProducesKDistinctIndices(t *testing.T) {
	idx := []int{0, 1, 2, 3, 4, 5}
	rng := maze.NewRand(11)
	partialFisherYates(idx, 3, rng)

	seen := map[int]bool{}
	for _, v := range idx[:3] {
		if seen[v] {
			t.Fatalf("duplicate index %d in shuffled prefix %v", v, idx[:3])
		}
		seen[v] = true
	}
}

func TestSeenSetDedupesAndGrows(t *testing.T) {
	s := newSeenSet()
	key := []byte("some-maze-key-bytes")
	if s.contains(key) {
		t.Fatalf("empty set must not contain anything")
	}
	s.insert(key)
	if !s.contains(key) {
		t.Fatalf("set must contain a key right after inserting it")
	}

	// Insert enough distinct keys to force at least one grow() call.
	for i := 0; i < 10000; i++ {
		k := append([]byte("key-"), byte(i), byte(i>>8))
		if !s.contains(k) {
			s.insert(k)
		}
	}
	if !s.contains(key) {
		t.Fatalf("original key lost after growth")
	}
}

func TestTopDownSmallRunTerminatesWithinBudget(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	best := TopDown(ctx, TopDownOptions{NTerm: 2})
	if best.Maze != nil && !normalize.IsNormalized(best.Maze) {
		t.Fatalf("top-down best must already be normalized")
	}
}
