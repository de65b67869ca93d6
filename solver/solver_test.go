package solver

import (
	"testing"

	"github.com/vinom-labs/repmaze/maze"
)

// Scenario 1: a single nx port directly links Start to Goal.
func TestScenarioTrivialNXPath(t *testing.T) {
	m, err := maze.Parse(2, "normal: (none); nx: E0->E1; ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	if l := BFSLength(m); l != 1 {
		t.Fatalf("BFS length = %d, want 1", l)
	}
	if l := IDDFSLength(m, Options{}); l != 1 {
		t.Fatalf("IDDFS length = %d, want 1", l)
	}
}

// Scenario 2: an unreachable goal (all ports off) reports NoPath from both
// solvers.
func TestScenarioNoPortsNoPath(t *testing.T) {
	m := maze.New(2)
	if l := BFSLength(m); l != NoPath {
		t.Fatalf("BFS length = %d, want NoPath", l)
	}
	if l := IDDFSLength(m, Options{}); l != NoPath {
		t.Fatalf("IDDFS length = %d, want NoPath", l)
	}
}

// Scenario 3: Start's only outgoing edge leads away from Goal.
func TestScenarioMisdirectedPortNoPath(t *testing.T) {
	m, err := maze.Parse(2, "normal: E0->N0; nx: (none); ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	if l := BFSLength(m); l != NoPath {
		t.Fatalf("BFS length = %d, want NoPath", l)
	}
	if l := IDDFSLength(m, Options{}); l != NoPath {
		t.Fatalf("IDDFS length = %d, want NoPath", l)
	}
}

// Scenario 4: a two-hop path chained through an intermediate nx terminal
// (Start's Idx 0 -> Idx 2 -> Goal's Idx 1), with no direct 0->1 port.
func TestScenarioTwoHopPath(t *testing.T) {
	m := maze.New(3)
	m.SetNXPort(0, 2, true)
	m.SetNXPort(2, 1, true)

	p, l := BFS(m)
	if l != 2 {
		t.Fatalf("expected a 2-edge path, got length %d (path %v)", l, p)
	}
	if p.States[len(p.States)-1] != maze.Goal {
		t.Fatalf("path does not end at Goal: %v", p)
	}
}

// Scenario 6 (boundary): NTerm below the minimum valid value yields NoPath
// from both solvers rather than panicking.
func TestScenarioNTermTooSmall(t *testing.T) {
	m := maze.New(1)
	if l := BFSLength(m); l != NoPath {
		t.Fatalf("BFS length = %d, want NoPath for NTerm<2", l)
	}
	if l := IDDFSLength(m, Options{}); l != NoPath {
		t.Fatalf("IDDFS length = %d, want NoPath for NTerm<2", l)
	}
}

// B1: the empty maze (no ports at all) is unreachable.
func TestBoundaryEmptyMaze(t *testing.T) {
	m := maze.New(4)
	if l := BFSLength(m); l != NoPath {
		t.Fatalf("expected NoPath on empty maze, got %d", l)
	}
}

// B2: the shortest possible nontrivial maze has path length 1.
func TestBoundaryMinimalPath(t *testing.T) {
	m, err := maze.Parse(2, "normal: (none); nx: E0->E1; ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	if l := BFSLength(m); l != 1 {
		t.Fatalf("expected minimal path length 1, got %d", l)
	}
}

// B3: self-loop edge ports are always inactive and never contribute a
// same-index Start->Start "path" of length 0.
func TestBoundarySelfLoopNeverActive(t *testing.T) {
	m := maze.New(2)
	m.SetNXPort(0, 0, true)
	if m.NXPort(0, 0) {
		t.Fatalf("self-loop nx port must remain inactive after SetNXPort")
	}
	if l := BFSLength(m); l != NoPath {
		t.Fatalf("expected NoPath, got %d", l)
	}
}

// B4: IDDFS run against a maze requiring a path longer than the depth
// ceiling reports NoPath rather than looping forever.
func TestBoundaryDepthCeilingExhausted(t *testing.T) {
	// A single nx chain 0->2->3->4->5->1: the shortest path has 5 edges.
	m := maze.New(6)
	m.SetNXPort(0, 2, true)
	m.SetNXPort(2, 3, true)
	m.SetNXPort(3, 4, true)
	m.SetNXPort(4, 5, true)
	m.SetNXPort(5, 1, true)
	if l := BFSLength(m); l != 5 {
		t.Fatalf("fixture should have a 5-edge shortest path, got %d", l)
	}
	p, l := IDDFS(m, Options{DepthCeiling: 3})
	if l != NoPath {
		t.Fatalf("expected NoPath under a tight ceiling, got %d", l)
	}
	if len(p.States) != 0 {
		t.Fatalf("expected an empty path on failure, got %v", p)
	}
}

// I4: BFS and IDDFS must agree on both reachability and shortest-path
// length for any maze.
func TestInvariantBFSIDDFSAgree(t *testing.T) {
	seeds := []uint64{1, 2, 42, 999, 123456}
	for _, seed := range seeds {
		m := maze.New(3)
		m.Randomize(maze.NewRand(seed))

		bfsLen := BFSLength(m)
		iddfsLen := IDDFSLength(m, Options{})
		if bfsLen != iddfsLen {
			t.Fatalf("seed %d: BFS length %d != IDDFS length %d", seed, bfsLen, iddfsLen)
		}
		if bfsLen == NoPath {
			continue
		}

		bfsPath, _ := BFS(m)
		iddfsPath, _ := IDDFS(m, Options{})
		if bfsPath.Len() != iddfsPath.Len() {
			t.Fatalf("seed %d: BFS path len %d != IDDFS path len %d", seed, bfsPath.Len(), iddfsPath.Len())
		}
		if iddfsPath.States[0] != maze.Start || iddfsPath.States[len(iddfsPath.States)-1] != maze.Goal {
			t.Fatalf("seed %d: IDDFS path does not run Start..Goal: %v", seed, iddfsPath)
		}
	}
}

// SolveFrom, warm-started at a known lower bound, must still find the true
// shortest path length (never longer, since a lower bound never overshoots
// the answer).
func TestSolveFromWarmStartMatchesFullSearch(t *testing.T) {
	m := maze.New(4)
	m.SetNXPort(0, 2, true)
	m.SetNXPort(2, 3, true)
	m.SetNXPort(3, 1, true)

	full := IDDFSLength(m, Options{})
	warm := SolveFromLength(m, full, Options{})
	if warm != full {
		t.Fatalf("SolveFrom(%d) = %d, want %d", full, warm, full)
	}
}
