package maze

import "testing"

func hasState(states []State, want State) bool {
	for _, s := range states {
		if s == want {
			return true
		}
	}
	return false
}

func TestNeighborsTrivialNXPath(t *testing.T) {
	m, err := Parse(2, "normal: (none); nx: E0->E1; ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	nbrs := Neighbors(m, Start, make([]State, 0, MaxFanOut(m.NTerm)))
	if !hasState(nbrs, Goal) {
		t.Fatalf("Start should directly neighbor Goal via the nx E0->E1 port, got %v", nbrs)
	}
}

func TestNeighborsWECanonicalizationIdentity(t *testing.T) {
	// W0 at block (1,1) canonicalizes to E0 at block (0,1), i.e. Start.
	// A normal-block port sourced from W0 must be reachable as a successor
	// of Start.
	m, err := Parse(2, "normal: W0->E1; nx: (none); ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	nbrs := Neighbors(m, Start, nil)
	want := State{X: 1, Y: 1, Dir: CanonE, Idx: 1}
	if !hasState(nbrs, want) {
		t.Fatalf("expected W0->E1 at block (1,1) to surface as successor %v of Start, got %v", want, nbrs)
	}
}

func TestNeighborsNSCanonicalizationIdentity(t *testing.T) {
	// N0 at block (1,1) canonicalizes to (1,1,N,0). S0 at block (1,2)
	// also canonicalizes there, so a port sourced at S0 of block (1,2)
	// should also be reachable from that same canonical state.
	m := New(2)
	m.SetNormalPort(DirS, 0, DirE, 0, true)
	state := State{X: 1, Y: 1, Dir: CanonN, Idx: 0}
	nbrs := Neighbors(m, state, nil)
	want := State{X: 1, Y: 2, Dir: CanonE, Idx: 0}
	if !hasState(nbrs, want) {
		t.Fatalf("expected S0->E0 at block (1,2) to surface from %v, got %v", state, nbrs)
	}
}

func TestNeighborsNeverGoNegative(t *testing.T) {
	m := New(2)
	m.Randomize(NewRand(123))
	for x := 0; x <= 3; x++ {
		for y := 0; y <= 3; y++ {
			for _, d := range []CanonDir{CanonE, CanonN} {
				for i := 0; i < m.NTerm; i++ {
					nbrs := Neighbors(m, State{X: x, Y: y, Dir: d, Idx: i}, nil)
					for _, n := range nbrs {
						if n.X < 0 || n.Y < 0 {
							t.Fatalf("neighbor %v has a negative coordinate", n)
						}
					}
				}
			}
		}
	}
}

func TestNeighborsRespectActivePortsOnly(t *testing.T) {
	m := New(2) // all ports off
	nbrs := Neighbors(m, Start, nil)
	if len(nbrs) != 0 {
		t.Fatalf("an all-off maze must have no successors from Start, got %v", nbrs)
	}
}

func TestNeighborsUnreachableGoalScenario(t *testing.T) {
	// Scenario 3: normal: E0->N0; nx/ny: (none). Start's only outgoing edge
	// leads away from Goal's terminal index.
	m, err := Parse(2, "normal: E0->N0; nx: (none); ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	nbrs := Neighbors(m, Start, nil)
	if hasState(nbrs, Goal) {
		t.Fatalf("Start must not directly reach Goal in this maze")
	}
}
