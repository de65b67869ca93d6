package maze

// MaxFanOut is the largest possible successor count for any canonical
// state: at most two incident blocks, each offering up to 4*N candidate
// destinations.
func MaxFanOut(nterm int) int {
	return 8 * nterm
}

// Neighbors enumerates the successor canonical states of s in m, appending
// them to dst and returning the extended slice. dst may be nil; callers on
// a hot path should pre-size it with MaxFanOut(m.NTerm) capacity to avoid
// reallocation.
//
// The physical point named by s is incident to up to two blocks: for
// Dir==E, the E side of block (x,y) and the W side of block (x+1,y); for
// Dir==N, the N side of block (x,y) and the S side of block (x,y+1). Each
// incident block is enumerated only if the block-kind rules admit it at
// that position (normal needs x>0 && y>0; nx needs x==0 && y>0; ny needs
// x>0 && y==0). Edge blocks only offer same-direction ports through the
// dense N*(N-1) table.
func Neighbors(m *PortStore, s State, dst []State) []State {
	n := m.NTerm
	n4 := 4 * n

	appendNormal := func(bx, by int, sd Dir) {
		src := int(sd)*n + s.Idx
		for dst4 := 0; dst4 < n4; dst4++ {
			if m.normal[src*n4+dst4] == 0 {
				continue
			}
			ns := ToCanonical(bx, by, Dir(dst4/n), dst4%n)
			if ns.X >= 0 && ns.Y >= 0 {
				dst = appendState(dst, ns)
			}
		}
	}

	if s.Dir == CanonE {
		// Block (x, y) exposes E[idx].
		bx, by := s.X, s.Y
		switch {
		case by > 0 && bx > 0:
			appendNormal(bx, by, DirE)
		case by > 0 && bx == 0:
			for dj := 0; dj < n; dj++ {
				if m.NXPort(s.Idx, dj) {
					dst = appendState(dst, State{X: 0, Y: by, Dir: CanonE, Idx: dj})
				}
			}
		}

		// Block (x+1, y) exposes W[idx].
		bx, by = s.X+1, s.Y
		if bx > 0 && by > 0 {
			appendNormal(bx, by, DirW)
		}
	} else {
		// Block (x, y) exposes N[idx].
		bx, by := s.X, s.Y
		switch {
		case bx > 0 && by > 0:
			appendNormal(bx, by, DirN)
		case bx > 0 && by == 0:
			for dj := 0; dj < n; dj++ {
				if m.NYPort(s.Idx, dj) {
					dst = appendState(dst, State{X: bx, Y: 0, Dir: CanonN, Idx: dj})
				}
			}
		}

		// Block (x, y+1) exposes S[idx].
		bx, by = s.X, s.Y+1
		if bx > 0 && by > 0 {
			appendNormal(bx, by, DirS)
		}
	}

	return dst
}

func appendState(dst []State, s State) []State {
	return append(dst, s)
}
