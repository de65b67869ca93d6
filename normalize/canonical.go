package normalize

import (
	"bytes"

	"github.com/vinom-labs/repmaze/maze"
)

// Normalize rewrites m in place to the canonical representative of its
// (E/W-permutation × N/S-permutation) equivalence class. E/W indices 0 and 1
// are pinned (they name the start and goal terminals); N/S indices are free.
// A terminal's canonical index is assigned the first time it is seen while
// scanning normal ports (source-major, destination-minor), then nx ports,
// then ny ports; any index never seen this way is assigned a canonical slot
// last, so the result is deterministic even for ports the maze doesn't use.
func Normalize(m *maze.PortStore) {
	n := m.NTerm
	if n == 0 {
		return
	}

	ewMap := make([]int, n)
	nsMap := make([]int, n)
	for i := range ewMap {
		ewMap[i] = -1
	}
	for i := range nsMap {
		nsMap[i] = -1
	}
	if n >= 1 {
		ewMap[0] = 0
	}
	if n >= 2 {
		ewMap[1] = 1
	}
	nextEW, nextNS := 2, 0

	assign := func(d maze.Dir, idx int) {
		if d == maze.DirE || d == maze.DirW {
			if ewMap[idx] == -1 {
				ewMap[idx] = nextEW
				nextEW++
			}
			return
		}
		if nsMap[idx] == -1 {
			nsMap[idx] = nextNS
			nextNS++
		}
	}

	n4 := 4 * n
	for idx := 0; idx < m.NormalCount(); idx++ {
		if !m.Get(idx) {
			continue
		}
		src, dst := idx/n4, idx%n4
		sd, si := maze.Dir(src/n), src%n
		dd, di := maze.Dir(dst/n), dst%n
		assign(sd, si)
		assign(dd, di)
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si != di && m.NXPort(si, di) {
				assign(maze.DirE, si)
				assign(maze.DirE, di)
			}
		}
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si != di && m.NYPort(si, di) {
				assign(maze.DirN, si)
				assign(maze.DirN, di)
			}
		}
	}
	for i := 0; i < n; i++ {
		if ewMap[i] == -1 {
			ewMap[i] = nextEW
			nextEW++
		}
		if nsMap[i] == -1 {
			nsMap[i] = nextNS
			nextNS++
		}
	}

	mapIdx := func(d maze.Dir, idx int) int {
		if d == maze.DirE || d == maze.DirW {
			return ewMap[idx]
		}
		return nsMap[idx]
	}

	out := maze.New(n)
	for idx := 0; idx < m.NormalCount(); idx++ {
		if !m.Get(idx) {
			continue
		}
		src, dst := idx/n4, idx%n4
		sd, si := maze.Dir(src/n), src%n
		dd, di := maze.Dir(dst/n), dst%n
		out.SetNormalPort(sd, mapIdx(sd, si), dd, mapIdx(dd, di), true)
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si != di && m.NXPort(si, di) {
				out.SetNXPort(ewMap[si], ewMap[di], true)
			}
		}
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si != di && m.NYPort(si, di) {
				out.SetNYPort(nsMap[si], nsMap[di], true)
			}
		}
	}

	m.LoadBytes(out.Bytes())
}

// IsNormalized reports whether m already equals its own normalization.
func IsNormalized(m *maze.PortStore) bool {
	c := m.Clone()
	Normalize(c)
	return bytes.Equal(c.Bytes(), m.Bytes())
}
