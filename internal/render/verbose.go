package render

import (
	"fmt"
	"io"

	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/solver"
)

// blockTerm is a block-local terminal candidate: one of the (up to) two
// physical terminals a canonical state can fold from.
type blockTerm struct {
	bx, by int
	tdir   maze.Dir
	idx    int
}

// candidates returns the one or two block-local terminals a canonical
// state folds from, per maze.ToCanonical's inverse.
func candidates(s maze.State) []blockTerm {
	if s.Dir == maze.CanonE {
		return []blockTerm{
			{s.X, s.Y, maze.DirE, s.Idx},
			{s.X + 1, s.Y, maze.DirW, s.Idx},
		}
	}
	return []blockTerm{
		{s.X, s.Y, maze.DirN, s.Idx},
		{s.X, s.Y + 1, maze.DirS, s.Idx},
	}
}

// Verbose prints each edge of p annotated with the block and port that
// realizes it, grounded on path_print_verbose in original_source/solver.c.
func Verbose(w io.Writer, m *maze.PortStore, p solver.Path) {
	for step := 0; step+1 < len(p.States); step++ {
		s1, s2 := p.States[step], p.States[step+1]
		c1, c2 := candidates(s1), candidates(s2)

		found := false
	search:
		for _, t1 := range c1 {
			for _, t2 := range c2 {
				if t1.bx != t2.bx || t1.by != t2.by {
					continue
				}
				bx, by := t1.bx, t1.by
				sd, si := t1.tdir, t1.idx
				dd, di := t2.tdir, t2.idx

				var btype string
				hasPort := false
				switch {
				case bx > 0 && by > 0:
					btype = "normal"
					hasPort = m.NormalPort(sd, si, dd, di)
				case bx == 0 && by > 0:
					btype = "nx"
					if sd == maze.DirE && dd == maze.DirE && si != di {
						hasPort = m.NXPort(si, di)
					}
				case bx > 0 && by == 0:
					btype = "ny"
					if sd == maze.DirN && dd == maze.DirN && si != di {
						hasPort = m.NYPort(si, di)
					}
				}
				if hasPort {
					fmt.Fprintf(w, "  #%-3d %s --[%s%d->%s%d @ %s(%d,%d)]--> %s\n",
						step, s1, sd, si, dd, di, btype, bx, by, s2)
					found = true
					break search
				}
			}
		}
		if !found {
			fmt.Fprintf(w, "  #%-3d %s --> %s  [transition unknown]\n", step, s1, s2)
		}
	}
}
