// Package render prints human-readable views of a maze and a solved path.
// Nothing in the maze/solver/normalize/quizmaster core imports this
// package; it exists for the CLI only.
package render

import (
	"fmt"
	"io"

	"github.com/vinom-labs/repmaze/maze"
)

// Table prints the port matrix of a normal block: a header row of every
// destination terminal, one row per source terminal, with "*" marking an
// active port and "." an inactive one, followed by the nx/ny edge-block
// port lists. Grounded on maze_print_table in original_source/maze.c.
func Table(w io.Writer, m *maze.PortStore) {
	n := m.NTerm
	dirs := []maze.Dir{maze.DirE, maze.DirW, maze.DirN, maze.DirS}

	fmt.Fprint(w, "      ")
	for _, d := range dirs {
		for i := 0; i < n; i++ {
			fmt.Fprintf(w, " %s%-2d", d, i)
		}
	}
	fmt.Fprintln(w)

	for _, sd := range dirs {
		for si := 0; si < n; si++ {
			fmt.Fprintf(w, "  %s%-2d ", sd, si)
			for _, dd := range dirs {
				for di := 0; di < n; di++ {
					c := '.'
					if m.NormalPort(sd, si, dd, di) {
						c = '*'
					}
					fmt.Fprintf(w, "  %c ", c)
				}
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprint(w, "nx block ports:")
	printEdgeList(w, n, m.NXPort)
	fmt.Fprint(w, "ny block ports:")
	printEdgeList(w, n, m.NYPort)
}

func printEdgeList(w io.Writer, n int, get func(si, di int) bool) {
	first := true
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if di == si || !get(si, di) {
				continue
			}
			if first {
				fmt.Fprintf(w, " %d->%d", si, di)
				first = false
			} else {
				fmt.Fprintf(w, ", %d->%d", si, di)
			}
		}
	}
	if first {
		fmt.Fprint(w, " (none)")
	}
	fmt.Fprintln(w)
}
