// Package maze holds the tiled block geometry, the terminal/port data
// model, and the canonical-state neighbor enumerator for repeated mazes.
//
// A repeated maze is an infinite tiling of the (x, y) integer lattice with
// x >= 0, y >= 0, excluding (0,0). Every block is one of three kinds
// determined solely by its position; every block of the same kind shares
// one port configuration. See PortStore for the port data itself.
package maze

// Kind identifies which of the three block shapes occupies a lattice
// position.
type Kind int

const (
	// KindNone marks (0,0), which is never visited.
	KindNone Kind = iota
	// KindNormal is a block at x>0, y>0 with 4*N terminals.
	KindNormal
	// KindNX is a block at x=0, y>0 (west edge) with N E-terminals.
	KindNX
	// KindNY is a block at x>0, y=0 (south edge) with N N-terminals.
	KindNY
)

// KindAt classifies a lattice position.
func KindAt(x, y int) Kind {
	switch {
	case x == 0 && y == 0:
		return KindNone
	case x == 0:
		return KindNX
	case y == 0:
		return KindNY
	default:
		return KindNormal
	}
}

// Dir is a terminal direction within a block.
type Dir int

const (
	DirE Dir = iota
	DirW
	DirN
	DirS
)

func (d Dir) String() string {
	switch d {
	case DirE:
		return "E"
	case DirW:
		return "W"
	case DirN:
		return "N"
	case DirS:
		return "S"
	default:
		return "?"
	}
}

// ParseDir parses a single case-insensitive direction letter.
func ParseDir(c byte) (Dir, bool) {
	switch c {
	case 'E', 'e':
		return DirE, true
	case 'W', 'w':
		return DirW, true
	case 'N', 'n':
		return DirN, true
	case 'S', 's':
		return DirS, true
	default:
		return 0, false
	}
}
