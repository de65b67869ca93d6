package maze

import "fmt"

// CanonDir is a canonical-state direction; only E and N survive folding.
type CanonDir int

const (
	CanonE CanonDir = iota
	CanonN
)

func (d CanonDir) String() string {
	if d == CanonN {
		return "N"
	}
	return "E"
}

// State is a canonical state (x, y, d, i): a physical boundary point named
// by its lower/left incident block. See ToCanonical for the folding rules
// that map block-local W/S terminals onto E/N of a neighboring block.
type State struct {
	X, Y int
	Dir  CanonDir
	Idx  int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%s%d)", s.X, s.Y, s.Dir, s.Idx)
}

// Start and Goal are the two fixed canonical states every maze is judged
// against: E terminals 0 and 1 of nx block (0,1), which are also the W
// terminals of normal block (1,1).
var (
	Start = State{X: 0, Y: 1, Dir: CanonE, Idx: 0}
	Goal  = State{X: 0, Y: 1, Dir: CanonE, Idx: 1}
)

// ToCanonical folds a block-local terminal (bx, by, dir, idx) to its
// canonical state. W folds to E of the block to the west; S folds to N of
// the block to the south.
func ToCanonical(bx, by int, dir Dir, idx int) State {
	switch dir {
	case DirE:
		return State{X: bx, Y: by, Dir: CanonE, Idx: idx}
	case DirW:
		return State{X: bx - 1, Y: by, Dir: CanonE, Idx: idx}
	case DirN:
		return State{X: bx, Y: by, Dir: CanonN, Idx: idx}
	case DirS:
		return State{X: bx, Y: by - 1, Dir: CanonN, Idx: idx}
	default:
		return State{X: -1, Y: -1}
	}
}
