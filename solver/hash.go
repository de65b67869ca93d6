package solver

import "github.com/vinom-labs/repmaze/maze"

// stateHash is a fixed-seed FNV-1a hash over a canonical state's four
// integer fields, used to key the BFS visited table.
func stateHash(s maze.State) uint64 {
	const offset = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offset)
	h ^= uint64(uint32(s.X))
	h *= prime
	h ^= uint64(uint32(s.Y))
	h *= prime
	h ^= uint64(uint32(s.Dir))
	h *= prime
	h ^= uint64(uint32(s.Idx))
	h *= prime
	return h
}

// visEntry is one BFS frontier record: the state discovered and the index
// (into visited) of the state it was discovered from, or -1 for Start.
type visEntry struct {
	state  maze.State
	parent int
}

// visited is an open-addressing hash table (power-of-two capacity, linear
// probing) mapping a canonical state to its index in a parallel slice of
// visEntry records, used by the BFS solver to detect already-seen states
// and to reconstruct the path via parent links.
type visited struct {
	entries []visEntry
	ht      []int32 // index into entries, or -1 for empty
	mask    uint64
}

func newVisited() *visited {
	const initialHTSize = 8192
	ht := make([]int32, initialHTSize)
	for i := range ht {
		ht[i] = -1
	}
	return &visited{
		entries: make([]visEntry, 0, 4096),
		ht:      ht,
		mask:    uint64(initialHTSize - 1),
	}
}

// find returns the index of s in entries, or -1 if not present.
func (v *visited) find(s maze.State) int {
	h := stateHash(s) & v.mask
	for v.ht[h] != -1 {
		if v.entries[v.ht[h]].state == s {
			return int(v.ht[h])
		}
		h = (h + 1) & v.mask
	}
	return -1
}

// insert records s with the given parent index and returns its new index.
// Caller must ensure s is not already present.
func (v *visited) insert(s maze.State, parent int) int {
	idx := len(v.entries)
	v.entries = append(v.entries, visEntry{state: s, parent: parent})

	if uint64(len(v.entries))*2 > v.mask+1 {
		v.rehash()
	}

	h := stateHash(s) & v.mask
	for v.ht[h] != -1 {
		h = (h + 1) & v.mask
	}
	v.ht[h] = int32(idx)
	return idx
}

func (v *visited) rehash() {
	newSize := (v.mask + 1) * 2
	newHT := make([]int32, newSize)
	for i := range newHT {
		newHT[i] = -1
	}
	mask := newSize - 1
	for i, e := range v.entries {
		h := stateHash(e.state) & mask
		for newHT[h] != -1 {
			h = (h + 1) & mask
		}
		newHT[h] = int32(i)
	}
	v.ht = newHT
	v.mask = mask
}
