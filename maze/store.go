package maze

// PortStore owns the three port bit-arrays that fully describe a repeated
// maze for a given terminal count N (NTerm): one entry per normal-block
// ordered terminal pair, and one entry per nx/ny ordered terminal pair with
// the self-loop diagonal packed out.
//
// Slot layout mirrors the reference C implementation's normal_idx/edge_idx
// arithmetic: normal ports are addressed by (dir*N+idx) on each side, and
// edge ports pack the N*(N-1) off-diagonal pairs densely by skipping the
// diagonal slot.
type PortStore struct {
	NTerm  int
	normal []byte
	nx     []byte
	ny     []byte
}

// New creates a cleared PortStore for the given terminal count.
func New(nterm int) *PortStore {
	n4 := 4 * nterm
	edge := nterm * (nterm - 1)
	if edge < 0 {
		edge = 0
	}
	return &PortStore{
		NTerm:  nterm,
		normal: make([]byte, n4*n4),
		nx:     make([]byte, edge),
		ny:     make([]byte, edge),
	}
}

// Clear resets every port to absent, in place.
func (s *PortStore) Clear() {
	for i := range s.normal {
		s.normal[i] = 0
	}
	for i := range s.nx {
		s.nx[i] = 0
	}
	for i := range s.ny {
		s.ny[i] = 0
	}
}

// Clone deep-copies the store.
func (s *PortStore) Clone() *PortStore {
	c := &PortStore{
		NTerm:  s.NTerm,
		normal: make([]byte, len(s.normal)),
		nx:     make([]byte, len(s.nx)),
		ny:     make([]byte, len(s.ny)),
	}
	copy(c.normal, s.normal)
	copy(c.nx, s.nx)
	copy(c.ny, s.ny)
	return c
}

// NormalCount returns (4*NTerm)^2, the number of normal-block ports.
func (s *PortStore) NormalCount() int { return len(s.normal) }

// EdgeCount returns NTerm*(NTerm-1), the number of nx (or ny) ports.
func (s *PortStore) EdgeCount() int { return len(s.nx) }

// TotalPorts returns the full flat port vector length.
func (s *PortStore) TotalPorts() int {
	return len(s.normal) + len(s.nx) + len(s.ny)
}

func normalIdx(nterm int, sd Dir, si int, dd Dir, di int) int {
	n4 := 4 * nterm
	src := int(sd)*nterm + si
	dst := int(dd)*nterm + di
	return src*n4 + dst
}

// edgeIdx packs the N*(N-1) off-diagonal (si,di) pairs of an edge block
// densely, skipping the si==di diagonal.
func edgeIdx(nterm, si, di int) int {
	adj := di
	if di > si {
		adj = di - 1
	}
	return si*(nterm-1) + adj
}

// NormalPort reports whether the ordered port sd[si] -> dd[di] is active on
// a normal block.
func (s *PortStore) NormalPort(sd Dir, si int, dd Dir, di int) bool {
	return s.normal[normalIdx(s.NTerm, sd, si, dd, di)] != 0
}

// SetNormalPort sets or clears sd[si] -> dd[di] on a normal block.
func (s *PortStore) SetNormalPort(sd Dir, si int, dd Dir, di int, v bool) {
	s.normal[normalIdx(s.NTerm, sd, si, dd, di)] = boolByte(v)
}

// NXPort reports whether E[si] -> E[di] is active on an nx block. si must
// differ from di; self-loops are not representable (they are packed out).
func (s *PortStore) NXPort(si, di int) bool {
	if si == di {
		return false
	}
	return s.nx[edgeIdx(s.NTerm, si, di)] != 0
}

// SetNXPort sets or clears E[si] -> E[di] on an nx block. A self-loop
// request (si == di) is silently ignored.
func (s *PortStore) SetNXPort(si, di int, v bool) {
	if si == di {
		return
	}
	s.nx[edgeIdx(s.NTerm, si, di)] = boolByte(v)
}

// NYPort reports whether N[si] -> N[di] is active on an ny block.
func (s *PortStore) NYPort(si, di int) bool {
	if si == di {
		return false
	}
	return s.ny[edgeIdx(s.NTerm, si, di)] != 0
}

// SetNYPort sets or clears N[si] -> N[di] on an ny block.
func (s *PortStore) SetNYPort(si, di int, v bool) {
	if si == di {
		return
	}
	s.ny[edgeIdx(s.NTerm, si, di)] = boolByte(v)
}

// Get reads the flat-index view: {normal || nx || ny}.
func (s *PortStore) Get(idx int) bool {
	if idx < len(s.normal) {
		return s.normal[idx] != 0
	}
	idx -= len(s.normal)
	if idx < len(s.nx) {
		return s.nx[idx] != 0
	}
	idx -= len(s.nx)
	return s.ny[idx] != 0
}

// Set writes the flat-index view.
func (s *PortStore) Set(idx int, v bool) {
	b := boolByte(v)
	if idx < len(s.normal) {
		s.normal[idx] = b
		return
	}
	idx -= len(s.normal)
	if idx < len(s.nx) {
		s.nx[idx] = b
		return
	}
	idx -= len(s.nx)
	s.ny[idx] = b
}

// Flip toggles a flat-index port.
func (s *PortStore) Flip(idx int) {
	s.Set(idx, !s.Get(idx))
}

// LoadBytes bulk-loads the three arrays from a contiguous
// {normal || nx || ny} byte slice, matching Bytes' layout.
func (s *PortStore) LoadBytes(data []byte) {
	copy(s.normal, data[:len(s.normal)])
	copy(s.nx, data[len(s.normal):len(s.normal)+len(s.nx)])
	copy(s.ny, data[len(s.normal)+len(s.nx):])
}

// Bytes returns a fresh copy of the flat {normal || nx || ny} port vector,
// suitable as a map/set key (e.g. the quizmaster's seen-set).
func (s *PortStore) Bytes() []byte {
	out := make([]byte, s.TotalPorts())
	n := copy(out, s.normal)
	n += copy(out[n:], s.nx)
	copy(out[n:], s.ny)
	return out
}

// Randomize sets each port independently to an active/inactive Bernoulli(1/2)
// draw from rng.
func (s *PortStore) Randomize(rng *Rand) {
	for i := 0; i < s.TotalPorts(); i++ {
		s.Set(i, rng.Next()&1 == 1)
	}
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
