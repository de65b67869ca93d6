package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders m in the canonical textual format:
//
//	normal: E0->N1, W0->S1; nx: E0->E1; ny: (none)
//
// Sections appear in fixed order; within a section entries appear in
// source-major, destination-minor terminal order. This is the inverse of
// Parse and the two round-trip byte-for-byte (see R1 in the design notes).
func (s *PortStore) String() string {
	var b strings.Builder
	n := s.NTerm

	b.WriteString("normal:")
	first := true
	for sd := DirE; sd <= DirS; sd++ {
		for si := 0; si < n; si++ {
			for dd := DirE; dd <= DirS; dd++ {
				for di := 0; di < n; di++ {
					if !s.NormalPort(sd, si, dd, di) {
						continue
					}
					if first {
						fmt.Fprintf(&b, " %s%d->%s%d", sd, si, dd, di)
						first = false
					} else {
						fmt.Fprintf(&b, ", %s%d->%s%d", sd, si, dd, di)
					}
				}
			}
		}
	}
	if first {
		b.WriteString(" (none)")
	}

	b.WriteString("; nx:")
	first = true
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if di == si || !s.NXPort(si, di) {
				continue
			}
			if first {
				fmt.Fprintf(&b, " E%d->E%d", si, di)
				first = false
			} else {
				fmt.Fprintf(&b, ", E%d->E%d", si, di)
			}
		}
	}
	if first {
		b.WriteString(" (none)")
	}

	b.WriteString("; ny:")
	first = true
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if di == si || !s.NYPort(si, di) {
				continue
			}
			if first {
				fmt.Fprintf(&b, " N%d->N%d", si, di)
				first = false
			} else {
				fmt.Fprintf(&b, ", N%d->N%d", si, di)
			}
		}
	}
	if first {
		b.WriteString(" (none)")
	}

	return b.String()
}

type parser struct {
	s   string
	pos int
}

func (p *parser) skipWS() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) skipLiteral(lit string) bool {
	p.skipWS()
	if strings.HasPrefix(p.s[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

// parseTerminal reads a <dir><digits> token, e.g. "E0" or "n12".
func (p *parser) parseTerminal() (Dir, int, bool) {
	p.skipWS()
	if p.pos >= len(p.s) {
		return 0, 0, false
	}
	d, ok := ParseDir(p.s[p.pos])
	if !ok {
		return 0, 0, false
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, 0, false
	}
	idx, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		return 0, 0, false
	}
	return d, idx, true
}

// Parse decodes the canonical textual maze format for a given nterm.
// Unknown port entries (out-of-range indices, self-loops in nx/ny
// sections) are dropped silently; a missing section is treated as empty.
// It returns an error only when the required "normal:" section header is
// missing, which signals the string is not a maze string at all.
func Parse(nterm int, str string) (*PortStore, error) {
	m := New(nterm)
	p := &parser{s: str}

	if !p.skipLiteral("normal:") {
		return nil, fmt.Errorf("maze: missing \"normal:\" section")
	}
	parseNormalSection(p, m)

	p.skipWS()
	if p.peek() == ';' {
		p.pos++
	}
	if p.skipLiteral("nx:") {
		parseEdgeSection(p, m, m.SetNXPort)
	}

	p.skipWS()
	if p.peek() == ';' {
		p.pos++
	}
	if p.skipLiteral("ny:") {
		parseEdgeSection(p, m, m.SetNYPort)
	}

	return m, nil
}

func parseNormalSection(p *parser, m *PortStore) {
	p.skipWS()
	if strings.HasPrefix(p.s[p.pos:], "(none)") {
		p.pos += len("(none)")
		return
	}
	for p.pos < len(p.s) && p.peek() != ';' {
		sd, si, ok1 := p.parseTerminal()
		if !ok1 {
			break
		}
		p.skipWS()
		if p.peek() == '-' {
			p.pos++
		}
		if p.peek() == '>' {
			p.pos++
		}
		dd, di, ok2 := p.parseTerminal()
		if !ok2 {
			break
		}
		if si >= 0 && si < m.NTerm && di >= 0 && di < m.NTerm {
			m.SetNormalPort(sd, si, dd, di, true)
		}
		p.skipWS()
		if p.peek() == ',' {
			p.pos++
		}
	}
}

func parseEdgeSection(p *parser, m *PortStore, set func(si, di int, v bool)) {
	p.skipWS()
	if strings.HasPrefix(p.s[p.pos:], "(none)") {
		p.pos += len("(none)")
		return
	}
	for p.pos < len(p.s) && p.peek() != ';' && p.pos < len(p.s) {
		_, si, ok1 := p.parseTerminal()
		if !ok1 {
			break
		}
		p.skipWS()
		if p.peek() == '-' {
			p.pos++
		}
		if p.peek() == '>' {
			p.pos++
		}
		_, di, ok2 := p.parseTerminal()
		if !ok2 {
			break
		}
		if si >= 0 && si < m.NTerm && di >= 0 && di < m.NTerm && si != di {
			set(si, di, true)
		}
		p.skipWS()
		if p.peek() == ',' {
			p.pos++
		}
	}
}

// DetectNTerm scans a maze string for the maximum terminal digit seen and
// returns max(2, maxIdx+1), the smallest nterm under which every index in
// the string is in range.
func DetectNTerm(str string) int {
	maxIdx := -1
	i := 0
	for i < len(str) {
		if _, ok := ParseDir(str[i]); ok && i+1 < len(str) && str[i+1] >= '0' && str[i+1] <= '9' {
			j := i + 1
			for j < len(str) && str[j] >= '0' && str[j] <= '9' {
				j++
			}
			idx, err := strconv.Atoi(str[i+1 : j])
			if err == nil && idx > maxIdx {
				maxIdx = idx
			}
			i = j
			continue
		}
		i++
	}
	if maxIdx+1 < 2 {
		return 2
	}
	return maxIdx + 1
}
