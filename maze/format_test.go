package maze

import "testing"

func TestParsePrintRoundTrip(t *testing.T) {
	inputs := []string{
		"normal: E0->N1, W0->S1; nx: E0->E1; ny: (none)",
		"normal: (none); nx: E0->E1; ny: (none)",
		"normal: (none); nx: (none); ny: N0->N1",
	}
	for _, in := range inputs {
		m, err := Parse(2, in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		out := m.String()
		m2, err := Parse(2, out)
		if err != nil {
			t.Fatalf("Parse(String()) failed: %v", err)
		}
		if m.String() != m2.String() {
			t.Fatalf("round trip mismatch:\n  %s\n  %s", m.String(), m2.String())
		}
	}
}

func TestParseSelfLoopSilentlyDropped(t *testing.T) {
	m, err := Parse(3, "normal: (none); nx: E0->E0, E0->E1; ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	if m.NXPort(0, 0) {
		t.Fatalf("self loop must never be set")
	}
	if !m.NXPort(0, 1) {
		t.Fatalf("valid nx port should still be parsed")
	}
}

func TestParseMissingSectionTreatedAsEmpty(t *testing.T) {
	m, err := Parse(2, "normal: E0->E1")
	if err != nil {
		t.Fatal(err)
	}
	if !m.NormalPort(DirE, 0, DirE, 1) {
		t.Fatalf("normal section should still parse")
	}
	if m.NXPort(0, 1) || m.NYPort(0, 1) {
		t.Fatalf("missing nx/ny sections must default to empty")
	}
}

func TestParseOutOfRangeIndexDropped(t *testing.T) {
	m, err := Parse(2, "normal: E5->E6; nx: (none); ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < m.TotalPorts(); i++ {
		if m.Get(i) {
			t.Fatalf("out-of-range port entries must be dropped entirely")
		}
	}
}

func TestParseMissingNormalHeaderErrors(t *testing.T) {
	if _, err := Parse(2, "nx: E0->E1"); err == nil {
		t.Fatalf("expected an error for a missing normal: header")
	}
}

func TestDetectNTerm(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"normal: (none); nx: (none); ny: (none)", 2},
		{"normal: E0->N1; nx: (none); ny: (none)", 2},
		{"normal: E0->N4; nx: (none); ny: (none)", 5},
	}
	for _, c := range cases {
		if got := DetectNTerm(c.in); got != c.want {
			t.Errorf("DetectNTerm(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCaseInsensitiveDirParse(t *testing.T) {
	m, err := Parse(2, "normal: e0->n1; nx: (none); ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	if !m.NormalPort(DirE, 0, DirN, 1) {
		t.Fatalf("lowercase direction letters must parse")
	}
}
