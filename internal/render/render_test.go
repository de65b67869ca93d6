package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/solver"
)

func TestTableMarksActivePorts(t *testing.T) {
	m, err := maze.Parse(2, "normal: E0->N1, W0->S1; nx: E0->E1; ny: (none)")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	Table(&buf, m)
	out := buf.String()

	if !strings.Contains(out, "*") {
		t.Fatalf("table with an active port must contain at least one '*':\n%s", out)
	}
	if !strings.Contains(out, "nx block ports: 0->1") {
		t.Fatalf("nx summary line missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "ny block ports: (none)") {
		t.Fatalf("ny summary line missing or wrong:\n%s", out)
	}
}

func TestTableAllEmptyHasNoStars(t *testing.T) {
	m := maze.New(2)
	var buf bytes.Buffer
	Table(&buf, m)
	if strings.Contains(buf.String(), "*") {
		t.Fatalf("empty maze must render with no active ports")
	}
}

func TestVerboseAnnotatesEachEdgeWithABlockAndPort(t *testing.T) {
	m := maze.New(3)
	m.SetNXPort(0, 2, true)
	m.SetNXPort(2, 1, true)

	p, length := solver.BFS(m)
	if length != 2 {
		t.Fatalf("expected a 2-edge path, got length %d", length)
	}

	var buf bytes.Buffer
	Verbose(&buf, m, p)
	out := buf.String()

	if strings.Count(out, "#") != 2 {
		t.Fatalf("expected one annotated line per edge, got:\n%s", out)
	}
	if strings.Contains(out, "transition unknown") {
		t.Fatalf("every edge of a real path must resolve to a known port:\n%s", out)
	}
	if !strings.Contains(out, "@ nx(0,1)") {
		t.Fatalf("expected an nx(0,1) annotation, got:\n%s", out)
	}
}

func TestVerboseEmptyPathPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	Verbose(&buf, maze.New(2), solver.Path{})
	if buf.Len() != 0 {
		t.Fatalf("an empty path must produce no output, got %q", buf.String())
	}
}
