package router

import (
	"testing"

	"github.com/vlsirt/routecore/rstack"
)

func gridGraph(t *testing.T, n int) *rstack.Graph {
	t.Helper()
	g := rstack.NewGraph()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			here := rstack.Point3{X: x, Y: y, Z: 0}
			if x+1 < n {
				if err := g.AddTrackEdge(here, rstack.Point3{X: x + 1, Y: y, Z: 0}, 1); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if y+1 < n {
				if err := g.AddTrackEdge(here, rstack.Point3{X: x, Y: y + 1, Z: 0}, 1); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		}
	}
	return g
}

func TestFindPathStraightLine(t *testing.T) {
	g := gridGraph(t, 5)
	path, err := findPath(g, rstack.Point3{X: 0, Y: 0, Z: 0}, rstack.Point3{X: 4, Y: 0, Z: 0}, nil, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 5 {
		t.Fatalf("path length = %d; want 5", len(path))
	}
	if path[0] != (rstack.Point3{X: 0, Y: 0, Z: 0}) || path[len(path)-1] != (rstack.Point3{X: 4, Y: 0, Z: 0}) {
		t.Fatalf("path endpoints wrong: %+v", path)
	}
}

func TestFindPathNoPathWhenUnreachable(t *testing.T) {
	g := rstack.NewGraph()
	if err := g.AddTrackEdge(rstack.Point3{X: 0, Y: 0, Z: 0}, rstack.Point3{X: 1, Y: 0, Z: 0}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := findPath(g, rstack.Point3{X: 0, Y: 0, Z: 0}, rstack.Point3{X: 5, Y: 5, Z: 0}, nil, defaultConfig())
	if err != ErrNoPath {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestMultiTerminalPathConnectsAll(t *testing.T) {
	g := gridGraph(t, 5)
	terms := []rstack.Point3{{X: 0, Y: 0, Z: 0}, {X: 4, Y: 4, Z: 0}, {X: 0, Y: 4, Z: 0}}
	path, err := MultiTerminalPath(g, terms, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[rstack.Point3]bool)
	for _, p := range path {
		seen[p] = true
	}
	for _, term := range terms {
		if !seen[term] {
			t.Fatalf("terminal %+v not in returned path", term)
		}
	}
}

func TestMultiTerminalPathRejectsSingleTerminal(t *testing.T) {
	g := gridGraph(t, 2)
	if _, err := MultiTerminalPath(g, []rstack.Point3{{X: 0, Y: 0, Z: 0}}, nil); err != ErrEmptyTerminals {
		t.Fatalf("expected ErrEmptyTerminals, got %v", err)
	}
}
