package rstack

import (
	"testing"

	"github.com/vlsirt/routecore/geom"
)

func newTestStack(t *testing.T) *Stack {
	t.Helper()
	gx, err := geom.NewTrackGrid(0, 3, 1, geom.Metal(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gy, err := geom.NewTrackGrid(0, 3, 1, geom.Metal(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewStack(geom.Metal(1), geom.Metal(2), gx, gy)
}

func TestMatrixRoundTrip(t *testing.T) {
	m := NewMatrix(Shape{X: 3, Y: 3, Z: 2})
	m.SetAt(1, 1, 0, Terminal)
	if got := m.GetAt(1, 1, 0); got != Terminal {
		t.Fatalf("GetAt = %v; want Terminal", got)
	}
	if got := m.GetAt(1, 1, 1); got != Empty {
		t.Fatalf("GetAt on unset plane = %v; want Empty", got)
	}
	if m.InBounds(5, 5, 0) {
		t.Fatalf("InBounds should reject out-of-range coordinate")
	}
	// Out-of-range reads/writes are no-ops, not panics.
	m.SetAt(-1, 0, 0, Path)
	if got := m.GetAt(-1, 0, 0); got != Empty {
		t.Fatalf("GetAt out-of-range = %v; want Empty", got)
	}
}

func TestCreateMatrixMarksTerminals(t *testing.T) {
	s := newTestStack(t)
	terms := []Terminal{{Net: "n1", Pos: Point3{X: 1, Y: 1, Z: 0}}}
	s.CreateMatrix(terms)
	if got := s.Matrix.GetAt(1, 1, 0); got != Terminal {
		t.Fatalf("terminal cell = %v; want Terminal", got)
	}
}

func TestCreateGraphSkipsObstacles(t *testing.T) {
	s := newTestStack(t)
	s.CreateMatrix(nil)
	obstacle := []geom.Rect{geom.NewRect(1, 1, 1, 1, geom.Metal(1))}
	s.CreateGraph(obstacle)

	if _, err := s.Graph.EdgeBetween(Point3{X: 1, Y: 1, Z: 0}, Point3{X: 1, Y: 1, Z: 1}); err == nil {
		t.Fatalf("expected no via edge through blocked node")
	}
	if _, err := s.Graph.EdgeBetween(Point3{X: 0, Y: 0, Z: 1}, Point3{X: 1, Y: 0, Z: 1}); err != nil {
		t.Fatalf("unexpected error for unblocked edge: %v", err)
	}
}

func TestGraphCostBookkeeping(t *testing.T) {
	g := NewGraph()
	a := Point3{X: 0, Y: 0, Z: 0}
	b := Point3{X: 0, Y: 1, Z: 0}
	if err := g.AddTrackEdge(a, b, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err := g.EdgeBetween(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.AddCost(e.ID, 3)
	if g.State(e.ID).Usage != 3 {
		t.Fatalf("Usage = %d; want 3", g.State(e.ID).Usage)
	}
	g.ZeroCost(e.ID)
	if g.State(e.ID).Usage != 0 || g.State(e.ID).History != 3 {
		t.Fatalf("after ZeroCost: Usage=%d History=%d; want 0,3", g.State(e.ID).Usage, g.State(e.ID).History)
	}
	g.RestoreCost(e.ID)
	if g.State(e.ID).Usage != 3 || g.State(e.ID).History != 0 {
		t.Fatalf("after RestoreCost: Usage=%d History=%d; want 3,0", g.State(e.ID).Usage, g.State(e.ID).History)
	}
}
