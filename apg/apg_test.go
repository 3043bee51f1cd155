package apg

import (
	"testing"

	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
)

func grid5x5(t *testing.T) *AccessPointGrid {
	t.Helper()
	gx, err := geom.NewTrackGrid(0, 4, 1, geom.Metal(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gy, err := geom.NewTrackGrid(0, 4, 1, geom.Metal(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(gx, gy)
}

func TestCostConsistency(t *testing.T) {
	g := grid5x5(t)
	reg := NewRegistry()
	if g.Cost() != 0 {
		t.Fatalf("fresh grid cost = %v; want 0", g.Cost())
	}

	pin := &design.Pin{Name: "p1"}
	pt, err := g.AddPin(pin, []geom.Point{{X: 2, Y: 2}}, geom.Metal(1), reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.X != 2 || pt.Y != 2 {
		t.Fatalf("claimed point = %+v; want (2,2)", pt)
	}

	var want float64
	for i := range g.HLines {
		want += g.HLines[i].Cost()
	}
	for i := range g.VLines {
		want += g.VLines[i].Cost()
	}
	if g.Cost() != want {
		t.Fatalf("Cost() = %v; want sum of line costs %v", g.Cost(), want)
	}
	if g.HLines[2].Assigned != 1 || g.VLines[2].Assigned != 1 {
		t.Fatalf("expected assigned=1 on both crossing lines")
	}
}

func TestAddPinLoadBalances(t *testing.T) {
	g := grid5x5(t)
	reg := NewRegistry()
	shared := []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}}

	claimed := make(map[[2]float64]bool)
	for i := 0; i < 3; i++ {
		pin := &design.Pin{Name: "p"}
		pt, err := g.AddPin(pin, shared, geom.Metal(1), reg)
		if err != nil {
			t.Fatalf("pin %d: unexpected error: %v", i, err)
		}
		key := [2]float64{pt.X, pt.Y}
		if claimed[key] {
			t.Fatalf("pin %d reused point %+v", i, pt)
		}
		claimed[key] = true
	}
}

func TestAddPinFailsWhenBlocked(t *testing.T) {
	g := grid5x5(t)
	reg := NewRegistry()
	obstacle := geom.NewRect(2, 2, 2, 2, geom.Metal(1))
	if err := g.AddObstacle(obstacle, geom.Metal(1), false, reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pin := &design.Pin{Name: "p1"}
	if _, err := g.AddPin(pin, []geom.Point{{X: 2, Y: 2}}, geom.Metal(1), reg); err != ErrClaimFailed {
		t.Fatalf("expected ErrClaimFailed, got %v", err)
	}
}

func TestBoundaryMirror(t *testing.T) {
	left := grid5x5(t)
	right := grid5x5(t)
	reg := NewRegistry()
	lref := reg.Add(left)
	rref := reg.Add(right)
	if err := reg.LinkHorizontal(lref, rref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pin := &design.Pin{Name: "p1"}
	// Force the fallback (VIA_BLOCKAGE) branch by claiming a corner on the
	// right grid's left edge, whose crossing nodes are both preset to
	// VIA_BLOCKAGE by New.
	_, err := right.AddPin(pin, []geom.Point{{X: 0, Y: 4}}, geom.Metal(1), reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if right.HLines[4].LeftPin.Status != Occupied {
		t.Fatalf("expected the right grid's left sentinel on row 4 to be OCCUPIED")
	}
	if left.HLines[4].RightPin.Status != Occupied {
		t.Fatalf("expected the left grid's mirrored right sentinel on row 4 to be OCCUPIED")
	}
}
