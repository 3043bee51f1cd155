package gcell

import (
	"testing"

	"github.com/vlsirt/routecore/apg"
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/routelog"
	"github.com/vlsirt/routecore/rstack"
)

func newTestGCell(t *testing.T) (*GCell, *apg.Registry) {
	t.Helper()
	gx, err := geom.NewTrackGrid(0, 4, 1, geom.Metal(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gy, err := geom.NewTrackGrid(0, 4, 1, geom.Metal(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reg := apg.NewRegistry()
	g := apg.New(gx, gy)
	ref := reg.Add(g)
	box := geom.NewRect(0, 0, 4, 4, geom.Metal(1))
	return New(0, 0, box, ref, routelog.NewStderr()), reg
}

func TestSetupOrderEnforced(t *testing.T) {
	c, reg := newTestGCell(t)
	if err := c.SetupInnerPins(reg, nil, nil, geom.Metal(1), geom.Metal(1)); err != ErrStateOrder {
		t.Fatalf("expected ErrStateOrder, got %v", err)
	}
}

func TestInnerPinPlacementSucceeds(t *testing.T) {
	c, reg := newTestGCell(t)
	if err := c.SetupObstacles(reg, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gx := geom.TrackGrid{Start: 0, End: 4, Step: 1, Metal: geom.Metal(2)}
	gy := geom.TrackGrid{Start: 0, End: 4, Step: 1, Metal: geom.Metal(1)}
	grids := map[geom.Metal]GridPair{geom.Metal(1): {X: gx, Y: gy}}

	pin := &design.Pin{Name: "p1", Ports: []design.PortPoly{{
		Metal:  1,
		Points: [][2]float64{{2, 2}, {2, 2}, {2, 2}, {2, 2}},
	}}}
	specs := []InnerPinSpec{{Pin: pin, Net: "n1"}}
	if err := c.SetupInnerPins(reg, specs, grids, geom.Metal(1), geom.Metal(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Failures) != 0 {
		t.Fatalf("unexpected failures: %+v", c.Failures)
	}
	if len(c.InnerPins) != 1 {
		t.Fatalf("InnerPins = %d; want 1", len(c.InnerPins))
	}
}

func TestFullStagePipelineReachesStacksRealized(t *testing.T) {
	c, reg := newTestGCell(t)
	gx := geom.TrackGrid{Start: 0, End: 4, Step: 1, Metal: geom.Metal(2)}
	gy := geom.TrackGrid{Start: 0, End: 4, Step: 1, Metal: geom.Metal(1)}
	grids := map[geom.Metal]GridPair{geom.Metal(1): {X: gx, Y: gy}}

	if err := c.SetupObstacles(reg, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetupInnerPins(reg, nil, grids, geom.Metal(1), geom.Metal(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetupCrossPins(reg, nil, grids, geom.Metal(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetupBetweenStackPins(reg, nil, grids, geom.Metal(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stackSpec := StackSpec{Bottom: geom.Metal(1), Top: geom.Metal(2)}
	stackGrids := map[StackSpec]GridPair{stackSpec: {X: gx, Y: gy}}
	terminals := map[StackSpec][]rstack.Terminal{}
	if err := c.SetupStacks(reg, []StackSpec{stackSpec}, stackGrids, terminals); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.State != StacksRealized {
		t.Fatalf("State = %v; want StacksRealized", c.State)
	}
	if len(c.Stacks) != 1 {
		t.Fatalf("Stacks = %d; want 1", len(c.Stacks))
	}
}
