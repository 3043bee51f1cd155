package costmap

import (
	"testing"

	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/rstack"
)

func smallStack(t *testing.T) *rstack.Stack {
	t.Helper()
	gx, err := geom.NewTrackGrid(0, 2, 1, geom.Metal(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gy, err := geom.NewTrackGrid(0, 2, 1, geom.Metal(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := rstack.NewStack(geom.Metal(1), geom.Metal(2), gx, gy)
	s.CreateMatrix([]rstack.Terminal{{Net: "n1", Pos: rstack.Point3{X: 0, Y: 0, Z: 0}}})
	s.CreateGraph(nil)
	return s
}

func TestDistanceCostMapTerminalPinned(t *testing.T) {
	s := smallStack(t)
	cm, err := DistanceCostMap(s, []rstack.Point3{{X: 0, Y: 0, Z: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cm.Bottom.At(0, 0); got != 1.0 {
		t.Fatalf("terminal cell = %v; want 1.0", got)
	}
}

func TestDistanceCostMapUnreachedIsZero(t *testing.T) {
	s := rstack.NewStack(geom.Metal(1), geom.Metal(2), geom.TrackGrid{Start: 0, End: 5, Step: 1, Metal: geom.Metal(2)}, geom.TrackGrid{Start: 0, End: 5, Step: 1, Metal: geom.Metal(1)})
	s.CreateMatrix(nil)
	// No CreateGraph call: no edges at all, so every non-source cell is unreached.
	cm, err := DistanceCostMap(s, []rstack.Point3{{X: 0, Y: 0, Z: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cm.Bottom.At(4, 4); got != 0.0 {
		t.Fatalf("unreached cell = %v; want 0.0", got)
	}
}

func TestDistanceCostMapRejectsEmptySources(t *testing.T) {
	s := smallStack(t)
	if _, err := DistanceCostMap(s, nil); err != ErrNoTerminals {
		t.Fatalf("expected ErrNoTerminals, got %v", err)
	}
}
