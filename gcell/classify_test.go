package gcell

import (
	"testing"

	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
)

func TestClassifyInner(t *testing.T) {
	box := geom.NewRect(0, 0, 10, 10, geom.Metal(1))
	pin := &design.Pin{Ports: []design.PortPoly{{
		Metal:  1,
		Points: [][2]float64{{4, 4}, {6, 4}, {6, 6}, {4, 6}},
	}}}
	if got := Classify(pin, box); got != KindInner {
		t.Fatalf("Classify = %v; want KindInner", got)
	}
}

func TestClassifyCross(t *testing.T) {
	box := geom.NewRect(0, 0, 10, 10, geom.Metal(1))
	pin := &design.Pin{Ports: []design.PortPoly{{
		Metal:  1,
		Points: [][2]float64{{10, 4}, {10, 4}, {10, 6}, {10, 6}},
	}}}
	if got := Classify(pin, box); got != KindCross {
		t.Fatalf("Classify = %v; want KindCross", got)
	}
}

func TestClassifyOutside(t *testing.T) {
	box := geom.NewRect(0, 0, 10, 10, geom.Metal(1))
	pin := &design.Pin{Ports: []design.PortPoly{{
		Metal:  1,
		Points: [][2]float64{{20, 20}, {22, 20}, {22, 22}, {20, 22}},
	}}}
	if got := Classify(pin, box); got != KindOutside {
		t.Fatalf("Classify = %v; want KindOutside", got)
	}
}
