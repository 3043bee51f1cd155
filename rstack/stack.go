package rstack

import (
	"github.com/vlsirt/routecore/geom"
)

// Stack is a GCell's routing surface for one adjacent metal-layer pair: a
// Cell matrix plus the track graph derived from it, grounded on
// Src/Include/DEF/Stack.hpp's create_matrix/create_graph pair.
type Stack struct {
	Bottom, Top geom.Metal
	GX, GY      geom.TrackGrid
	Matrix      *Matrix
	Graph       *Graph
	Terminals   []Terminal
}

// NewStack derives a Stack's matrix shape from two orthogonal track grids.
// gx spans the X axis (vertical tracks), gy spans the Y axis (horizontal
// tracks); CrossPinPadding widens both to absorb cross-pin overflow at the
// grid's maximum coordinate.
func NewStack(bottom, top geom.Metal, gx, gy geom.TrackGrid) *Stack {
	shape := Shape{
		X: gx.Count() + CrossPinPadding,
		Y: gy.Count() + CrossPinPadding,
		Z: 2,
	}
	return &Stack{
		Bottom: bottom,
		Top:    top,
		GX:     gx,
		GY:     gy,
		Matrix: NewMatrix(shape),
		Graph:  NewGraph(),
	}
}

// CreateMatrix marks terminal cells for every access point assigned to
// this stack's layer pair, per Stack::create_matrix. z selects the plane:
// 0 for the bottom metal, 1 for the top metal.
func (s *Stack) CreateMatrix(terminals []Terminal) {
	s.Terminals = terminals
	for _, t := range terminals {
		s.Matrix.SetAt(t.Pos.X, t.Pos.Y, t.Pos.Z, Terminal)
	}
}

// CreateGraph builds the track graph over the matrix's coordinate space,
// skipping any edge with an endpoint inside an obstacle rect on that
// endpoint's plane's metal. Each
// plane (z=0, z=1) connects along its own axis — horizontal tracks on
// z=0, vertical tracks on z=1 — and a via edge joins same-(x,y) nodes
// across the two planes, per Stack::create_graph's search_direction and
// via-insertion logic.
func (s *Stack) CreateGraph(obstacles []geom.Rect) {
	blocked := func(x, y, z int) bool {
		m := s.Bottom
		if z == 1 {
			m = s.Top
		}
		pt := geom.Point{X: float64(x), Y: float64(y)}
		for _, r := range obstacles {
			if r.Metal != m {
				continue
			}
			if pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y {
				return true
			}
		}
		return false
	}

	for x := 0; x < s.Matrix.Shape.X; x++ {
		for y := 0; y < s.Matrix.Shape.Y; y++ {
			for z := 0; z < 2; z++ {
				if blocked(x, y, z) {
					continue
				}
				here := Point3{X: x, Y: y, Z: z}

				// z==0 routes along Y (horizontal metal); z==1 routes along X.
				if z == 0 {
					if ny := y + 1; ny < s.Matrix.Shape.Y && !blocked(x, ny, z) {
						_ = s.Graph.AddTrackEdge(here, Point3{X: x, Y: ny, Z: z}, 1)
					}
				} else {
					if nx := x + 1; nx < s.Matrix.Shape.X && !blocked(nx, y, z) {
						_ = s.Graph.AddTrackEdge(here, Point3{X: nx, Y: y, Z: z}, 1)
					}
				}

				// Via edge between the two planes at the same (x, y).
				if z == 0 && !blocked(x, y, 1) {
					_ = s.Graph.AddTrackEdge(here, Point3{X: x, Y: y, Z: 1}, 1)
				}
			}
		}
	}
}
