package gcell

import (
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
)

// polyToPolygon converts a design-level port polygon into a geom.Polygon.
func polyToPolygon(pp design.PortPoly) geom.Polygon {
	pts := make([]geom.Point, len(pp.Points))
	for i, p := range pp.Points {
		pts[i] = geom.Point{X: p[0], Y: p[1]}
	}
	return geom.NewPolygon(geom.Metal(pp.Metal), pts)
}

// portBounds returns the bounding rect of a pin's ports on metal m, and
// whether any port exists on that metal.
func portBounds(pin *design.Pin, m geom.Metal) (geom.Rect, bool) {
	found := false
	var out geom.Rect
	for _, pp := range pin.Ports {
		if geom.Metal(pp.Metal) != m {
			continue
		}
		poly := polyToPolygon(pp)
		r, err := poly.BoundingRect()
		if err != nil {
			continue
		}
		if !found {
			out = r
			found = true
			continue
		}
		out = geom.NewRect(
			minF(out.Min.X, r.Min.X), minF(out.Min.Y, r.Min.Y),
			maxF(out.Max.X, r.Max.X), maxF(out.Max.Y, r.Max.Y),
			m,
		)
	}
	return out, found
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
