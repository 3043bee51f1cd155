package geom

import "math"

// Epsilon is the tolerance used for colinearity and equality tests on
// floating-point coordinates, per spec §4.1.
const Epsilon = 1e-4

// Metal is a discrete ordered routing-layer kind. Even indices are via
// layers between adjacent odd-indexed routing layers; parity of a routing
// layer's index determines its preferred direction (even→horizontal,
// odd→vertical), per spec §3.
type Metal int

// Point is a real-valued 2D coordinate.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by f about the origin.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Rect is an axis-aligned rectangle, canonicalized so Min <= Max on both
// axes (spec §3: "a rectangle's 4 vertices are canonicalized").
type Rect struct {
	Min, Max Point
	Metal    Metal
}

// NewRect canonicalizes two arbitrary corners into a Rect.
func NewRect(x0, y0, x1, y1 float64, metal Metal) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Point{x0, y0}, Max: Point{x1, y1}, Metal: metal}
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the rectangle's centroid.
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Degenerate reports whether the rectangle has zero extent on at least one
// axis — the shape a cross pin's port takes (spec §4.4: "single-point ports").
func (r Rect) Degenerate() bool {
	return math.Abs(r.Width()) < Epsilon || math.Abs(r.Height()) < Epsilon
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Overlaps reports whether r and o share positive area or touch along an edge.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X+Epsilon && o.Min.X <= r.Max.X+Epsilon &&
		r.Min.Y <= o.Max.Y+Epsilon && o.Min.Y <= r.Max.Y+Epsilon
}

// Expand returns r grown by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min:   Point{r.Min.X - d, r.Min.Y - d},
		Max:   Point{r.Max.X + d, r.Max.Y + d},
		Metal: r.Metal,
	}
}

// Clip returns r clipped to lie within bound, per axis.
func (r Rect) Clip(bound Rect) Rect {
	out := r
	out.Min.X = math.Max(out.Min.X, bound.Min.X)
	out.Min.Y = math.Max(out.Min.Y, bound.Min.Y)
	out.Max.X = math.Min(out.Max.X, bound.Max.X)
	out.Max.Y = math.Min(out.Max.Y, bound.Max.Y)
	return out
}

// Polygon is a simple (non-self-intersecting) rectilinear polygon, metal
// tagged. Points are stored in order, not necessarily closed (the last
// point connects back to the first).
type Polygon struct {
	Metal  Metal
	Points []Point
}

// NewPolygon copies pts into a new Polygon — deep copy on construction,
// matching the defensive-copy convention gridgraph.NewGridGraph uses for
// its input grid.
func NewPolygon(metal Metal, pts []Point) Polygon {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Polygon{Metal: metal, Points: cp}
}

// FromRect returns the 4-point polygon tracing r's corners.
func FromRect(r Rect) Polygon {
	return Polygon{
		Metal: r.Metal,
		Points: []Point{
			{r.Min.X, r.Min.Y},
			{r.Max.X, r.Min.Y},
			{r.Max.X, r.Max.Y},
			{r.Min.X, r.Max.Y},
		},
	}
}
