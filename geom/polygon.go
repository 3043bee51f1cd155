package geom

import "math"

// Extremes returns the top-left (min x, min y) and bottom-right (max x,
// max y) corners of p's bounding box. Grounded on Geometry.hpp's
// get_extrem_points.
func (p Polygon) Extremes() (topLeft, bottomRight Point, err error) {
	if len(p.Points) < 3 {
		return Point{}, Point{}, ErrEmptyPolygon
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Point{minX, minY}, Point{maxX, maxY}, nil
}

// BoundingRect returns p's axis-aligned bounding rectangle.
func (p Polygon) BoundingRect() (Rect, error) {
	tl, br, err := p.Extremes()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Min: tl, Max: br, Metal: p.Metal}, nil
}

// Center returns the centroid of p's bounding rectangle — spec §4.1
// explicitly calls out that this is *not* the true polygon centroid.
func (p Polygon) Center() (Point, error) {
	r, err := p.BoundingRect()
	if err != nil {
		return Point{}, err
	}
	return r.Center(), nil
}

// Area returns p's area via the shoelace formula.
func (p Polygon) Area() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Points[i].X*p.Points[j].Y - p.Points[j].X*p.Points[i].Y
	}
	return math.Abs(sum) / 2
}

// Contains reports whether pt lies inside p (ray-casting point-in-polygon).
// Grounded on Geometry.hpp's probe_point.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := p.Points[i], p.Points[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xcross := pj.X + (pt.Y-pj.Y)/(pi.Y-pj.Y)*(pi.X-pj.X)
			if pt.X < xcross {
				inside = !inside
			}
		}
	}
	return inside
}

// Translate returns p moved by d. Grounded on Geometry.hpp's move_by.
func (p Polygon) Translate(d Point) Polygon {
	out := Polygon{Metal: p.Metal, Points: make([]Point, len(p.Points))}
	for i, pt := range p.Points {
		out.Points[i] = pt.Add(d)
	}
	return out
}

// Scale returns p scaled by f about the origin. Grounded on
// Geometry.hpp's scale_by.
func (p Polygon) Scale(f float64) Polygon {
	out := Polygon{Metal: p.Metal, Points: make([]Point, len(p.Points))}
	for i, pt := range p.Points {
		out.Points[i] = pt.Scale(f)
	}
	return out
}

// clipEdge runs one Sutherland–Hodgman clip pass of subject against the
// half-plane defined by (a, b, inside).
func clipEdge(subject []Point, a, b Point, inside func(Point) bool) []Point {
	if len(subject) == 0 {
		return nil
	}
	var out []Point
	n := len(subject)
	for i := 0; i < n; i++ {
		cur := subject[i]
		prev := subject[(i-1+n)%n]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, segmentIntersect(prev, cur, a, b))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, segmentIntersect(prev, cur, a, b))
		}
	}
	return out
}

// segmentIntersect returns the intersection of line p0-p1 with the
// infinite line through a-b (used only for the axis-aligned clip edges
// this domain's rectilinear polygons actually present).
func segmentIntersect(p0, p1, a, b Point) Point {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	ex, ey := b.X-a.X, b.Y-a.Y
	denom := dx*ey - dy*ex
	if math.Abs(denom) < 1e-12 {
		return p0
	}
	t := ((a.X-p0.X)*ey - (a.Y-p0.Y)*ex) / denom
	return Point{p0.X + t*dx, p0.Y + t*dy}
}

// Intersect returns the intersection of p and q as a new (possibly empty)
// polygon, clipping p against q's bounding rectangle edges. Grounded on
// Geometry.hpp's operator-, redesigned per DESIGN NOTES §9 as a pure
// function instead of an overloaded operator.
func Intersect(p, q Polygon) (Polygon, error) {
	clipRect, err := q.BoundingRect()
	if err != nil {
		return Polygon{}, err
	}
	subject := p.Points
	subject = clipEdge(subject, Point{clipRect.Min.X, 0}, Point{clipRect.Min.X, 1}, func(pt Point) bool { return pt.X >= clipRect.Min.X-Epsilon })
	subject = clipEdge(subject, Point{clipRect.Max.X, 0}, Point{clipRect.Max.X, 1}, func(pt Point) bool { return pt.X <= clipRect.Max.X+Epsilon })
	subject = clipEdge(subject, Point{0, clipRect.Min.Y}, Point{1, clipRect.Min.Y}, func(pt Point) bool { return pt.Y >= clipRect.Min.Y-Epsilon })
	subject = clipEdge(subject, Point{0, clipRect.Max.Y}, Point{1, clipRect.Max.Y}, func(pt Point) bool { return pt.Y <= clipRect.Max.Y+Epsilon })
	if len(subject) == 0 {
		return Polygon{Metal: p.Metal}, nil
	}
	return Polygon{Metal: p.Metal, Points: subject}, nil
}

// Union returns the bounding rectangle of p's and q's bounding rectangles
// as a new polygon. This equals the true union only when the two
// rectangles together form a rectangle; for disjoint or L-shaped pairs the
// result also covers area that belongs to neither. See DESIGN.md.
func Union(p, q Polygon) (Polygon, error) {
	rp, err := p.BoundingRect()
	if err != nil {
		return q, nil
	}
	rq, err := q.BoundingRect()
	if err != nil {
		return p, nil
	}
	merged := Rect{
		Min:   Point{math.Min(rp.Min.X, rq.Min.X), math.Min(rp.Min.Y, rq.Min.Y)},
		Max:   Point{math.Max(rp.Max.X, rq.Max.X), math.Max(rp.Max.Y, rq.Max.Y)},
		Metal: p.Metal,
	}
	return FromRect(merged), nil
}

// Intersects reports whether p and q share positive area or touch along an
// edge (colinear-edge-touch), per spec §4.1.
func Intersects(p, q Polygon) bool {
	rp, err1 := p.BoundingRect()
	rq, err2 := q.BoundingRect()
	if err1 != nil || err2 != nil {
		return false
	}
	if !rp.Overlaps(rq) {
		return false
	}
	inter, err := Intersect(p, q)
	if err != nil {
		return false
	}
	if len(inter.Points) >= 3 {
		return true
	}
	// Colinear-edge-touch fallback: bounding rects overlap but the clip
	// degenerated to a line or point (shared boundary, zero area).
	return rp.Overlaps(rq)
}
