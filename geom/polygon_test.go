package geom

import "testing"

func TestRectCanonicalization(t *testing.T) {
	r := NewRect(5, 5, 1, 1, Metal(1))
	if r.Min.X != 1 || r.Max.X != 5 || r.Min.Y != 1 || r.Max.Y != 5 {
		t.Fatalf("NewRect did not canonicalize: %+v", r)
	}
}

func TestRectCenterInBBox(t *testing.T) {
	r := NewRect(0, 0, 10, 4, Metal(0))
	c := r.Center()
	if c.X < r.Min.X || c.X > r.Max.X || c.Y < r.Min.Y || c.Y > r.Max.Y {
		t.Fatalf("center %+v outside bbox %+v", c, r)
	}
}

func TestPolygonAreaNonNegative(t *testing.T) {
	p := FromRect(NewRect(0, 0, 3, 2, Metal(0)))
	if p.Area() < 0 {
		t.Fatalf("area must be non-negative, got %v", p.Area())
	}
	if p.Area() != 6 {
		t.Fatalf("area = %v; want 6", p.Area())
	}
}

func TestPolygonCenterInBBox(t *testing.T) {
	p := FromRect(NewRect(0, 0, 4, 4, Metal(0)))
	c, err := p.Center()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _ := p.BoundingRect()
	if c.X < r.Min.X || c.X > r.Max.X {
		t.Fatalf("center %+v not in bbox %+v", c, r)
	}
}

func TestIntersectsClosure(t *testing.T) {
	a := FromRect(NewRect(0, 0, 4, 4, Metal(0)))
	b := FromRect(NewRect(2, 2, 6, 6, Metal(0)))
	if !Intersects(a, b) {
		t.Fatalf("expected overlapping rects to intersect")
	}
	inter, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inter.Area() <= 0 {
		t.Fatalf("intersects but intersect area = %v", inter.Area())
	}
}

func TestIntersectsDisjoint(t *testing.T) {
	a := FromRect(NewRect(0, 0, 1, 1, Metal(0)))
	b := FromRect(NewRect(5, 5, 6, 6, Metal(0)))
	if Intersects(a, b) {
		t.Fatalf("disjoint rects should not intersect")
	}
}

func TestIntersectsEdgeTouch(t *testing.T) {
	a := FromRect(NewRect(0, 0, 2, 2, Metal(0)))
	b := FromRect(NewRect(2, 0, 4, 2, Metal(0)))
	if !Intersects(a, b) {
		t.Fatalf("edge-touching rects should be reported as intersecting")
	}
}

func TestContains(t *testing.T) {
	p := FromRect(NewRect(0, 0, 10, 10, Metal(0)))
	if !p.Contains(Point{5, 5}) {
		t.Fatalf("expected (5,5) inside polygon")
	}
	if p.Contains(Point{20, 20}) {
		t.Fatalf("expected (20,20) outside polygon")
	}
}

func TestUnionCoversBoth(t *testing.T) {
	a := FromRect(NewRect(0, 0, 2, 2, Metal(0)))
	b := FromRect(NewRect(4, 4, 6, 6, Metal(0)))
	u, err := Union(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _ := u.BoundingRect()
	if r.Min.X != 0 || r.Min.Y != 0 || r.Max.X != 6 || r.Max.Y != 6 {
		t.Fatalf("union bbox = %+v; want (0,0)-(6,6)", r)
	}
}
