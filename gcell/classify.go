package gcell

import (
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
)

// Kind is the classification spec §4 assigns a pin relative to its
// enclosing GCell: strictly inside, on the boundary (degenerate along one
// axis), or outside (not this GCell's concern).
type Kind int

const (
	KindInner Kind = iota
	KindCross
	KindOutside
)

// Classify applies spec §4's inner/cross rule: a pin is cross if its
// bounding rect on any routing metal is degenerate (zero width or height)
// and lies on box's boundary; inner if fully contained in box (a degenerate
// rect off the boundary also counts as inner); outside otherwise.
func Classify(pin *design.Pin, box geom.Rect) Kind {
	sawAny := false
	for _, pp := range pin.Ports {
		r, ok := portBounds(pin, geom.Metal(pp.Metal))
		if !ok {
			continue
		}
		sawAny = true
		if !box.Overlaps(r) {
			continue
		}
		if r.Degenerate() && onBoundary(r, box) {
			return KindCross
		}
		if contains(box, r) {
			return KindInner
		}
	}
	if !sawAny {
		return KindOutside
	}
	return KindOutside
}

func onBoundary(r, box geom.Rect) bool {
	const eps = geom.Epsilon
	return absDiff(r.Min.X, box.Min.X) < eps || absDiff(r.Max.X, box.Max.X) < eps ||
		absDiff(r.Min.Y, box.Min.Y) < eps || absDiff(r.Max.Y, box.Max.Y) < eps
}

func contains(box, r geom.Rect) bool {
	return r.Min.X >= box.Min.X && r.Max.X <= box.Max.X && r.Min.Y >= box.Min.Y && r.Max.Y <= box.Max.Y
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
