package geom

import "math"

// TrackGrid is a regular 1-D grid over one axis for one metal: legal
// coordinates are start + k*step for 0 <= k <= floor((end-start)/step).
// Grounded on AccessPointGrid.hpp's project_single_coord/project_coordinate
// and spec §3/§4.2.
type TrackGrid struct {
	Start, End, Step float64
	Metal            Metal
}

// NewTrackGrid validates and constructs a TrackGrid.
func NewTrackGrid(start, end, step float64, metal Metal) (TrackGrid, error) {
	if step <= 0 {
		return TrackGrid{}, ErrBadStep
	}
	if end < start {
		return TrackGrid{}, ErrBadRange
	}
	return TrackGrid{Start: start, End: end, Step: step, Metal: metal}, nil
}

// Count returns the number of grid lines on this axis.
func (g TrackGrid) Count() int {
	return int(math.Floor((g.End-g.Start)/g.Step)) + 1
}

// Project rounds v to the nearest legal grid coordinate and clamps it to
// the first or last legal coordinate, so the result always lies in
// [Start, End]. Idempotent: Project(Project(v)) == Project(v).
func (g TrackGrid) Project(v float64) float64 {
	k := math.Round((v - g.Start) / g.Step)
	if k < 0 {
		k = 0
	}
	if last := float64(g.Count() - 1); k > last {
		k = last
	}
	return g.Start + k*g.Step
}

// ProjectIndex returns the grid-line index of v after projection.
func (g TrackGrid) ProjectIndex(v float64) int {
	return int(math.Round((g.Project(v) - g.Start) / g.Step))
}

// ProjectThroughStack projects v iteratively from the source metal's grid
// down through each subsequent coarser grid to the base metal, per spec
// §4.2 ("apply projection iteratively from the source metal down to the
// base metal").
func ProjectThroughStack(v float64, grids []TrackGrid) float64 {
	for _, g := range grids {
		v = g.Project(v)
	}
	return v
}

// AccessPoints enumerates every grid point between the projections of
// rect's corners (each corner rounded to its nearest grid line, so a rect
// narrower than a pitch still yields its nearest grid point), classified
// into outer (on rect's boundary) and inner (every other enumerated
// point, including any that rounding placed outside rect). Per spec §4.2:
// "Return inner set if non-empty, else outer set." An empty result on
// both signals ErrNoAccessPoints to the caller (apg/gcell), which is fatal
// for that pin.
func AccessPoints(gx, gy TrackGrid, rect Rect) (points []Point, ok bool) {
	var inner, outer []Point
	loX, hiX := gx.ProjectIndex(rect.Min.X), gx.ProjectIndex(rect.Max.X)
	loY, hiY := gy.ProjectIndex(rect.Min.Y), gy.ProjectIndex(rect.Max.Y)
	for ix := loX; ix <= hiX; ix++ {
		for iy := loY; iy <= hiY; iy++ {
			x := gx.Start + float64(ix)*gx.Step
			y := gy.Start + float64(iy)*gy.Step
			pt := Point{x, y}
			onBoundary := math.Abs(x-rect.Min.X) < Epsilon || math.Abs(x-rect.Max.X) < Epsilon ||
				math.Abs(y-rect.Min.Y) < Epsilon || math.Abs(y-rect.Max.Y) < Epsilon
			if onBoundary {
				outer = append(outer, pt)
			} else {
				inner = append(inner, pt)
			}
		}
	}
	if len(inner) > 0 {
		return inner, true
	}
	if len(outer) > 0 {
		return outer, true
	}
	return nil, false
}
