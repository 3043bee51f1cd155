package apg

import (
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
)

// AccessPointGrid is a per-GCell two-axis grid of access nodes: HLines[y]
// holds the nodes along row y (indexed by x), VLines[x] holds the nodes
// along column x (indexed by y) — the same physical node is reachable
// from both, and a claim updates both lines' Assigned counters. Grounded
// on Src/Include/DEF/AccessPointGrid.hpp.
type AccessPointGrid struct {
	GX, GY geom.TrackGrid

	HLines []AccessLine
	VLines []AccessLine

	Left, Right, Top, Bottom Ref

	cost float64
}

// New constructs an AccessPointGrid over (gx, gy). The first and last node
// of every line starts as VIA_BLOCKAGE, modeling the grid-boundary soft
// block the original's constructor preset before any real obstacle or pin
// claim runs.
func New(gx, gy geom.TrackGrid) *AccessPointGrid {
	nx, ny := gx.Count(), gy.Count()
	g := &AccessPointGrid{
		GX: gx, GY: gy,
		HLines: make([]AccessLine, ny),
		VLines: make([]AccessLine, nx),
		Left:   NoRef, Right: NoRef, Top: NoRef, Bottom: NoRef,
	}
	for y := 0; y < ny; y++ {
		g.HLines[y].Nodes = make([]AccessNode, nx)
		presetBoundary(g.HLines[y].Nodes)
	}
	for x := 0; x < nx; x++ {
		g.VLines[x].Nodes = make([]AccessNode, ny)
		presetBoundary(g.VLines[x].Nodes)
	}
	return g
}

func presetBoundary(nodes []AccessNode) {
	if len(nodes) == 0 {
		return
	}
	nodes[0].Status = ViaBlockage
	nodes[len(nodes)-1].Status = ViaBlockage
}

// Cost returns the grid's total cost: the sum of every line's
// heuristic(assigned), per spec §4.3 and the APG cost-consistency
// testable property in spec §8.
func (g *AccessPointGrid) Cost() float64 {
	var total float64
	for i := range g.HLines {
		total += g.HLines[i].Cost()
	}
	for i := range g.VLines {
		total += g.VLines[i].Cost()
	}
	return total
}

func lineHeuristic(assigned int) float64 {
	f := float64(assigned)
	return f * f
}

// isHorizontal applies the metal-parity rule of spec §4.3 to pick which
// line family an obstacle or claim on metal m touches.
func isHorizontal(m geom.Metal) bool { return m%2 == 1 }

// AddObstacle blocks the grid nodes covered by rect on metal m. If
// isViaBlockage, affected nodes become VIA_BLOCKAGE (a softer block);
// otherwise m is added to each affected node's blocked-metal set. Nodes
// at the grid's boundary additionally mirror the block into the
// corresponding neighbor grid's matching line, at that neighbor's node on
// the shared edge, via reg.
func (g *AccessPointGrid) AddObstacle(rect geom.Rect, m geom.Metal, isViaBlockage bool, reg *Registry) error {
	loX, hiX := g.GX.ProjectIndex(rect.Min.X), g.GX.ProjectIndex(rect.Max.X)
	loY, hiY := g.GY.ProjectIndex(rect.Min.Y), g.GY.ProjectIndex(rect.Max.Y)

	apply := func(n *AccessNode) {
		if isViaBlockage {
			n.Status = ViaBlockage
		} else {
			n.block(m)
		}
	}

	if isHorizontal(m) {
		for y := loY; y <= hiY && y < len(g.HLines); y++ {
			line := &g.HLines[y]
			for x := loX; x <= hiX && x < len(line.Nodes); x++ {
				apply(&line.Nodes[x])
				if x == 0 && g.Left != NoRef {
					if err := g.mirrorObstacle(reg, g.Left, y, m, isViaBlockage, true); err != nil {
						return err
					}
				}
				if x == len(line.Nodes)-1 && g.Right != NoRef {
					if err := g.mirrorObstacle(reg, g.Right, y, m, isViaBlockage, true); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	for x := loX; x <= hiX && x < len(g.VLines); x++ {
		line := &g.VLines[x]
		for y := loY; y <= hiY && y < len(line.Nodes); y++ {
			apply(&line.Nodes[y])
			if y == 0 && g.Top != NoRef {
				if err := g.mirrorObstacle(reg, g.Top, x, m, isViaBlockage, false); err != nil {
					return err
				}
			}
			if y == len(line.Nodes)-1 && g.Bottom != NoRef {
				if err := g.mirrorObstacle(reg, g.Bottom, x, m, isViaBlockage, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *AccessPointGrid) mirrorObstacle(reg *Registry, neighbor Ref, idx int, m geom.Metal, isViaBlockage bool, horizontal bool) error {
	ng, err := reg.Get(neighbor)
	if err != nil || ng == nil {
		return err
	}
	var n *AccessNode
	if horizontal {
		if idx >= len(ng.HLines) {
			return nil
		}
		line := &ng.HLines[idx]
		n = &line.Nodes[len(line.Nodes)-1]
		if neighbor == g.Right {
			n = &line.Nodes[0]
		}
	} else {
		if idx >= len(ng.VLines) {
			return nil
		}
		line := &ng.VLines[idx]
		n = &line.Nodes[len(line.Nodes)-1]
		if neighbor == g.Bottom {
			n = &line.Nodes[0]
		}
	}
	if isViaBlockage {
		n.Status = ViaBlockage
	} else {
		n.block(m)
	}
	return nil
}

// claim is the shared commit step for a successful access-node claim: mark
// both crossing nodes OCCUPIED, point them at pin, and bump both lines'
// Assigned counters.
func (g *AccessPointGrid) claim(ix, iy int, pin *design.Pin) {
	h := &g.HLines[iy].Nodes[ix]
	v := &g.VLines[ix].Nodes[iy]
	h.Status = Occupied
	h.Pin = pin
	v.Status = Occupied
	v.Pin = pin
	g.HLines[iy].Assigned++
	g.VLines[ix].Assigned++
}

// AddPin runs the inner-pin claim algorithm (spec §4.3): among candidates
// with both crossing nodes FREE and unblocked for metal m, pick the one
// minimizing heuristic(h.assigned+1)+heuristic(v.assigned+1); failing
// that, retry allowing VIA_BLOCKAGE nodes (and set the line's nearer
// boundary sentinel OCCUPIED, mirrored to the neighbor). Returns the
// claimed point, or ErrClaimFailed if no candidate could be used at all.
func (g *AccessPointGrid) AddPin(pin *design.Pin, candidates []geom.Point, m geom.Metal, reg *Registry) (geom.Point, error) {
	if len(candidates) == 0 {
		return geom.Point{}, ErrNoCandidate
	}

	type cand struct {
		pt     geom.Point
		ix, iy int
		cost   float64
	}

	tryPass := func(allowViaBlockage bool) (cand, bool) {
		best := cand{cost: -1}
		found := false
		for _, pt := range candidates {
			ix := g.GX.ProjectIndex(pt.X)
			iy := g.GY.ProjectIndex(pt.Y)
			if iy < 0 || iy >= len(g.HLines) || ix < 0 || ix >= len(g.VLines) {
				continue
			}
			h := &g.HLines[iy].Nodes[ix]
			v := &g.VLines[ix].Nodes[iy]
			want := Free
			if allowViaBlockage {
				want = ViaBlockage
			}
			if h.Status != want || v.Status != want {
				continue
			}
			if h.Blocks(m) || v.Blocks(m) {
				continue
			}
			c := lineHeuristic(g.HLines[iy].Assigned+1) + lineHeuristic(g.VLines[ix].Assigned+1)
			if !found || c < best.cost {
				best = cand{pt: pt, ix: ix, iy: iy, cost: c}
				found = true
			}
		}
		return best, found
	}

	if best, ok := tryPass(false); ok {
		g.claim(best.ix, best.iy, pin)
		pin.Center = [2]float64{best.pt.X, best.pt.Y}
		pin.Placed = true
		return best.pt, nil
	}

	if best, ok := tryPass(true); ok {
		g.claim(best.ix, best.iy, pin)
		g.markBoundarySentinel(best.ix, best.iy, reg)
		pin.Center = [2]float64{best.pt.X, best.pt.Y}
		pin.Placed = true
		return best.pt, nil
	}

	return geom.Point{}, ErrClaimFailed
}

// markBoundarySentinel sets the nearer boundary sentinel of the claimed
// node's lines to OCCUPIED and mirrors it into the neighbor grid, per the
// inner-pin claim's fallback branch (spec §4.3 step 2).
func (g *AccessPointGrid) markBoundarySentinel(ix, iy int, reg *Registry) {
	hLine := &g.HLines[iy]
	if ix*2 < len(hLine.Nodes) {
		hLine.LeftPin.Status = Occupied
		if g.Left != NoRef {
			if ng, err := reg.Get(g.Left); err == nil && ng != nil && iy < len(ng.HLines) {
				ng.HLines[iy].RightPin.Status = Occupied
			}
		}
	} else {
		hLine.RightPin.Status = Occupied
		if g.Right != NoRef {
			if ng, err := reg.Get(g.Right); err == nil && ng != nil && iy < len(ng.HLines) {
				ng.HLines[iy].LeftPin.Status = Occupied
			}
		}
	}

	vLine := &g.VLines[ix]
	if iy*2 < len(vLine.Nodes) {
		vLine.LeftPin.Status = Occupied
		if g.Top != NoRef {
			if ng, err := reg.Get(g.Top); err == nil && ng != nil && ix < len(ng.VLines) {
				ng.VLines[ix].RightPin.Status = Occupied
			}
		}
	} else {
		vLine.RightPin.Status = Occupied
		if g.Bottom != NoRef {
			if ng, err := reg.Get(g.Bottom); err == nil && ng != nil && ix < len(ng.VLines) {
				ng.VLines[ix].LeftPin.Status = Occupied
			}
		}
	}
}

// AddCrossPin claims a boundary access point for a single-point port pin.
// It prefers a candidate whose horizontal line already has either of its
// boundary sentinels OCCUPIED on this grid, otherwise takes the
// minimum-cost candidate. Which net occupies the sentinel is not checked,
// and the neighbor grid's sentinels are not consulted. On success the pin's Center is
// snapped to the claimed boundary coordinate and Placed is set.
func (g *AccessPointGrid) AddCrossPin(pin *design.Pin, candidates []geom.Point, m geom.Metal, reg *Registry) (geom.Point, error) {
	if len(candidates) == 0 {
		return geom.Point{}, ErrNoCandidate
	}

	type cand struct {
		pt       geom.Point
		ix, iy   int
		cost     float64
		preferred bool
	}
	var best cand
	found := false

	for _, pt := range candidates {
		ix := g.GX.ProjectIndex(pt.X)
		iy := g.GY.ProjectIndex(pt.Y)
		if iy < 0 || iy >= len(g.HLines) || ix < 0 || ix >= len(g.VLines) {
			continue
		}
		h := &g.HLines[iy].Nodes[ix]
		v := &g.VLines[ix].Nodes[iy]
		if h.Status == Occupied && h.Pin != nil && h.Pin != pin {
			continue
		}
		if v.Status == Occupied && v.Pin != nil && v.Pin != pin {
			continue
		}
		if h.Blocks(m) || v.Blocks(m) {
			continue
		}
		preferred := g.HLines[iy].RightPin.Status == Occupied || g.HLines[iy].LeftPin.Status == Occupied
		c := lineHeuristic(g.HLines[iy].Assigned+1) + lineHeuristic(g.VLines[ix].Assigned+1)
		better := !found ||
			(preferred && !best.preferred) ||
			(preferred == best.preferred && c < best.cost)
		if better {
			best = cand{pt: pt, ix: ix, iy: iy, cost: c, preferred: preferred}
			found = true
		}
	}
	if !found {
		return geom.Point{}, ErrClaimFailed
	}

	g.claim(best.ix, best.iy, pin)
	g.markBoundarySentinel(best.ix, best.iy, reg)
	pin.Center = [2]float64{best.pt.X, best.pt.Y}
	pin.Placed = true
	return best.pt, nil
}

// AddBetweenStackPin claims a single shared (x,y) for a synthetic
// bottom/top pin pair spanning two stacks, from the intersection of both
// pins' candidate access points. Commits the bottom pin onto the
// horizontal-line node and the top pin onto the vertical-line node at
// that shared point, modeling the via joining the two stacks there.
func (g *AccessPointGrid) AddBetweenStackPin(bottom, top *design.Pin, shared []geom.Point) (geom.Point, error) {
	if len(shared) == 0 {
		return geom.Point{}, ErrNoCandidate
	}

	type cand struct {
		pt     geom.Point
		ix, iy int
		cost   float64
	}
	var best cand
	found := false

	for _, pt := range shared {
		ix := g.GX.ProjectIndex(pt.X)
		iy := g.GY.ProjectIndex(pt.Y)
		if iy < 0 || iy >= len(g.HLines) || ix < 0 || ix >= len(g.VLines) {
			continue
		}
		h := &g.HLines[iy].Nodes[ix]
		v := &g.VLines[ix].Nodes[iy]
		if h.Status == Occupied && h.Pin != bottom && h.Pin != nil {
			continue
		}
		if v.Status == Occupied && v.Pin != top && v.Pin != nil {
			continue
		}
		c := lineHeuristic(g.HLines[iy].Assigned+1) + lineHeuristic(g.VLines[ix].Assigned+1)
		if !found || c < best.cost {
			best = cand{pt: pt, ix: ix, iy: iy, cost: c}
			found = true
		}
	}
	if !found {
		return geom.Point{}, ErrClaimFailed
	}

	h := &g.HLines[best.iy].Nodes[best.ix]
	v := &g.VLines[best.ix].Nodes[best.iy]
	if h.Status != Occupied {
		h.Status = Occupied
		g.HLines[best.iy].Assigned++
	}
	h.Pin = bottom
	if v.Status != Occupied {
		v.Status = Occupied
		g.VLines[best.ix].Assigned++
	}
	v.Pin = top

	return best.pt, nil
}

// GetObstacles returns every point on metal m's relevant line family whose
// node is blocked (VIA_BLOCKAGE or metal-blocked), for rstack's
// Stack.CreateGraph to leave out of the track graph (via gcell.SetupStacks).
func (g *AccessPointGrid) GetObstacles(m geom.Metal) []geom.Point {
	var out []geom.Point
	if isHorizontal(m) {
		for y, line := range g.HLines {
			for x, n := range line.Nodes {
				if n.Status == ViaBlockage || n.Blocks(m) {
					out = append(out, geom.Point{X: g.GX.Start + float64(x)*g.GX.Step, Y: g.GY.Start + float64(y)*g.GY.Step})
				}
			}
		}
		return out
	}
	for x, line := range g.VLines {
		for y, n := range line.Nodes {
			if n.Status == ViaBlockage || n.Blocks(m) {
				out = append(out, geom.Point{X: g.GX.Start + float64(x)*g.GX.Step, Y: g.GY.Start + float64(y)*g.GY.Step})
			}
		}
	}
	return out
}
