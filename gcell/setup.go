package gcell

import (
	"sort"

	"github.com/vlsirt/routecore/apg"
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/rstack"
)

// GridPair is the (X, Y) track-grid pair for one metal, used by the
// placement stages to enumerate candidate access points.
type GridPair struct {
	X, Y geom.TrackGrid
}

// Obstacle is one blockage to punch into the APG before any pin claim.
type Obstacle struct {
	Rect        geom.Rect
	Metal       geom.Metal
	ViaBlockage bool
}

// InnerPinSpec names one pin to place strictly inside this GCell.
type InnerPinSpec struct {
	Pin *design.Pin
	Net string
}

// CrossPinSpec names one boundary pin to place.
type CrossPinSpec struct {
	Pin *design.Pin
	Net string
}

// BetweenStackSpec names one synthetic bottom/top pin pair bridging two
// adjacent stacks for a single net.
type BetweenStackSpec struct {
	Net         string
	Bottom, Top *design.Pin
}

// SetupObstacles applies every design-level blockage to the GCell's APG
// before any pin claim runs, per spec §4.4 step (a).
func (c *GCell) SetupObstacles(reg *apg.Registry, obstacles []Obstacle) error {
	if c.State != Created {
		return ErrStateOrder
	}
	g, err := reg.Get(c.APGRef)
	if err != nil {
		return err
	}
	for _, o := range obstacles {
		if err := g.AddObstacle(o.Rect, o.Metal, o.ViaBlockage, reg); err != nil {
			return err
		}
	}
	c.State = Obstacled
	return nil
}

// SetupInnerPins places every inner pin, sorted by descending candidate
// access-point count on baseMetal (pins with the most candidates first,
// spec §4.4 step (b)). On
// a claim failure it escalates the pin to the next routing metal (+2),
// retrying up to topMetal; exhaustion is recorded as a PinUnplaceable
// failure and the GCell continues.
func (c *GCell) SetupInnerPins(reg *apg.Registry, specs []InnerPinSpec, grids map[geom.Metal]GridPair, baseMetal, topMetal geom.Metal) error {
	if c.State != Obstacled {
		return ErrStateOrder
	}
	g, err := reg.Get(c.APGRef)
	if err != nil {
		return err
	}

	type scored struct {
		spec  InnerPinSpec
		count int
	}
	ranked := make([]scored, 0, len(specs))
	for _, s := range specs {
		gp, ok := grids[baseMetal]
		if !ok {
			continue
		}
		rect, ok := portBounds(s.Pin, baseMetal)
		if !ok {
			c.fail(s.Net, design.ErrNoAccessPoints)
			continue
		}
		pts, ok := geom.AccessPoints(gp.X, gp.Y, rect)
		count := 0
		if ok {
			count = len(pts)
		}
		ranked = append(ranked, scored{spec: s, count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].count > ranked[j].count })

	for _, sc := range ranked {
		s := sc.spec
		placed := false
		for metal := baseMetal; metal <= topMetal; metal += 2 {
			gp, ok := grids[metal]
			if !ok {
				continue
			}
			rect, ok := portBounds(s.Pin, metal)
			if !ok {
				continue
			}
			pts, ok := geom.AccessPoints(gp.X, gp.Y, rect)
			if !ok {
				continue
			}
			if _, err := g.AddPin(s.Pin, pts, metal, reg); err == nil {
				placed = true
				c.InnerPins = append(c.InnerPins, s.Pin)
				c.PinMetal[s.Pin] = metal
				c.growNetBounds(s.Net, rect)
				break
			}
		}
		if !placed {
			c.fail(s.Net, design.ErrPinUnplaceable)
		}
	}

	c.State = InnerPlaced
	return nil
}

// SetupCrossPins places every boundary pin, sorted by descending
// is_placed (mirror-first, per spec §4.4 step (c) and Testable Property
// on cross-pin mirroring).
func (c *GCell) SetupCrossPins(reg *apg.Registry, specs []CrossPinSpec, grids map[geom.Metal]GridPair, metal geom.Metal) error {
	if c.State != InnerPlaced {
		return ErrStateOrder
	}
	g, err := reg.Get(c.APGRef)
	if err != nil {
		return err
	}

	sort.SliceStable(specs, func(i, j int) bool { return specs[i].Pin.Placed && !specs[j].Pin.Placed })

	gp, ok := grids[metal]
	for _, s := range specs {
		if !ok {
			c.fail(s.Net, design.ErrNoAccessPoints)
			continue
		}
		rect, ok := portBounds(s.Pin, metal)
		if !ok {
			c.fail(s.Net, design.ErrNoAccessPoints)
			continue
		}
		pts, ok := geom.AccessPoints(gp.X, gp.Y, rect)
		if !ok {
			c.fail(s.Net, design.ErrNoAccessPoints)
			continue
		}
		if _, err := g.AddCrossPin(s.Pin, pts, metal, reg); err != nil {
			c.fail(s.Net, design.ErrCrossPinUnplaceable)
			continue
		}
		c.CrossPins = append(c.CrossPins, s.Pin)
		c.PinMetal[s.Pin] = metal
		c.growNetBounds(s.Net, rect)
	}

	c.State = CrossPlaced
	return nil
}

// SetupBetweenStackPins inserts the synthetic pin pairs that bridge
// adjacent stacks for nets spanning more than one stack in this GCell, per
// spec §4.3's between-stack claim rule: candidates are the net's existing
// bounding box expanded by one grid step and clipped to the GCell.
func (c *GCell) SetupBetweenStackPins(reg *apg.Registry, specs []BetweenStackSpec, grids map[geom.Metal]GridPair, metal geom.Metal) error {
	if c.State != CrossPlaced {
		return ErrStateOrder
	}
	g, err := reg.Get(c.APGRef)
	if err != nil {
		return err
	}
	gp, ok := grids[metal]

	for _, s := range specs {
		bounds, haveBounds := c.NetBounds[s.Net]
		if !haveBounds {
			bounds = c.Box
		}
		if !ok {
			c.fail(s.Net, design.ErrNoAccessPoints)
			continue
		}
		expanded := bounds.Expand(gp.X.Step).Clip(c.Box)
		pts, ok2 := geom.AccessPoints(gp.X, gp.Y, expanded)
		if !ok2 {
			c.fail(s.Net, design.ErrNoAccessPoints)
			continue
		}
		pt, err := g.AddBetweenStackPin(s.Bottom, s.Top, pts)
		if err != nil {
			c.fail(s.Net, design.ErrBetweenStackUnplaceable)
			continue
		}
		s.Bottom.Center, s.Bottom.Placed = [2]float64{pt.X, pt.Y}, true
		s.Top.Center, s.Top.Placed = [2]float64{pt.X, pt.Y}, true
		c.BetweenStackPins = append(c.BetweenStackPins, [2]*design.Pin{s.Bottom, s.Top})
	}

	c.State = BetweenStacksPlaced
	return nil
}

// SetupStacks realizes one rstack.Stack per (bottom, top) metal pair: its
// matrix (terminals from this GCell's placed pins) and its track graph
// (obstacles pulled from the APG), per spec §4.4 step (e) and §4.5's
// matrix-sizing formula.
func (c *GCell) SetupStacks(reg *apg.Registry, specs []StackSpec, grids map[StackSpec]GridPair, terminalsByStack map[StackSpec][]rstack.Terminal) error {
	if c.State != BetweenStacksPlaced {
		return ErrStateOrder
	}
	g, err := reg.Get(c.APGRef)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		gp := grids[spec]
		st := rstack.NewStack(spec.Bottom, spec.Top, gp.X, gp.Y)
		st.CreateMatrix(terminalsByStack[spec])

		var obstacles []geom.Rect
		for _, pt := range g.GetObstacles(spec.Bottom) {
			obstacles = append(obstacles, geom.NewRect(pt.X, pt.Y, pt.X, pt.Y, spec.Bottom))
		}
		for _, pt := range g.GetObstacles(spec.Top) {
			obstacles = append(obstacles, geom.NewRect(pt.X, pt.Y, pt.X, pt.Y, spec.Top))
		}
		st.CreateGraph(obstacles)

		c.Stacks = append(c.Stacks, st)
	}

	c.State = StacksRealized
	return nil
}

func (c *GCell) growNetBounds(net string, r geom.Rect) {
	cur, ok := c.NetBounds[net]
	if !ok {
		c.NetBounds[net] = r
		return
	}
	c.NetBounds[net] = geom.NewRect(
		minF(cur.Min.X, r.Min.X), minF(cur.Min.Y, r.Min.Y),
		maxF(cur.Max.X, r.Max.X), maxF(cur.Max.Y, r.Max.Y),
		cur.Metal,
	)
}
