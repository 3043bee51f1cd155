package routecore

import (
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/gcell"
	"github.com/vlsirt/routecore/geom"
)

// routable reports whether a pin's use class is admitted for routing per
// spec §6: only SIGNAL and CLOCK pins are classified and placed; POWER and
// GROUND become obstacles instead (see SetupObstacles).
func routable(use design.PinUse) bool {
	return use == design.UseSignal || use == design.UseClock
}

// portRect bounds pp's point list, ignoring any other ports of the pin it
// belongs to.
func portRect(pp design.PortPoly) (geom.Rect, bool) {
	if len(pp.Points) == 0 {
		return geom.Rect{}, false
	}
	pts := make([]geom.Point, len(pp.Points))
	for i, p := range pp.Points {
		pts[i] = geom.Point{X: p[0], Y: p[1]}
	}
	r, err := geom.NewPolygon(geom.Metal(pp.Metal), pts).BoundingRect()
	if err != nil {
		return geom.Rect{}, false
	}
	return r, true
}

// pinBBox unions the bounding rects of every port of pin, across metals,
// used only to shortlist candidate GCells before the metal-aware
// classification pass.
func pinBBox(pin *design.Pin) (geom.Rect, bool) {
	found := false
	var out geom.Rect
	for _, pp := range pin.Ports {
		r, ok := portRect(pp)
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = geom.NewRect(
			minF(out.Min.X, r.Min.X), minF(out.Min.Y, r.Min.Y),
			maxF(out.Max.X, r.Max.X), maxF(out.Max.Y, r.Max.Y),
			out.Metal,
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

// collectObstacles buckets every POWER/GROUND port and every pin's own
// obstacle polygon by the GCell(s) it overlaps, per spec §3 ("POWER/GROUND
// polygons become obstacles") and §4.4's per-pin bookkeeping note.
func (p *Pipeline) collectObstacles() map[[2]int][]gcell.Obstacle {
	out := make(map[[2]int][]gcell.Obstacle)
	addRect := func(rect geom.Rect, metal geom.Metal) {
		for key, gc := range p.GCells {
			if gc.Box.Overlaps(rect) {
				out[key] = append(out[key], gcell.Obstacle{Rect: rect, Metal: metal})
			}
		}
	}
	for _, pin := range p.Data.Pins {
		if pin.Use == design.UsePower || pin.Use == design.UseGround {
			for _, pp := range pin.Ports {
				if r, ok := portRect(pp); ok {
					addRect(r, geom.Metal(pp.Metal))
				}
			}
		}
		for _, pp := range pin.Obstacles {
			if r, ok := portRect(pp); ok {
				addRect(r, geom.Metal(pp.Metal))
			}
		}
	}
	return out
}

// SetupObstacles applies every design-level blockage to each GCell's APG,
// spec §4.4 step (a).
func (p *Pipeline) SetupObstacles() error {
	if p.stage != stageGCellsFilled {
		return ErrStageOrder
	}
	byGCell := p.collectObstacles()
	for _, gc := range p.orderedGCells() {
		obs := byGCell[[2]int{gc.X, gc.Y}]
		if err := gc.SetupObstacles(p.Reg, obs); err != nil {
			return err
		}
	}
	p.stage = stageObstacled
	return nil
}

// classify buckets every routable net's pins by GCell and Kind, shortlisted
// by bounding-box overlap before the exact per-metal Classify check.
func (p *Pipeline) classify(kind gcell.Kind) map[[2]int][]struct {
	Pin *design.Pin
	Net string
} {
	out := make(map[[2]int][]struct {
		Pin *design.Pin
		Net string
	})
	for _, net := range p.Data.Nets {
		for _, pinName := range net.Pins {
			pin, ok := p.Data.Pins[pinName]
			if !ok || !routable(pin.Use) {
				continue
			}
			bbox, ok := pinBBox(pin)
			if !ok {
				continue
			}
			for _, gc := range p.GCells {
				if !gc.Box.Overlaps(bbox) {
					continue
				}
				if gcell.Classify(pin, gc.Box) != kind {
					continue
				}
				key := [2]int{gc.X, gc.Y}
				out[key] = append(out[key], struct {
					Pin *design.Pin
					Net string
				}{pin, net.Name})
			}
		}
	}
	return out
}

// SetupInnerPins classifies and places every inner pin, per spec §4.4
// step (b): descending access-point count within each GCell, escalating
// through routing metals on failure.
func (p *Pipeline) SetupInnerPins() error {
	if p.stage != stageObstacled {
		return ErrStageOrder
	}
	bucket := p.classify(gcell.KindInner)
	for _, gc := range p.orderedGCells() {
		var specs []gcell.InnerPinSpec
		for _, e := range bucket[[2]int{gc.X, gc.Y}] {
			specs = append(specs, gcell.InnerPinSpec{Pin: e.Pin, Net: e.Net})
		}
		grids := make(map[geom.Metal]gcell.GridPair)
		for metal := p.BaseMetal; metal <= p.TopMetal; metal += 2 {
			gp, err := p.gridPair(metal, gc.Box)
			if err != nil {
				continue
			}
			grids[metal] = gp
		}
		if err := gc.SetupInnerPins(p.Reg, specs, grids, p.BaseMetal, p.TopMetal); err != nil {
			return err
		}
	}
	p.Summary.AddFailures(p.allFailures())
	p.stage = stageInnerPlaced
	return nil
}

// SetupCrossPins classifies and places every boundary pin on BaseMetal,
// per spec §4.4 step (c). GCell.SetupCrossPins itself sorts mirror-first
// (descending is_placed).
func (p *Pipeline) SetupCrossPins() error {
	if p.stage != stageInnerPlaced {
		return ErrStageOrder
	}
	bucket := p.classify(gcell.KindCross)
	for _, gc := range p.orderedGCells() {
		var specs []gcell.CrossPinSpec
		for _, e := range bucket[[2]int{gc.X, gc.Y}] {
			specs = append(specs, gcell.CrossPinSpec{Pin: e.Pin, Net: e.Net})
		}
		gp, err := p.gridPair(p.BaseMetal, gc.Box)
		if err != nil {
			return err
		}
		grids := map[geom.Metal]gcell.GridPair{p.BaseMetal: gp}
		if err := gc.SetupCrossPins(p.Reg, specs, grids, p.BaseMetal); err != nil {
			return err
		}
	}
	p.Summary.AddFailures(p.allFailures())
	p.stage = stageCrossPlaced
	return nil
}

// stackIndexForMetal returns the index into p.Stacks covering metal m.
func (p *Pipeline) stackIndexForMetal(m geom.Metal) (int, bool) {
	for i, s := range p.Stacks {
		if s.Bottom == m || s.Top == m {
			return i, true
		}
	}
	return 0, false
}

// netStackIndices returns the set of stack indices any of net's pins'
// ports fall on, across the whole design (not just one GCell) — the
// simplest available proxy for "which stacks this net's pins span",
// since design.Pin does not record which GCell claimed it.
func (p *Pipeline) netStackIndices(net design.Net) map[int]bool {
	idx := make(map[int]bool)
	for _, pinName := range net.Pins {
		pin, ok := p.Data.Pins[pinName]
		if !ok {
			continue
		}
		for _, pp := range pin.Ports {
			if i, ok := p.stackIndexForMetal(geom.Metal(pp.Metal)); ok {
				idx[i] = true
			}
		}
	}
	return idx
}

// SetupBetweenStackPins inserts the synthetic bottom/top pin pair for
// every net that both touches a GCell (has recorded net bounds there) and
// spans two adjacent stacks, per spec §4.3's between-stack claim rule.
func (p *Pipeline) SetupBetweenStackPins() error {
	if p.stage != stageCrossPlaced {
		return ErrStageOrder
	}
	for _, gc := range p.orderedGCells() {
		var specs []gcell.BetweenStackSpec
		for _, net := range p.Data.Nets {
			if _, ok := gc.NetBounds[net.Name]; !ok {
				continue
			}
			idx := p.netStackIndices(net)
			for i := 0; i+1 < len(p.Stacks); i++ {
				if !idx[i] || !idx[i+1] {
					continue
				}
				bottom := &design.Pin{Name: net.Name + "/bs_lo", Use: design.UseSignal}
				top := &design.Pin{Name: net.Name + "/bs_hi", Use: design.UseSignal}
				specs = append(specs, gcell.BetweenStackSpec{Net: net.Name, Bottom: bottom, Top: top})
				gc.PinMetal[bottom] = p.Stacks[i].Top
				gc.PinMetal[top] = p.Stacks[i+1].Bottom
				p.syntheticNet[bottom] = net.Name
				p.syntheticNet[top] = net.Name
			}
		}
		gp, err := p.gridPair(p.BaseMetal, gc.Box)
		if err != nil {
			return err
		}
		grids := map[geom.Metal]gcell.GridPair{p.BaseMetal: gp}
		if err := gc.SetupBetweenStackPins(p.Reg, specs, grids, p.BaseMetal); err != nil {
			return err
		}
	}
	p.Summary.AddFailures(p.allFailures())
	p.stage = stageBetweenStacksPlaced
	return nil
}

// allFailures gathers every GCell's recoverable failures not yet flushed
// into the Summary this call. Since Failures only ever grows, the caller
// invokes this once per stage rather than once per GCell to avoid
// re-reporting the same entries.
func (p *Pipeline) allFailures() []gcell.Failure {
	var out []gcell.Failure
	seen := make(map[[2]int]int)
	for _, f := range p.Summary.Failures {
		seen[[2]int{f.GCellX, f.GCellY}]++
	}
	for _, gc := range p.orderedGCells() {
		key := [2]int{gc.X, gc.Y}
		already := seen[key]
		if already >= len(gc.Failures) {
			continue
		}
		out = append(out, gc.Failures[already:]...)
	}
	return out
}
