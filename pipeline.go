package routecore

import (
	"fmt"
	"sort"

	"github.com/go-logr/logr"

	"github.com/vlsirt/routecore/apg"
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/gcell"
	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/report"
)

// stage is the pipeline's own position in spec §2's control flow, one
// level above gcell.State (which tracks per-GCell progress).
type stage int

const (
	stageCreated stage = iota
	stageGCellsFilled
	stageObstacled
	stageInnerPlaced
	stageCrossPlaced
	stageBetweenStacksPlaced
	stageStacksRealized
	stageRouted
	stageVerified
)

// Pipeline binds the Access-Point Grid, GCell, Stack, router, verifier and
// cost-map packages into the end-to-end flow spec §2 describes: fill
// GCells, apply obstacles, place pins in three escalating stages, realize
// stacks, then per stack route/verify/encode/emit.
//
// Grounded on Process.hpp's top-level driver functions (apply_guide,
// solve_next_stack, make_dataset) for the loop's shape.
type Pipeline struct {
	Log     logr.Logger
	Reg     *apg.Registry
	Data    *design.Data
	Summary *report.Summary

	// BaseMetal/TopMetal bound the inner-pin metal-escalation search of
	// spec §4.4 step (b). Stacks names every adjacent layer-pair a GCell
	// routes, in bottom-to-top order.
	BaseMetal, TopMetal geom.Metal
	Stacks              []gcell.StackSpec

	GCells map[[2]int]*gcell.GCell

	// Routes and CostMaps accumulate RouteNets/EncodeCostMaps output,
	// keyed loosely (by GCell coordinate, stack index, net name) rather
	// than through a dedicated index, since each stage's consumer only
	// ever scans the whole slice once.
	Routes   []RouteResult
	CostMaps []CostMapResult

	stage stage

	// syntheticNet maps a between-stack pin pair's placeholder pins back
	// to the net name they were synthesized for, since those pins are
	// not present in design.Data.Pins.
	syntheticNet map[*design.Pin]string

	xBounds, yBounds []float64
	metalGridX       map[geom.Metal]geom.TrackGrid
	metalGridY       map[geom.Metal]geom.TrackGrid
}

// NewPipeline constructs a Pipeline ready for FillGCells. log is the
// collaborator handle threaded into every GCell this pipeline creates;
// stacks must be given bottom-to-top (index i's Top metal feeds index
// i+1's Bottom metal for between-stack synthesis).
func NewPipeline(log logr.Logger, data *design.Data, baseMetal, topMetal geom.Metal, stacks []gcell.StackSpec) *Pipeline {
	return &Pipeline{
		Log:       log,
		Reg:       apg.NewRegistry(),
		Data:      data,
		Summary:   report.New(),
		BaseMetal: baseMetal,
		TopMetal:  topMetal,
		Stacks:       stacks,
		GCells:       make(map[[2]int]*gcell.GCell),
		syntheticNet: make(map[*design.Pin]string),
	}
}

// gridBoundaries expands a list of (start, step, count) runs into the n+1
// coordinate boundaries of n concatenated cells.
func gridBoundaries(runs []design.GridRun) []float64 {
	if len(runs) == 0 {
		return nil
	}
	bounds := []float64{float64(runs[0].Start)}
	for _, r := range runs {
		for k := 1; k <= r.Count; k++ {
			bounds = append(bounds, float64(r.Start+r.Step*k))
		}
	}
	return bounds
}

// buildMetalGrids derives one die-wide TrackGrid per (metal, axis) from
// design.Data.Tracks, per spec §4.2's TrackGrid(metal) entity.
func (p *Pipeline) buildMetalGrids() error {
	p.metalGridX = make(map[geom.Metal]geom.TrackGrid)
	p.metalGridY = make(map[geom.Metal]geom.TrackGrid)
	for _, t := range p.Data.Tracks {
		m := geom.Metal(t.Metal)
		if t.Count <= 0 || t.Step <= 0 {
			return fmt.Errorf("%w: track spec for metal %d", design.ErrInputMalformed, t.Metal)
		}
		end := t.Start + t.Step*(t.Count-1)
		g, err := geom.NewTrackGrid(float64(t.Start), float64(end), float64(t.Step), m)
		if err != nil {
			return fmt.Errorf("%w: track spec for metal %d", design.ErrInputMalformed, t.Metal)
		}
		if t.Axis == design.AxisX {
			p.metalGridX[m] = g
		} else {
			p.metalGridY[m] = g
		}
	}
	return nil
}

// clippedGrid restricts metal m's die-wide grid on one axis to box,
// keeping the grid's absolute phase so neighbor GCells agree on legal
// coordinates (required for the cross-pin boundary mirror of spec §4.3).
// A metal missing tracks on the requested axis falls back to BaseMetal's
// grid on that axis, since DEF sources sometimes state only one axis's
// pitch explicitly for a given layer.
func (p *Pipeline) clippedGrid(m geom.Metal, axis design.Axis, box geom.Rect) (geom.TrackGrid, error) {
	var global geom.TrackGrid
	var ok bool
	var lo, hi float64
	if axis == design.AxisX {
		global, ok = p.metalGridX[m]
		lo, hi = box.Min.X, box.Max.X
	} else {
		global, ok = p.metalGridY[m]
		lo, hi = box.Min.Y, box.Max.Y
	}
	if !ok {
		if axis == design.AxisX {
			global, ok = p.metalGridX[p.BaseMetal]
		} else {
			global, ok = p.metalGridY[p.BaseMetal]
		}
		if !ok {
			return geom.TrackGrid{}, fmt.Errorf("%w: no track grid for metal %d", design.ErrInputMalformed, m)
		}
	}
	start := global.Project(lo)
	end := global.Project(hi)
	if end < start {
		end = start
	}
	return geom.NewTrackGrid(start, end, global.Step, m)
}

// gridPair builds the (X, Y) GridPair a GCell's placement stages need for
// one metal, clipped to box.
func (p *Pipeline) gridPair(m geom.Metal, box geom.Rect) (gcell.GridPair, error) {
	gx, err := p.clippedGrid(m, design.AxisX, box)
	if err != nil {
		return gcell.GridPair{}, err
	}
	gy, err := p.clippedGrid(m, design.AxisY, box)
	if err != nil {
		return gcell.GridPair{}, err
	}
	return gcell.GridPair{X: gx, Y: gy}, nil
}

// stackMetals returns every distinct metal named across p.Stacks.
func (p *Pipeline) stackMetals() []geom.Metal {
	seen := make(map[geom.Metal]bool)
	var out []geom.Metal
	add := func(m geom.Metal) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	add(p.BaseMetal)
	for _, s := range p.Stacks {
		add(s.Bottom)
		add(s.Top)
	}
	return out
}

// FillGCells partitions the die into a grid of GCells per design.Data's
// GridX/GridY runs, each owning a freshly registered APG sized from
// BaseMetal's track grid, then links every pair of horizontally/vertically
// adjacent GCells' APGs so cross-pin claims can mirror across the
// boundary. Spec §2 step 1.
func (p *Pipeline) FillGCells() error {
	if p.stage != stageCreated {
		return ErrStageOrder
	}
	p.xBounds = gridBoundaries(p.Data.GridX)
	p.yBounds = gridBoundaries(p.Data.GridY)
	if len(p.xBounds) < 2 || len(p.yBounds) < 2 {
		return ErrEmptyGCellGrid
	}
	if err := p.buildMetalGrids(); err != nil {
		return err
	}

	nx, ny := len(p.xBounds)-1, len(p.yBounds)-1
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			box := geom.NewRect(p.xBounds[ix], p.yBounds[iy], p.xBounds[ix+1], p.yBounds[iy+1], p.BaseMetal)
			base, err := p.gridPair(p.BaseMetal, box)
			if err != nil {
				return err
			}
			agrid := apg.New(base.X, base.Y)
			ref := p.Reg.Add(agrid)
			p.GCells[[2]int{ix, iy}] = gcell.New(ix, iy, box, ref, p.Log)
		}
	}

	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			gc := p.GCells[[2]int{ix, iy}]
			if ix+1 < nx {
				right := p.GCells[[2]int{ix + 1, iy}]
				if err := p.Reg.LinkHorizontal(gc.APGRef, right.APGRef); err != nil {
					return err
				}
			}
			if iy+1 < ny {
				top := p.GCells[[2]int{ix, iy + 1}]
				if err := p.Reg.LinkVertical(top.APGRef, gc.APGRef); err != nil {
					return err
				}
			}
		}
	}

	p.stage = stageGCellsFilled
	return nil
}

// orderedGCells returns every GCell in deterministic (x, then y) order,
// the iteration order every later stage relies on for stable output.
func (p *Pipeline) orderedGCells() []*gcell.GCell {
	out := make([]*gcell.GCell, 0, len(p.GCells))
	for _, gc := range p.GCells {
		out = append(out, gc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// gcellAt returns the GCell overlapping design-unit coordinate (x, y), or
// nil if it falls outside every GCell's box.
func (p *Pipeline) gcellAt(x, y float64) *gcell.GCell {
	for _, gc := range p.GCells {
		if x >= gc.Box.Min.X && x <= gc.Box.Max.X && y >= gc.Box.Min.Y && y <= gc.Box.Max.Y {
			return gc
		}
	}
	return nil
}
