package routecore

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/vlsirt/routecore/costmap"
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/gcell"
	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/report"
	"github.com/vlsirt/routecore/router"
	"github.com/vlsirt/routecore/rstack"
	"github.com/vlsirt/routecore/verify"
)

// pinNetIndex maps every design pin to the net it belongs to, including
// the synthetic between-stack placeholders recorded during
// SetupBetweenStackPins.
func (p *Pipeline) pinNetIndex() map[*design.Pin]string {
	idx := make(map[*design.Pin]string, len(p.Data.Pins)+len(p.syntheticNet))
	for _, net := range p.Data.Nets {
		for _, pinName := range net.Pins {
			if pin, ok := p.Data.Pins[pinName]; ok {
				idx[pin] = net.Name
			}
		}
	}
	for pin, net := range p.syntheticNet {
		idx[pin] = net
	}
	return idx
}

// stackSpecFor returns the StackSpec metal m belongs to and which plane
// (0 for Bottom, 1 for Top) it occupies.
func (p *Pipeline) stackSpecFor(m geom.Metal) (gcell.StackSpec, int, bool) {
	for _, s := range p.Stacks {
		if s.Bottom == m {
			return s, 0, true
		}
		if s.Top == m {
			return s, 1, true
		}
	}
	return gcell.StackSpec{}, 0, false
}

// stackGridPair builds the (gx, gy) pair rstack.NewStack expects for spec:
// gx from the Top (vertical-track) metal's X grid, gy from the Bottom
// (horizontal-track) metal's Y grid, both clipped to box.
func (p *Pipeline) stackGridPair(spec gcell.StackSpec, box geom.Rect) (gcell.GridPair, error) {
	gx, err := p.clippedGrid(spec.Top, design.AxisX, box)
	if err != nil {
		return gcell.GridPair{}, err
	}
	gy, err := p.clippedGrid(spec.Bottom, design.AxisY, box)
	if err != nil {
		return gcell.GridPair{}, err
	}
	return gcell.GridPair{X: gx, Y: gy}, nil
}

// SetupStacks realizes every GCell's per-layer-pair Stack (matrix +
// track graph), per spec §4.4 step (e). Every placed pin (inner, cross,
// and the between-stack synthetic pairs) becomes a rstack.Terminal on the
// stack its claimed metal belongs to.
func (p *Pipeline) SetupStacks() error {
	if p.stage != stageBetweenStacksPlaced {
		return ErrStageOrder
	}
	netOf := p.pinNetIndex()

	for _, gc := range p.orderedGCells() {
		grids := make(map[gcell.StackSpec]gcell.GridPair, len(p.Stacks))
		for _, spec := range p.Stacks {
			gp, err := p.stackGridPair(spec, gc.Box)
			if err != nil {
				return err
			}
			grids[spec] = gp
		}

		terminalsByStack := make(map[gcell.StackSpec][]rstack.Terminal)
		allPins := make([]*design.Pin, 0, len(gc.InnerPins)+len(gc.CrossPins)+2*len(gc.BetweenStackPins))
		allPins = append(allPins, gc.InnerPins...)
		allPins = append(allPins, gc.CrossPins...)
		for _, pair := range gc.BetweenStackPins {
			allPins = append(allPins, pair[0], pair[1])
		}

		for _, pin := range allPins {
			metal, ok := gc.PinMetal[pin]
			if !ok {
				continue
			}
			spec, z, ok := p.stackSpecFor(metal)
			if !ok {
				continue
			}
			gp := grids[spec]
			ix, iy := gp.X.ProjectIndex(pin.Center[0]), gp.Y.ProjectIndex(pin.Center[1])
			pos := rstack.Point3{X: ix, Y: iy, Z: z}
			terminalsByStack[spec] = append(terminalsByStack[spec], rstack.Terminal{
				Net:    netOf[pin],
				Pos:    pos,
				Source: pos,
			})
		}

		if err := gc.SetupStacks(p.Reg, p.Stacks, grids, terminalsByStack); err != nil {
			return err
		}
	}

	p.stage = stageStacksRealized
	return nil
}

// groupTerminalsByNet partitions a stack's terminal list by net name, in
// a deterministic net-name order.
func groupTerminalsByNet(terms []rstack.Terminal) ([]string, map[string][]rstack.Terminal) {
	byNet := make(map[string][]rstack.Terminal)
	for _, t := range terms {
		byNet[t.Net] = append(byNet[t.Net], t)
	}
	nets := make([]string, 0, len(byNet))
	for n := range byNet {
		nets = append(nets, n)
	}
	sort.Strings(nets)
	return nets, byNet
}

// RouteResult is one net's committed path within one GCell's stack.
type RouteResult struct {
	GCellX, GCellY int
	StackIndex     int
	Net            string
	Path           []rstack.Point3
	Terminals      []rstack.Point3
}

// RouteNets runs the multi-terminal A* router over every stack's nets, in
// net-name order, committing each winning path's nodes to a per-stack
// obstacle set before the next net — spec §4.6's "every node touched by
// the path joins obs, so subsequent nets avoid them". A net the router
// cannot connect is recorded as a RoutingInfeasible failure and the
// remaining nets in the stack still proceed, per spec §7.
func (p *Pipeline) RouteNets() error {
	if p.stage != stageStacksRealized {
		return ErrStageOrder
	}
	p.Routes = nil

	for _, gc := range p.orderedGCells() {
		for si, st := range gc.Stacks {
			nets, byNet := groupTerminalsByNet(st.Terminals)
			obs := make(map[rstack.Point3]bool)

			for _, net := range nets {
				terms := byNet[net]
				pts := make([]rstack.Point3, len(terms))
				for i, t := range terms {
					pts[i] = t.Pos
				}
				if len(pts) < 2 {
					continue
				}
				path, err := router.MultiTerminalPath(st.Graph, pts, obs)
				if err != nil {
					gc.Failures = append(gc.Failures, gcell.Failure{
						GCellX: gc.X, GCellY: gc.Y, Net: net,
						Cause: fmt.Errorf("%w: %v", design.ErrRoutingInfeasible, err),
					})
					p.Log.Error(err, "routing infeasible", "gcell_x", gc.X, "gcell_y", gc.Y, "net", net)
					continue
				}
				for _, pt := range path {
					if st.Matrix.GetAt(pt.X, pt.Y, pt.Z) == rstack.Empty {
						st.Matrix.SetAt(pt.X, pt.Y, pt.Z, rstack.Path)
					}
				}
				p.Routes = append(p.Routes, RouteResult{GCellX: gc.X, GCellY: gc.Y, StackIndex: si, Net: net, Path: path, Terminals: pts})
			}
		}
	}

	p.Summary.AddFailures(p.allFailures())
	p.stage = stageRouted
	return nil
}

// netPathMatrix renders one net's own committed path into a dense (Y,X)
// grid for the verifier: 1 where the path occupies a single plane at
// (x,y), 2 where it uses both planes there (a via), per spec §4.7's
// layer-toggle convention.
func netPathMatrix(shape rstack.Shape, path []rstack.Point3) [][]float64 {
	grid := make([][]float64, shape.Y)
	for y := range grid {
		grid[y] = make([]float64, shape.X)
	}
	planes := make(map[[2]int][2]bool)
	for _, pt := range path {
		key := [2]int{pt.X, pt.Y}
		s := planes[key]
		s[pt.Z] = true
		planes[key] = s
	}
	for k, s := range planes {
		v := 1.0
		if s[0] && s[1] {
			v = 2.0
		}
		grid[k[1]][k[0]] = v
	}
	return grid
}

// Verify scores every routed stack's connectivity and cycle-freedom, one
// verify.Batch entry per (GCell, stack), and folds the aggregate score
// into the Summary's per-stack results, per spec §4.7.
func (p *Pipeline) Verify(workers int) error {
	if p.stage != stageRouted {
		return ErrStageOrder
	}

	type stackKey struct {
		gx, gy, si int
	}
	routesByStack := make(map[stackKey][]RouteResult)
	for _, r := range p.Routes {
		k := stackKey{r.GCellX, r.GCellY, r.StackIndex}
		routesByStack[k] = append(routesByStack[k], r)
	}

	for _, gc := range p.orderedGCells() {
		for si, st := range gc.Stacks {
			k := stackKey{gc.X, gc.Y, si}
			routes := routesByStack[k]
			if len(routes) == 0 {
				continue
			}
			batch := verify.Batch{
				Nets:      [][][][]float64{make([][][]float64, len(routes))},
				Terminals: [][][]verify.Terminal{make([][]verify.Terminal, len(routes))},
			}
			for ni, r := range routes {
				batch.Nets[0][ni] = netPathMatrix(st.Matrix.Shape, r.Path)
				batch.Terminals[0][ni] = netTerminals(r.Terminals)
			}
			result, err := verify.Check(batch, workers)
			if err != nil {
				return err
			}

			// Nets with fewer than two terminals are never routed by
			// RouteNets, so only the rest count toward NetsUnrouted.
			routable := 0
			_, byNet := groupTerminalsByNet(st.Terminals)
			for _, terms := range byNet {
				if len(terms) >= 2 {
					routable++
				}
			}

			p.Summary.AddStackResult(report.StackResult{
				GCellX: gc.X, GCellY: gc.Y,
				Bottom: int(st.Bottom), Top: int(st.Top),
				NetsRouted:    len(routes),
				NetsUnrouted:  routable - len(routes),
				VerifierScore: result.Overall,
				Perfect:       result.General == 1.0,
			})
		}
	}

	p.stage = stageVerified
	return nil
}

// netTerminals converts a net's committed rstack terminal points into the
// (x, y, layer) triples verify.traverseAndCheck's BFS starts from and must
// prove fully reachable.
func netTerminals(pts []rstack.Point3) []verify.Terminal {
	terms := make([]verify.Terminal, len(pts))
	for i, pt := range pts {
		terms[i] = verify.Terminal{X: pt.X, Y: pt.Y, Layer: pt.Z}
	}
	return terms
}

// CostMapResult is one net's encoded cost-map pair within one GCell's stack.
type CostMapResult struct {
	GCellX, GCellY int
	StackIndex     int
	Net            string
	Map            costmap.CostMap
}

// EncodeCostMaps runs the multi-source Dijkstra encoder over every net's
// terminal set in every routed stack, spec §4.8. Nets with fewer than two
// terminals are skipped (their cost map degenerates to a single pinned
// point, not useful training signal).
func (p *Pipeline) EncodeCostMaps(opts ...costmap.Option) error {
	if p.stage != stageVerified {
		return ErrStageOrder
	}
	p.CostMaps = nil

	for _, gc := range p.orderedGCells() {
		for si, st := range gc.Stacks {
			nets, byNet := groupTerminalsByNet(st.Terminals)
			for _, net := range nets {
				terms := byNet[net]
				if len(terms) < 2 {
					continue
				}
				sources := make([]rstack.Point3, len(terms))
				for i, t := range terms {
					sources[i] = t.Pos
				}
				cm, err := costmap.DistanceCostMap(st, sources, opts...)
				if err != nil {
					return fmt.Errorf("costmap: gcell (%d,%d) stack %d net %s: %w", gc.X, gc.Y, si, net, err)
				}
				p.CostMaps = append(p.CostMaps, CostMapResult{GCellX: gc.X, GCellY: gc.Y, StackIndex: si, Net: net, Map: cm})
			}
		}
	}
	return nil
}

// Emit writes one CostMap's two layers to w as row-major (Y,X) float64
// arrays, Bottom then Top, per spec §6's tensor I/O contract. Serializing
// to a particular file format or tensor library is the caller's concern;
// this only guarantees the byte layout.
func Emit(w io.Writer, cm costmap.CostMap) error {
	if err := emitLayer(w, cm.Bottom); err != nil {
		return err
	}
	return emitLayer(w, cm.Top)
}

func emitLayer(w io.Writer, l costmap.Layer) error {
	return binary.Write(w, binary.LittleEndian, l.Data)
}
