package costmap

import (
	"container/heap"

	"github.com/katalvlaran/lvlath/core"
	"github.com/vlsirt/routecore/rstack"
)

// Anisotropic edge-cost parameters, spec §4.8, grounded on
// Process.hpp's distance_cost_map: lambdaDetour penalizes straying from
// the terminal's ideal monotone path, muAlignment penalizes leaving the
// terminal's row/column, and viaCost is the flat layer-switch charge
// (Process.hpp's switch_cost) added on top rather than run through the
// detour/alignment formula.
const (
	lambdaDetour = 0.125
	muAlignment  = 1.0
	viaCost      = 2.0
)

// nodeItem represents a graph vertex, its current distance from the
// nearest source, and which source that distance is measured from, for
// the lazy-decrease-key priority queue.
type nodeItem struct {
	id     string
	dist   float64
	source rstack.Point3
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// runner holds the mutable state of one multi-source Dijkstra pass.
type runner struct {
	rg      *rstack.Graph
	cfg     config
	dist    map[string]float64
	visited map[string]bool
	pq      nodePQ
}

// biasedDist is the source-relative distance compute_edge_cost_horizontal
// /compute_edge_cost_vertical measure along a net's preferred axis: plain
// offset along that axis when p stays aligned with source, else the full
// Manhattan distance plus one, per Process.hpp's d_source_current/
// d_source_neighbor. z selects the axis convention: z=0 tracks move along
// y and align on x, z=1 tracks move along x and align on y, per this
// project's Stack.CreateGraph layer/axis pairing.
func biasedDist(p, source rstack.Point3, z int) float64 {
	dx := abs(p.X - source.X)
	dy := abs(p.Y - source.Y)
	if z == 0 {
		// z=0 moves along y; ideal path holds x fixed at the source's x.
		if p.X == source.X {
			return float64(dy)
		}
		return float64(dx + dy + 1)
	}
	// z=1 moves along x; ideal path holds y fixed at the source's y.
	if p.Y == source.Y {
		return float64(dx)
	}
	return float64(dx + dy + 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// aligned reports whether neighbor stays on source's ideal row/column for
// the movement axis current and neighbor share (current.Z == neighbor.Z).
func aligned(neighbor, source rstack.Point3, z int) bool {
	if z == 0 {
		return neighbor.X == source.X
	}
	return neighbor.Y == source.Y
}

// edgeCost computes one track or via edge's anisotropic routing cost, per
// spec §4.8. Via edges (same x,y, differing z) take the flat viaCost.
// Track edges take the detour/alignment formula, measured against source
// — the terminal current's winning path descends from, not current
// itself. An optional usage-weighted congestion penalty (this domain's
// own addition, absent from Process.hpp) scales the result uniformly.
func edgeCost(rg *rstack.Graph, e *core.Edge, cfg config, source, current, neighbor rstack.Point3) float64 {
	var base float64
	if current.X == neighbor.X && current.Y == neighbor.Y && current.Z != neighbor.Z {
		base = viaCost
	} else {
		detour := biasedDist(neighbor, source, current.Z) - biasedDist(current, source, current.Z)
		costDistance := 1.0 + lambdaDetour*detour
		a := 0.0
		if aligned(neighbor, source, current.Z) {
			a = 1.0
		}
		costDirection := 1.0 + muAlignment*(1.0-a)
		base = costDistance * costDirection
	}

	s := rg.State(e.ID)
	if !cfg.congestion || s == nil {
		return base
	}
	return base * (1 + cfg.congestionWeight*float64(s.Usage))
}

// multiSourceDijkstra computes, for every graph vertex reachable from any
// of sources, its minimum distance to the nearest source, labeling each
// settled vertex with the source that distance descends from so edgeCost
// can measure detour/alignment against the right terminal.
func multiSourceDijkstra(rg *rstack.Graph, sources []rstack.Point3, cfg config) map[string]float64 {
	r := &runner{
		rg:      rg,
		cfg:     cfg,
		dist:    make(map[string]float64),
		visited: make(map[string]bool),
	}
	for _, s := range sources {
		id := rstack.VertexID(s)
		if cur, ok := r.dist[id]; !ok || 0 < cur {
			r.dist[id] = 0
		}
		heap.Push(&r.pq, &nodeItem{id: id, dist: 0, source: s})
	}

	g := r.rg.Underlying()
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.dist[u] {
			continue
		}
		r.visited[u] = true

		up, err := rstack.ParsePoint3(u)
		if err != nil {
			continue
		}
		edges, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range edges {
			v := e.To
			if e.From != u {
				v = e.From
			}
			vp, err := rstack.ParsePoint3(v)
			if err != nil {
				continue
			}
			nd := r.dist[u] + edgeCost(r.rg, e, cfg, item.source, up, vp)
			if cur, ok := r.dist[v]; !ok || nd < cur {
				r.dist[v] = nd
				heap.Push(&r.pq, &nodeItem{id: v, dist: nd, source: item.source})
			}
		}
	}
	return r.dist
}
