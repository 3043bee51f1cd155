package router

import "github.com/vlsirt/routecore/rstack"

// Option configures one MultiTerminalPath/findPath call.
type Option func(*config)

type config struct {
	useEdgeWeight bool
}

func defaultConfig() config {
	return config{useEdgeWeight: false}
}

// WithEdgeWeights switches the inner search's per-hop cost from the
// original's constant 1 to the track graph's stored edge weight. This is
// an opt-in escape hatch: the original AStar inner loop always charges 1
// per hop regardless of edge weight, which this package preserves by
// default.
func WithEdgeWeights() Option {
	return func(c *config) { c.useEdgeWeight = true }
}

// searchNode is one arena slot of a single findPath call.
type searchNode struct {
	pos    rstack.Point3
	g, f   float64
	parent int
	closed bool
}

// pqItem is a priority-queue entry referencing an arena slot by index.
type pqItem struct {
	idx int
	f   float64
}

type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
