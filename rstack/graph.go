package rstack

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// ParsePoint3 recovers the matrix coordinate encoded by VertexID.
func ParsePoint3(id string) (Point3, error) {
	var p Point3
	_, err := fmt.Sscanf(id, "%d,%d,%d", &p.X, &p.Y, &p.Z)
	return p, err
}

// EdgeState carries the mutable routing fields the teacher's core.Edge has
// no room for: base_cost, usage, capacity and history, per Graph.hpp/Graph.cpp.
type EdgeState struct {
	BaseCost float64
	Usage    int64
	Capacity int64
	History  int64
}

// Graph wraps a core.Graph with a per-edge side table of routing state.
// Vertex IDs are "x,y,z" coordinate strings; an edge's ID (assigned by
// core.Graph.AddEdge) indexes into state.
type Graph struct {
	g     *core.Graph
	state map[string]*EdgeState
}

// NewGraph builds an empty, undirected, weighted track graph.
func NewGraph() *Graph {
	return &Graph{
		g:     core.NewGraph(core.WithWeighted()),
		state: make(map[string]*EdgeState),
	}
}

// VertexID formats a matrix coordinate as a core.Graph vertex ID.
func VertexID(p Point3) string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// AddNode ensures a vertex exists for the given coordinate. Idempotent.
func (rg *Graph) AddNode(p Point3) {
	id := VertexID(p)
	if !rg.g.HasVertex(id) {
		_ = rg.g.AddVertex(id)
	}
}

// AddTrackEdge connects two adjacent track coordinates with the given base
// cost, per Stack::create_graph's search_direction edge-building.
func (rg *Graph) AddTrackEdge(a, b Point3, baseCost float64) error {
	rg.AddNode(a)
	rg.AddNode(b)
	eid, err := rg.g.AddEdge(VertexID(a), VertexID(b), int64(baseCost))
	if err != nil {
		return err
	}
	rg.state[eid] = &EdgeState{BaseCost: baseCost, Capacity: 1}
	return nil
}

// Neighbors returns the edges incident to the coordinate's vertex.
func (rg *Graph) Neighbors(p Point3) ([]*core.Edge, error) {
	return rg.g.Neighbors(VertexID(p))
}

// EdgeBetween returns the edge connecting a and b, if any.
func (rg *Graph) EdgeBetween(a, b Point3) (*core.Edge, error) {
	edges, err := rg.g.Neighbors(VertexID(a))
	if err != nil {
		return nil, err
	}
	bid := VertexID(b)
	for _, e := range edges {
		if e.From == bid || e.To == bid {
			return e, nil
		}
	}
	return nil, ErrEdgeNotFound
}

// State returns the routing side-state for an edge ID.
func (rg *Graph) State(edgeID string) *EdgeState {
	return rg.state[edgeID]
}

// AddCost adds delta to an edge's usage-derived cost, per Graph::add_cost.
func (rg *Graph) AddCost(edgeID string, delta int64) {
	if s, ok := rg.state[edgeID]; ok {
		s.Usage += delta
	}
}

// ZeroCost resets an edge's usage to zero, recording the prior value in
// History, per Graph::zero_cost.
func (rg *Graph) ZeroCost(edgeID string) {
	if s, ok := rg.state[edgeID]; ok {
		s.History += s.Usage
		s.Usage = 0
	}
}

// RestoreCost replays an edge's history back into usage, per
// Graph::restore_cost — used when a failed route must be rolled back.
func (rg *Graph) RestoreCost(edgeID string) {
	if s, ok := rg.state[edgeID]; ok {
		s.Usage += s.History
		s.History = 0
	}
}

// Underlying exposes the wrapped core.Graph for algorithms (A*, BFS) that
// only need topology, not routing state.
func (rg *Graph) Underlying() *core.Graph {
	return rg.g
}
