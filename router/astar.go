package router

import (
	"container/heap"
	"math"

	"github.com/vlsirt/routecore/rstack"
)

func heuristic(a, b rstack.Point3) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	return float64(dx + dy + dz)
}

func otherEnd(fromID, edgeFrom, edgeTo string) (rstack.Point3, error) {
	to := edgeFrom
	if edgeFrom == fromID {
		to = edgeTo
	}
	return rstack.ParsePoint3(to)
}

// findPath runs a single-pair A* search from start to goal over g's track
// graph, skipping any blocked coordinate other than the goal itself. It
// returns the path as a coordinate sequence including both endpoints.
func findPath(g *rstack.Graph, start, goal rstack.Point3, blocked map[rstack.Point3]bool, cfg config) ([]rstack.Point3, error) {
	arena := make([]searchNode, 0, 64)
	index := make(map[rstack.Point3]int)

	arena = append(arena, searchNode{pos: start, g: 0, f: heuristic(start, goal), parent: -1})
	index[start] = 0

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &pqItem{idx: 0, f: arena[0].f})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		cur := item.idx
		if arena[cur].closed {
			continue
		}
		arena[cur].closed = true

		if arena[cur].pos == goal {
			return reconstruct(arena, cur), nil
		}

		edges, err := g.Neighbors(arena[cur].pos)
		if err != nil {
			continue
		}
		fromID := rstack.VertexID(arena[cur].pos)
		for _, e := range edges {
			npos, err := otherEnd(fromID, e.From, e.To)
			if err != nil {
				continue
			}
			if npos == arena[cur].pos {
				continue
			}
			if blocked[npos] && npos != goal {
				continue
			}

			cost := 1.0
			if cfg.useEdgeWeight {
				cost = float64(e.Weight)
			}
			ng := arena[cur].g + cost

			idx, exists := index[npos]
			if !exists {
				idx = len(arena)
				arena = append(arena, searchNode{pos: npos, g: math.Inf(1), f: math.Inf(1), parent: -1})
				index[npos] = idx
			}
			if ng < arena[idx].g {
				arena[idx].g = ng
				arena[idx].f = ng + heuristic(npos, goal)
				arena[idx].parent = cur
				heap.Push(&pq, &pqItem{idx: idx, f: arena[idx].f})
			}
		}
	}

	return nil, ErrNoPath
}

func reconstruct(arena []searchNode, goalIdx int) []rstack.Point3 {
	var rev []rstack.Point3
	for i := goalIdx; i != -1; i = arena[i].parent {
		rev = append(rev, arena[i].pos)
	}
	path := make([]rstack.Point3, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
