package router

import "github.com/vlsirt/routecore/rstack"

// MultiTerminalPath connects every terminal into one tree by repeatedly
// running A* from each already-connected terminal to each unconnected
// terminal and keeping the shortest path found, per Algorithms.hpp's
// AStar outer loop. Every coordinate the
// winning path touches is folded into the shared blocked set before the
// next terminal is sought, so later segments route around earlier ones
// (the original's "post-pass committing touched nodes to the obstacle
// set"). blocked is read and extended in place, so a map reused across
// nets (as routecore.Pipeline.RouteNets does per stack) makes later nets
// avoid earlier nets' paths.
func MultiTerminalPath(g *rstack.Graph, terminals []rstack.Point3, blocked map[rstack.Point3]bool, opts ...Option) ([]rstack.Point3, error) {
	if len(terminals) < 2 {
		return nil, ErrEmptyTerminals
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if blocked == nil {
		blocked = make(map[rstack.Point3]bool)
	}

	connected := []rstack.Point3{terminals[0]}
	remaining := append([]rstack.Point3(nil), terminals[1:]...)
	var full []rstack.Point3
	full = append(full, terminals[0])

	for len(remaining) > 0 {
		bestRemIdx := -1
		var bestPath []rstack.Point3

		for ri, t := range remaining {
			for _, from := range connected {
				path, err := findPath(g, from, t, blocked, cfg)
				if err != nil {
					continue
				}
				if bestPath == nil || len(path) < len(bestPath) {
					bestPath = path
					bestRemIdx = ri
				}
			}
		}
		if bestRemIdx == -1 {
			return nil, ErrNoPath
		}

		for _, p := range bestPath {
			blocked[p] = true
		}
		full = append(full, bestPath[1:]...)
		connected = append(connected, remaining[bestRemIdx])
		remaining = append(remaining[:bestRemIdx], remaining[bestRemIdx+1:]...)
	}

	return full, nil
}
