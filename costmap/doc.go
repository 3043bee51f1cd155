// Package costmap encodes a Stack's routed matrix into the per-layer
// distance fields used as learning-component training input, grounded on
// Src/Include/Process.hpp's distance_cost_map and its
// compute_edge_cost_horizontal/compute_edge_cost_vertical helpers.
//
// The encoder runs a multi-source Dijkstra from every terminal
// simultaneously over the Stack's track graph, labeling each settled
// vertex with the terminal its winning path descends from so every edge's
// cost can be measured against that terminal's own row/column, then
// normalizes reached distances into [0, 0.9] (nearest reached distance
// 0.9, farthest 0.0), leaves unreached cells at 0.0, and pins terminal
// cells at 1.0, per spec §4.8. Track edges cost
// (1 + lambdaDetour*detour) * (1 + muAlignment*(1-aligned)); via edges
// (same x,y, differing layer) cost the flat viaCost instead. The
// functional-options/runner/container-heap style is adapted directly
// from the dijkstra package's single-source implementation.
package costmap
