// Package router implements multi-terminal minimum-cost pathfinding over a
// Stack's track graph, grounded on Src/Include/Algorithms.hpp's AStar class:
// a nearest-unvisited-terminal outer loop wrapping a per-pair A* inner
// search.
//
// The inner search uses a flat, per-call arena of search nodes addressed by
// index rather than the original's heap-allocated Node chain (DESIGN NOTES
// §9's arena strategy for cyclic/pointer-heavy structures). Each A* call
// owns its arena; nothing survives across calls.
package router
