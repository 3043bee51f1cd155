// Package rstack implements the per-layer-pair routing matrix and the
// track graph derived from it.
//
// Grounded on Src/Include/DEF/Stack.hpp (CreateMatrix, CreateGraph),
// Src/Include/Matrix.hpp (flat row-major storage; this domain's matrix
// holds small Cell values so it is backed by []uint8 rather than the
// header's double* — the cost-map encoder's float64 distance fields are a
// separate type, costmap.Layer), and Src/Include/Graph.hpp/Graph.cpp
// (weighted, symmetric adjacency with base_cost/usage/capacity/history
// per edge). The package name avoids colliding with the standard
// library's stack/queue connotation — it names the GCell's layer-pair
// stack, not a LIFO.
package rstack
