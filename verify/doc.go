// Package verify scores routed matrices for connectivity and
// cycle-freedom, grounded on
// Src/App/Python/lib/connectivity/net_connectivity.cpp's
// check_connectivity/traverse_and_check pair.
//
// A Batch holds one path matrix and one terminal list per net per design
// batch entry, shaped (batch, net, y, x) — see DESIGN.md's resolution of
// the source's ambiguous 2-D reuse. Check verifies every net of every
// batch entry independently and in parallel, bounded by a worker pool,
// since each net's traversal touches only its own matrix and terminal
// list, and reduces the per-net verdicts into the two scalar aggregates
// spec §4.7 defines over a batch.
package verify
