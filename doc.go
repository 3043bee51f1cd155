// Package routecore binds the Access-Point Grid, GCell, Stack, router,
// verifier and cost-map encoder packages into the end-to-end pipeline
// spec §2 describes as prose: fill GCells, apply obstacles, place pins in
// three escalating stages, realize each stack's matrix/graph, then per
// stack route, verify, encode and emit.
//
// Pipeline is the orchestrating type; RouteResult and CostMapResult carry
// its per-stage output, and Emit serializes a cost map. It holds the collaborators the
// pipeline needs (an apg.Registry, a logr.Logger, a *report.Summary) and
// exposes one method per control-flow stage, grounded on Process.hpp's
// top-level driver functions (apply_guide, solve_next_stack, make_dataset)
// for the loop's shape — spec.md itself never names this component.
//
// Parsing LEF/DEF/guide input, PNG emission, and the learning model that
// consumes the encoded cost maps stay out of scope per spec §1; Pipeline
// consumes design.Data/design.GuideNet and emits costmap.CostMap/
// rstack.Stack values, leaving serialization to the caller.
package routecore
