// Package apg implements the Access-Point Grid: per-GCell track-grid
// bookkeeping that claims pins onto grid nodes, tracks obstacle blockage,
// and reconciles boundary claims with neighboring GCells' grids.
//
// Grounded on Src/Include/DEF/AccessPointGrid.hpp. The original links
// neighbor grids with raw pointers that a destructor must unlink; this
// port instead addresses neighbors by Ref, an index into a Registry, per
// DESIGN NOTES §9's arena strategy for cyclic/raw-pointer graphs.
package apg
