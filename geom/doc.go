// Package geom implements the spatial primitives the rest of this module
// builds on: points, axis-aligned rectangles, simple rectilinear polygons
// with boolean operations, and the regular per-metal track grids pins and
// obstacles are projected onto.
//
// Every polygon produced or consumed anywhere in this module's domain
// (DEF ports, obstacles, GCell boxes) is rectilinear, so Intersect is
// implemented with a Sutherland–Hodgman-style clip against a bounding
// rectangle, Intersects tests bounding-rectangle overlap, and Union merges
// bounding rectangles, rather than using a general-purpose clipping
// library — see DESIGN.md for why no
// third-party polygon library was wired in instead.
package geom
