package rstack

// Cell is a routing-matrix cell value, per spec §3's Matrix invariant:
// cell ∈ {EMPTY, PATH, TERMINAL}.
type Cell uint8

const (
	Empty Cell = iota
	Path
	Terminal
)

// CrossPinPadding reserves extra matrix width/height for cross-pin
// overflow at the grid's maximum coordinate, per spec §4.5 (PAD=2).
const CrossPinPadding = 2

// Shape is a matrix's (X, Y, Z) extent. Z is always 2 for a routing
// matrix (one plane per layer of the stack).
type Shape struct {
	X, Y, Z int
}

// Point3 is a matrix coordinate.
type Point3 struct {
	X, Y, Z int
}

// Terminal is a net's access point realized as a matrix coordinate —
// spec §3's "Terminal (in Stack)". Pos is taken as given; no axis-parity
// offset is applied to it by this package or by routecore.Pipeline.
type Terminal struct {
	Net    string
	Pos    Point3
	Source Point3 // routecore.Pipeline.SetupStacks sets this equal to Pos; costmap takes its sources from Pos
}
