package design

import "errors"

// Sentinel errors forming the closed taxonomy of spec §7. Geometry/grid
// errors (ErrInputNotFound, ErrInputMalformed) propagate immediately.
// Placement/routing errors are recovered into per-GCell failure records by
// the gcell package and routecore.Pipeline.RouteNets rather than returned
// up the call stack.
var (
	// ErrInputNotFound indicates a referenced design/guide/config file is missing.
	ErrInputNotFound = errors.New("design: input not found")

	// ErrInputMalformed indicates a bad token, missing header, or a zero-width
	// target polygon in otherwise-present input.
	ErrInputMalformed = errors.New("design: input malformed")

	// ErrPinUnplaceable indicates an inner pin could not be placed after
	// metal-escalation was exhausted.
	ErrPinUnplaceable = errors.New("design: pin unplaceable")

	// ErrCrossPinUnplaceable indicates a boundary pin could not be placed.
	ErrCrossPinUnplaceable = errors.New("design: cross pin unplaceable")

	// ErrBetweenStackUnplaceable indicates a synthetic between-stack pin pair
	// could not be placed.
	ErrBetweenStackUnplaceable = errors.New("design: between-stack pin unplaceable")

	// ErrNoAccessPoints indicates a port admits no grid point in any mode.
	ErrNoAccessPoints = errors.New("design: no access points for port")

	// ErrRoutingInfeasible indicates the multi-terminal router returned no path.
	ErrRoutingInfeasible = errors.New("design: routing infeasible")
)
