package apg

import "errors"

var (
	// ErrNoCandidate indicates a pin's access-point enumeration produced no
	// candidate nodes at all (distinct from ErrClaimFailed: this means the
	// geometry gave nothing to try).
	ErrNoCandidate = errors.New("apg: pin has no candidate access points")

	// ErrClaimFailed indicates every candidate node was unusable (blocked or
	// occupied by another net); the caller escalates to the next metal.
	ErrClaimFailed = errors.New("apg: no usable access node for pin")

	// ErrInvalidRef indicates a Ref pointed outside the Registry's bounds.
	ErrInvalidRef = errors.New("apg: invalid grid reference")
)
