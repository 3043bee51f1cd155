package apg

import (
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
)

// Status is an AccessNode's claim state. The lattice is one-directional
// within a GCell: FREE may become OCCUPIED or VIA_BLOCKAGE; VIA_BLOCKAGE
// may become OCCUPIED through the inner-pin claim's fallback branch, and
// also through AddCrossPin and AddBetweenStackPin, which do not check for
// VIA_BLOCKAGE (boundary nodes start as VIA_BLOCKAGE, see New).
type Status int

const (
	Free Status = iota
	Occupied
	ViaBlockage
)

// AccessNode is one claimable slot on a grid line.
type AccessNode struct {
	Status        Status
	Pin           *design.Pin
	BlockedMetals map[geom.Metal]struct{}
}

// Blocks reports whether this node forbids claims on metal m.
func (n *AccessNode) Blocks(m geom.Metal) bool {
	if n.BlockedMetals == nil {
		return false
	}
	_, blocked := n.BlockedMetals[m]
	return blocked
}

// block adds m to this node's blocked-metal set, allocating it lazily.
func (n *AccessNode) block(m geom.Metal) {
	if n.BlockedMetals == nil {
		n.BlockedMetals = make(map[geom.Metal]struct{})
	}
	n.BlockedMetals[m] = struct{}{}
}

// AccessLine is one ordered row (horizontal) or column (vertical) of
// access nodes, plus the two boundary sentinels used to coordinate pin
// placement with the grid's neighbor across that edge.
type AccessLine struct {
	Nodes    []AccessNode
	Assigned int
	LeftPin  AccessNode // sentinel at index 0 / low boundary
	RightPin AccessNode // sentinel at the last index / high boundary
}

// Cost returns this line's contribution to the grid's total cost,
// heuristic(assigned) = assigned^2 (spec §4.3).
func (l *AccessLine) Cost() float64 {
	return float64(l.Assigned) * float64(l.Assigned)
}

// Ref addresses an AccessPointGrid owned by a Registry. -1 means "no
// neighbor in that direction", replacing the original's nil raw pointer.
type Ref int

// NoRef is the zero-value sentinel for "no neighbor".
const NoRef Ref = -1
