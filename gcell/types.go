package gcell

import (
	"github.com/go-logr/logr"

	"github.com/vlsirt/routecore/apg"
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/rstack"
)

// State is a GCell's position in the sequential routing-state machine of
// spec §4.4's "GCell routing state" transition list. Transitions are
// strictly forward; there is no rollback.
type State int

const (
	Created State = iota
	Obstacled
	InnerPlaced
	CrossPlaced
	BetweenStacksPlaced
	StacksRealized
	Routed
	Verified
	Encoded
)

// Failure records one recoverable placement error, carrying the context
// spec §7 requires for the final pipeline summary: (gcell_x, gcell_y,
// net_name, cause).
type Failure struct {
	GCellX, GCellY int
	Net            string
	Cause          error
}

// StackSpec names one adjacent metal-layer pair a GCell routes: Bottom is
// the horizontal-track metal, Top is the vertical-track metal.
type StackSpec struct {
	Bottom, Top geom.Metal
}

// GCell owns one access-point grid and a Stack per adjacent metal-layer
// pair, classifies its pins, and runs the staged placement protocol,
// grounded on GCell.hpp.
type GCell struct {
	X, Y  int
	Box   geom.Rect
	State State

	APGRef apg.Ref

	Stacks []*rstack.Stack

	InnerPins         []*design.Pin
	CrossPins         []*design.Pin
	BetweenStackPins  [][2]*design.Pin

	NetBounds map[string]geom.Rect

	// PinMetal records the metal each inner/cross pin was finally claimed
	// on, since the placement loop tries several metals before succeeding
	// (spec §4.4's escalation) and the winning one is otherwise lost once
	// the pin is appended to InnerPins/CrossPins. Callers building per-
	// stack terminals (see routecore.Pipeline.SetupStacks) need it to
	// know which of a stack's two planes a terminal lands on.
	PinMetal map[*design.Pin]geom.Metal

	Failures []Failure
	Log      logr.Logger
}

// New constructs a GCell at grid position (x, y) covering box, with an
// empty APG already registered at apgRef.
func New(x, y int, box geom.Rect, apgRef apg.Ref, log logr.Logger) *GCell {
	return &GCell{
		X: x, Y: y, Box: box,
		State:     Created,
		APGRef:    apgRef,
		NetBounds: make(map[string]geom.Rect),
		PinMetal:  make(map[*design.Pin]geom.Metal),
		Log:       log,
	}
}

// fail records a recoverable error against net and logs it, per spec §7's
// propagation policy for placement/routing errors.
func (c *GCell) fail(net string, err error) {
	c.Failures = append(c.Failures, Failure{GCellX: c.X, GCellY: c.Y, Net: net, Cause: err})
	c.Log.Error(err, "gcell placement failure", "gcell_x", c.X, "gcell_y", c.Y, "net", net)
}
