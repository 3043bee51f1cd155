package routecore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/gcell"
	"github.com/vlsirt/routecore/routelog"
	"github.com/vlsirt/routecore/rstack"
)

// onePinNetData builds the smallest design that exercises every pipeline
// stage: one GCell, one net with an inner pin and a boundary cross pin on
// the same metal, and a single stack spanning metal 1 (bottom) to metal 2
// (top).
func onePinNetData() *design.Data {
	track := func(metal int, axis design.Axis) design.TrackSpec {
		return design.TrackSpec{Start: 0, Step: 1, Count: 5, Metal: metal, Axis: axis}
	}
	return &design.Data{
		Tracks: []design.TrackSpec{
			track(1, design.AxisX), track(1, design.AxisY),
			track(2, design.AxisX), track(2, design.AxisY),
		},
		GridX: []design.GridRun{{Start: 0, Step: 4, Count: 1}},
		GridY: []design.GridRun{{Start: 0, Step: 4, Count: 1}},
		Pins: map[string]*design.Pin{
			"p_in": {
				Name: "p_in", Use: design.UseSignal,
				Ports: []design.PortPoly{{Metal: 1, Points: [][2]float64{{1, 1}, {3, 1}, {3, 3}, {1, 3}}}},
			},
			"p_cross": {
				Name: "p_cross", Use: design.UseSignal,
				Ports: []design.PortPoly{{Metal: 1, Points: [][2]float64{{4, 2}, {4, 2}, {4, 2}, {4, 2}}}},
			},
		},
		Nets: map[string]design.Net{
			"n0": {Index: 0, Name: "n0", Pins: []string{"p_in", "p_cross"}},
		},
	}
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	stacks := []gcell.StackSpec{{Bottom: geom.Metal(1), Top: geom.Metal(2)}}
	return NewPipeline(routelog.NewStderr(), onePinNetData(), geom.Metal(1), geom.Metal(1), stacks)
}

func TestPipelineStageOrderEnforced(t *testing.T) {
	p := newTestPipeline(t)
	assert.ErrorIs(t, p.SetupObstacles(), ErrStageOrder)
	assert.ErrorIs(t, p.SetupInnerPins(), ErrStageOrder)
	assert.ErrorIs(t, p.RouteNets(), ErrStageOrder)
}

func TestPipelineEndToEnd(t *testing.T) {
	p := newTestPipeline(t)

	require.NoError(t, p.FillGCells())
	require.Len(t, p.GCells, 1)

	require.NoError(t, p.SetupObstacles())
	require.NoError(t, p.SetupInnerPins())
	require.Empty(t, p.Summary.Failures, "inner pin should place cleanly")
	require.NoError(t, p.SetupCrossPins())
	require.Empty(t, p.Summary.Failures, "cross pin should place cleanly")
	require.NoError(t, p.SetupBetweenStackPins())
	require.NoError(t, p.SetupStacks())

	gc := p.gcellAt(2, 2)
	require.NotNil(t, gc)
	require.Len(t, gc.Stacks, 1)

	require.NoError(t, p.RouteNets())
	require.Len(t, p.Routes, 1, "the single net should produce exactly one route")
	assert.Equal(t, "n0", p.Routes[0].Net)
	assert.Empty(t, p.Summary.Failures, "routing should not fail")

	require.NoError(t, p.Verify(2))
	require.Len(t, p.Summary.Stacks, 1)
	assert.Equal(t, 1.0, p.Summary.Stacks[0].VerifierScore)
	assert.Equal(t, 1, p.Summary.Stacks[0].NetsRouted)

	require.NoError(t, p.EncodeCostMaps())
	require.Len(t, p.CostMaps, 1)

	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, p.CostMaps[0].Map))
	shape := gc.Stacks[0].Matrix.Shape
	assert.Equal(t, 2*shape.X*shape.Y*8, buf.Len())
}

func TestGroupTerminalsByNetDeterministicOrder(t *testing.T) {
	terms := []rstack.Terminal{
		{Net: "b", Pos: rstack.Point3{X: 1}},
		{Net: "a", Pos: rstack.Point3{X: 2}},
		{Net: "a", Pos: rstack.Point3{X: 3}},
	}
	nets, byNet := groupTerminalsByNet(terms)
	assert.Equal(t, []string{"a", "b"}, nets)
	assert.Len(t, byNet["a"], 2)
	assert.Len(t, byNet["b"], 1)
}

func TestNetPathMatrixMarksViaAsTwo(t *testing.T) {
	shape := rstack.Shape{X: 3, Y: 3, Z: 2}
	path := []rstack.Point3{{X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 1}}
	grid := netPathMatrix(shape, path)
	assert.Equal(t, 2.0, grid[1][1])
	assert.Equal(t, 1.0, grid[1][2])
	assert.Equal(t, 0.0, grid[0][0])
}

func TestGridBoundariesExpandsRuns(t *testing.T) {
	runs := []design.GridRun{{Start: 0, Step: 2, Count: 2}, {Start: 4, Step: 1, Count: 1}}
	assert.Equal(t, []float64{0, 2, 4, 5}, gridBoundaries(runs))
}
