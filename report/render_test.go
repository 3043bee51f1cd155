package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsirt/routecore/gcell"
)

func TestSummaryOKWithNoFailures(t *testing.T) {
	s := New()
	assert.True(t, s.OK())

	s.AddFailures([]gcell.Failure{{GCellX: 1, GCellY: 2, Net: "n0", Cause: errors.New("boom")}})
	assert.False(t, s.OK())
}

func TestSummaryRenderIncludesFailuresAndStacks(t *testing.T) {
	s := New()
	s.AddFailures([]gcell.Failure{{GCellX: 1, GCellY: 2, Net: "n0", Cause: errors.New("unplaceable")}})
	s.AddStackResult(StackResult{GCellX: 1, GCellY: 2, Bottom: 1, Top: 2, NetsRouted: 3, NetsUnrouted: 1, VerifierScore: 0.75})

	var buf bytes.Buffer
	s.Render(&buf)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "unplaceable")
	assert.Contains(t, out, "GCell Failures")
	assert.Contains(t, out, "Stack Routing Results")
}
