package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsirt/routecore/geom"
)

func TestParseStacksOrdersBottomToTop(t *testing.T) {
	specs, base, top, err := parseStacks("1:3,3:5")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, geom.Metal(1), specs[0].Bottom)
	assert.Equal(t, geom.Metal(3), specs[0].Top)
	assert.Equal(t, geom.Metal(3), specs[1].Bottom)
	assert.Equal(t, geom.Metal(5), specs[1].Top)
	assert.Equal(t, geom.Metal(1), base)
	assert.Equal(t, geom.Metal(5), top)
}

func TestParseStacksRejectsMalformedEntry(t *testing.T) {
	_, _, _, err := parseStacks("1-3")
	assert.Error(t, err)
}
