package topology

import (
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichDirectNodeMatch(t *testing.T) {
	lines := []orb.LineString{{{0, 0}, {10, 0}}}
	nodes := []model.Node{
		{VPID: "A", Point: orb.Point{0, 0}},
		{VPID: "B", Point: orb.Point{10, 0}},
	}
	out := Enrich(lines, nodes, DefaultConfig())
	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].FromNode)
	assert.Equal(t, "B", out[0].ToNode)
	assert.Equal(t, "A_B.01", out[0].ElementNr)
}

func TestEnrichBFSFallbackThroughUnnamedJunction(t *testing.T) {
	// A --- (junction, unnamed) --- B, represented as two lines meeting
	// at an intermediate point with no named node there.
	lines := []orb.LineString{
		{{0, 0}, {5, 0}},
		{{5, 0}, {10, 0}},
	}
	nodes := []model.Node{
		{VPID: "A", Point: orb.Point{0, 0}},
		{VPID: "B", Point: orb.Point{10, 0}},
	}
	out := Enrich(lines, nodes, DefaultConfig())
	require.Len(t, out, 2)

	assert.Equal(t, "A", out[0].FromNode)
	assert.Equal(t, "B", out[0].ToNode) // resolved via BFS through line 1

	assert.Equal(t, "A", out[1].FromNode) // resolved via BFS through line 0
	assert.Equal(t, "B", out[1].ToNode)
}

func TestEnrichUnresolvedEndpointFallsBackToUnknown(t *testing.T) {
	lines := []orb.LineString{{{0, 0}, {100, 100}}}
	out := Enrich(lines, nil, DefaultConfig())
	require.Len(t, out, 1)
	assert.Equal(t, "UNKNOWN_UNKNOWN_001.01", out[0].ElementNr)
}
