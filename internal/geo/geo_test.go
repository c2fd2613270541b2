package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngle(t *testing.T) {
	cases := []struct {
		name string
		line orb.LineString
		want float64
	}{
		{"east", orb.LineString{{0, 0}, {10, 0}}, 0},
		{"north", orb.LineString{{0, 0}, {0, 10}}, 90},
		{"west", orb.LineString{{0, 0}, {-10, 0}}, 180},
		{"south", orb.LineString{{0, 0}, {0, -10}}, 270},
		{"degenerate", orb.LineString{{5, 5}, {5, 5}}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, Angle(c.line), 1e-9)
		})
	}
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, 10.0, AngleDiff(5, 355), 1e-9)
	assert.InDelta(t, 180.0, AngleDiff(0, 180), 1e-9)
	assert.InDelta(t, 0.0, AngleDiff(90, 90), 1e-9)
}

func TestIsLeft(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}}
	assert.True(t, IsLeft(line, orb.Point{5, 1}))
	assert.False(t, IsLeft(line, orb.Point{5, -1}))
}

func TestSplitLinePreservesLength(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}, {10, 10}}
	parts := SplitLine(line, 2.5)
	require.NotEmpty(t, parts)

	var total float64
	for _, p := range parts {
		total += Length(p)
	}
	assert.InDelta(t, Length(line), total, 1e-6)
}

func TestSplitLineSegmentCount(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}}
	parts := SplitLine(line, 2.5)
	assert.Len(t, parts, 4)
}

func TestLineMergeConcatenatesSharedEndpoints(t *testing.T) {
	a := orb.LineString{{0, 0}, {10, 0}}
	b := orb.LineString{{10, 0}, {20, 0}}
	merged := LineMerge([]orb.LineString{a, b})
	require.Len(t, merged, 1)
	assert.InDelta(t, 20.0, Length(merged[0]), 1e-9)
}

func TestLineMergeHandlesReversedPiece(t *testing.T) {
	a := orb.LineString{{0, 0}, {10, 0}}
	b := orb.LineString{{20, 0}, {10, 0}} // reversed relative to a
	merged := LineMerge([]orb.LineString{a, b})
	require.Len(t, merged, 1)
	assert.InDelta(t, 20.0, Length(merged[0]), 1e-9)
}

func TestLineMergeLeavesDisjointLinesSeparate(t *testing.T) {
	a := orb.LineString{{0, 0}, {10, 0}}
	b := orb.LineString{{100, 100}, {110, 100}}
	merged := LineMerge([]orb.LineString{a, b})
	assert.Len(t, merged, 2)
}

func TestBufferContainsNearbyPoint(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}}
	poly := Buffer(line, 5, CapFlat)
	assert.True(t, PolygonContainsPoint(poly, orb.Point{5, 2}))
	assert.False(t, PolygonContainsPoint(poly, orb.Point{5, 10}))
}

func TestDistancePointToLine(t *testing.T) {
	line := orb.LineString{{0, 0}, {10, 0}}
	assert.InDelta(t, 3.0, DistancePointToLine(orb.Point{5, 3}, line), 1e-9)
	assert.InDelta(t, 0.0, DistancePointToLine(orb.Point{5, 0}, line), 1e-9)
}
