package merge

import (
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeJoinsAdjacentSegmentsWithSameAttrs(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {5, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrRadweg}},
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{5, 0}, {10, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrRadweg}},
	}
	out := Merge(segs)
	require.Len(t, out, 1)
	assert.Equal(t, orb.LineString{{0, 0}, {5, 0}, {10, 0}}, out[0].Geometry)
	assert.Equal(t, 1, out[0].SFID)
}

func TestMergeKeepsDifferentAttrsSeparate(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {5, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrRadweg}},
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{5, 0}, {10, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrSchutzstreifen}},
	}
	out := Merge(segs)
	require.Len(t, out, 2)
}

func TestMergeKeepsDirectionsSeparate(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {5, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrRadweg}},
		{ElementNr: "A_B.01", RI: 1, Geometry: orb.LineString{{5, 0}, {0, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrRadweg}},
	}
	out := Merge(segs)
	require.Len(t, out, 2)
}

func TestMergeClearsWidthOnMergedMixedTrafficRun(t *testing.T) {
	width := 4.0
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {5, 0}},
			Attrs: model.Attrs{Fuehr: tilda.FuehrMischverkehr, Breite: &width}},
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{5, 0}, {10, 0}},
			Attrs: model.Attrs{Fuehr: tilda.FuehrMischverkehr, Breite: &width}},
	}
	out := Merge(segs)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Attrs.Breite)
}
