package aggregate

import (
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func width(v float64) *float64 { return &v }

func TestAggregateLongestWinsFuehr(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {90, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrRadweg}},
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{90, 0}, {100, 0}}, Attrs: model.Attrs{Fuehr: tilda.FuehrSchutzstreifen}},
	}
	out := Aggregate(segs, nil, nil)
	require.Len(t, out, 1)
	assert.Equal(t, tilda.FuehrRadweg, out[0].Attrs.Fuehr)
	assert.Equal(t, 100, out[0].LaengeM)
}

func TestAggregateWorstWinsBreite(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {50, 0}}, Attrs: model.Attrs{Breite: width(2.0)}},
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{50, 0}, {100, 0}}, Attrs: model.Attrs{Breite: width(1.2)}},
	}
	out := Aggregate(segs, nil, nil)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Attrs.Breite)
	assert.InDelta(t, 1.2, *out[0].Attrs.Breite, 0.001)
}

func TestAggregateWorstWinsTrennstreifen(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {50, 0}}, Attrs: model.Attrs{Trennstreifen: tilda.TrennstreifenJa}},
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{50, 0}, {100, 0}}, Attrs: model.Attrs{Trennstreifen: tilda.TrennstreifenNein}},
	}
	out := Aggregate(segs, nil, nil)
	require.Len(t, out, 1)
	assert.Equal(t, tilda.TrennstreifenNein, out[0].Attrs.Trennstreifen)
}

func TestAggregateSeparatesByDirection(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {50, 0}}},
		{ElementNr: "A_B.01", RI: 1, Geometry: orb.LineString{{50, 0}, {0, 0}}},
	}
	out := Aggregate(segs, nil, nil)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].AFID)
	assert.Equal(t, 1, out[1].AFID)
}

func TestAggregateJoinsTildaProvenance(t *testing.T) {
	segs := []model.Segment{
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{0, 0}, {50, 0}}, Tilda: map[string]string{"tilda_id": "1"}},
		{ElementNr: "A_B.01", RI: 0, Geometry: orb.LineString{{50, 0}, {100, 0}}, Tilda: map[string]string{"tilda_id": "2"}},
	}
	out := Aggregate(segs, nil, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "1;2", out[0].Tilda["tilda_id"])
}
