package snap

import (
	"context"
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsProducesBothDirectionsPerPiece(t *testing.T) {
	edge := model.EnrichedEdge{ElementNr: "A_B.01", Geometry: orb.LineString{{0, 0}, {10, 0}}}
	segs := Segments(edge, DefaultConfig())
	require.NotEmpty(t, segs)
	assert.Equal(t, 0, segs[0].RI)
	assert.Equal(t, 1, segs[1].RI)
}

func TestSnapAssignsNearestCompatibleCandidate(t *testing.T) {
	edge := model.EnrichedEdge{ElementNr: "A_B.01", Geometry: orb.LineString{{0, 0}, {20, 0}}}
	candidates := NewCandidateSet([]model.TranslatedOSM{
		{
			OSMID:    1,
			Geometry: orb.LineString{{0, 0.5}, {20, 0.5}},
			Attrs:    model.Attrs{Fuehr: tilda.FuehrRadfahrstreifen, Verkehrsri: tilda.VerkehrsriEinrichtung},
		},
	})

	out := Snap(context.Background(), []model.EnrichedEdge{edge}, candidates, DefaultConfig(), nil)
	require.NotEmpty(t, out)

	forward := out[0]
	assert.Equal(t, tilda.FuehrRadfahrstreifen, forward.Attrs.Fuehr)
}

func TestSnapFallsBackToPlaceholderWithoutCandidates(t *testing.T) {
	edge := model.EnrichedEdge{ElementNr: "A_B.01", Geometry: orb.LineString{{0, 0}, {20, 0}}}
	candidates := NewCandidateSet(nil)

	out := Snap(context.Background(), []model.EnrichedEdge{edge}, candidates, DefaultConfig(), nil)
	require.NotEmpty(t, out)
	assert.Equal(t, tilda.FuehrKeineRadinfrastruktur, out[0].Attrs.Fuehr)
}

func TestSnapOneWayMixedTrafficEmitsSingleDirection(t *testing.T) {
	edge := model.EnrichedEdge{ElementNr: "A_B.01", Geometry: orb.LineString{{0, 0}, {20, 0}}}
	candidates := NewCandidateSet([]model.TranslatedOSM{
		{
			OSMID:    1,
			Geometry: orb.LineString{{0, 0.5}, {20, 0.5}},
			Attrs:    model.Attrs{Fuehr: tilda.FuehrMischverkehr, Verkehrsri: tilda.VerkehrsriEinrichtung},
			Tilda:    map[string]string{"tilda_oneway": "yes"},
		},
	})

	out := Snap(context.Background(), []model.EnrichedEdge{edge}, candidates, DefaultConfig(), nil)
	require.Len(t, out, 8) // ~20m / 2.5m segments, one direction only

	for _, s := range out {
		assert.Equal(t, 0, s.RI)
		assert.Equal(t, tilda.FuehrMischverkehr, s.Attrs.Fuehr)
	}
}

func TestSnapDualCarriagewayEmitsBothDirections(t *testing.T) {
	edge := model.EnrichedEdge{ElementNr: "A_B.01", Geometry: orb.LineString{{0, 0}, {20, 0}}}
	candidates := NewCandidateSet([]model.TranslatedOSM{
		{
			OSMID:    1,
			Geometry: orb.LineString{{0, 0.5}, {20, 0.5}},
			Attrs:    model.Attrs{Fuehr: tilda.FuehrMischverkehr, Verkehrsri: tilda.VerkehrsriEinrichtung},
			Tilda:    map[string]string{"tilda_oneway": "yes_dual_carriageway"},
		},
		{
			OSMID:    2,
			Geometry: orb.LineString{{20, -0.5}, {0, -0.5}},
			Attrs:    model.Attrs{Fuehr: tilda.FuehrMischverkehr, Verkehrsri: tilda.VerkehrsriEinrichtung},
			Tilda:    map[string]string{"tilda_oneway": "yes_dual_carriageway"},
		},
	})

	out := Snap(context.Background(), []model.EnrichedEdge{edge}, candidates, DefaultConfig(), nil)
	require.NotEmpty(t, out)

	seenRI := map[int]bool{}
	for _, s := range out {
		seenRI[s.RI] = true
		assert.Equal(t, tilda.FuehrMischverkehr, s.Attrs.Fuehr)
	}
	assert.True(t, seenRI[0])
	assert.True(t, seenRI[1])
}

func TestSnapAttributesBothDirectionsFromTwoWayCandidate(t *testing.T) {
	edge := model.EnrichedEdge{ElementNr: "A_B.01", Geometry: orb.LineString{{0, 0}, {20, 0}}}
	candidates := NewCandidateSet([]model.TranslatedOSM{
		{
			OSMID:    1,
			Geometry: orb.LineString{{0, 0.5}, {20, 0.5}},
			Attrs:    model.Attrs{Fuehr: tilda.FuehrRadweg, Verkehrsri: tilda.VerkehrsriZweirichtung},
		},
	})

	out := Snap(context.Background(), []model.EnrichedEdge{edge}, candidates, DefaultConfig(), nil)
	require.Len(t, out, 16) // ~20m / 2.5m segments * 2 directions

	for _, s := range out {
		assert.Equal(t, tilda.FuehrRadweg, s.Attrs.Fuehr)
	}
}

func TestSnapWithWorkerPoolMatchesSequentialOrder(t *testing.T) {
	edge := model.EnrichedEdge{ElementNr: "A_B.01", Geometry: orb.LineString{{0, 0}, {20, 0}}}
	candidates := NewCandidateSet([]model.TranslatedOSM{
		{OSMID: 1, Geometry: orb.LineString{{0, 0.5}, {20, 0.5}}, Attrs: model.Attrs{Fuehr: tilda.FuehrRadweg, Verkehrsri: tilda.VerkehrsriZweirichtung}},
	})

	sequential := Snap(context.Background(), []model.EnrichedEdge{edge}, candidates, DefaultConfig(), nil)

	parallelCfg := DefaultConfig()
	parallelCfg.Workers = 4
	parallelCfg.BatchSize = 2
	parallel := Snap(context.Background(), []model.EnrichedEdge{edge}, candidates, parallelCfg, nil)

	require.Equal(t, len(sequential), len(parallel))
	for i := range sequential {
		assert.Equal(t, sequential[i].Geometry, parallel[i].Geometry)
		assert.Equal(t, sequential[i].RI, parallel[i].RI)
	}
}
