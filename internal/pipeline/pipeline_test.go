package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/config"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRunProducesOutput(t *testing.T) {
	cfg := config.Defaults()
	p := New(cfg, nil, nil)

	in := Input{
		PriorityLines: []orb.LineString{{{0, 0}, {100, 0}}},
		Nodes: []model.Node{
			{VPID: "A", Point: orb.Point{0, 0}},
			{VPID: "B", Point: orb.Point{100, 0}},
		},
		Bikelanes: []model.OSMWay{
			{OSMID: 1, Geometry: orb.LineString{{0, 0.5}, {100, 0.5}}, Oneway: "no"},
		},
	}

	outPath := filepath.Join(t.TempDir(), "out.gpkg")
	err := p.Run(context.Background(), in, outPath)
	require.NoError(t, err)
}

func TestCacheKeyForVariesByStage(t *testing.T) {
	cfg := config.Defaults()
	p := New(cfg, nil, nil)

	k1, err := p.CacheKeyFor("stitch")
	require.NoError(t, err)
	k2, err := p.CacheKeyFor("snap")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}
