package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/config"
)

func TestLoadInputReadsAllLayersFromDataDir(t *testing.T) {
	dir := t.TempDir()
	layers := map[string]string{
		"priority_network.geojson": `{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,0],[10,0]]}}]}`,
		"nodes.geojson": `{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"vp_id":"A"},"geometry":{"type":"Point","coordinates":[0,0]}}]}`,
		"detail_network.geojson": `{"type":"FeatureCollection","features":[]}`,
		"bikelanes.geojson":      `{"type":"FeatureCollection","features":[]}`,
		"streets.geojson":        `{"type":"FeatureCollection","features":[]}`,
		"paths.geojson":          `{"type":"FeatureCollection","features":[]}`,
		"districts.geojson":      `{"type":"FeatureCollection","features":[]}`,
	}
	for name, content := range layers {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cfg := config.Defaults()
	cfg.DataDir = dir

	in, err := loadInput(cfg)
	if err != nil {
		t.Fatalf("loadInput: %v", err)
	}
	if len(in.PriorityLines) != 1 {
		t.Errorf("expected 1 priority line, got %d", len(in.PriorityLines))
	}
	if len(in.Nodes) != 1 {
		t.Errorf("expected 1 node, got %d", len(in.Nodes))
	}
}
