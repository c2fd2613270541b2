package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBikelanesGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "osm_id": 12345,
        "category": "cyclewayOnHighway_exclusive",
        "oneway": "yes",
        "surface": "asphalt",
        "width": "1.8 m"
      },
      "geometry": {"type": "LineString", "coordinates": [[0, 0], [10, 0]]}
    }
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOSMWaysParsesProperties(t *testing.T) {
	path := writeTemp(t, "bikelanes.geojson", sampleBikelanesGeoJSON)
	ways, err := LoadOSMWays(path, model.SourceBikelanes)
	require.NoError(t, err)
	require.Len(t, ways, 1)

	w := ways[0]
	assert.EqualValues(t, 12345, w.OSMID)
	assert.Equal(t, "cyclewayOnHighway_exclusive", w.Category)
	assert.Equal(t, "yes", w.Oneway)
	assert.Equal(t, model.SourceBikelanes, w.DataSource)
}

func TestLoadIDFileMissingFileReturnsEmptySet(t *testing.T) {
	ids, err := LoadIDFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	assert.Empty(t, ids)
}
