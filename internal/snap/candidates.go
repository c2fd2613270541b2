package snap

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/spatial"
	"github.com/paulmach/orb"
)

// CandidateSet is a spatially-indexed pool of translated OSM ways to snap
// segments against.
type CandidateSet struct {
	ways  []model.TranslatedOSM
	index *spatial.Index
}

// NewCandidateSet builds a spatial index over ways, keyed by their
// bounding box (spec §4.6 step 2: candidate search via the spatial
// index from C1).
func NewCandidateSet(ways []model.TranslatedOSM) *CandidateSet {
	idx := spatial.New()
	for i, w := range ways {
		idx.Insert(w.Geometry.Bound(), i)
	}
	return &CandidateSet{ways: ways, index: idx}
}

// Nearby returns candidates whose bounding box is within radius of p.
func (c *CandidateSet) Nearby(p orb.Point, radius float64) []model.TranslatedOSM {
	bound := spatial.BufferBound(p, radius)
	var out []model.TranslatedOSM
	for _, id := range c.index.Query(bound) {
		out = append(out, c.ways[id])
	}
	return out
}
