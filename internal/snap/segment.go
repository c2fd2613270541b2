package snap

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/paulmach/orb"
)

// Segments splits an EnrichedEdge into ~cfg.SegmentMeters pieces and
// produces one unattributed model.Segment per piece per direction (RI=0
// along the source geometry, RI=1 reversed), per spec §4.6 step 1.
func Segments(edge model.EnrichedEdge, cfg Config) []model.Segment {
	if cfg.SegmentMeters <= 0 {
		cfg.SegmentMeters = 2.5
	}
	pieces := geo.SplitLine(edge.Geometry, cfg.SegmentMeters)

	out := make([]model.Segment, 0, len(pieces)*2)
	for _, p := range pieces {
		out = append(out, model.Segment{ElementNr: edge.ElementNr, Geometry: p, RI: 0})
		out = append(out, model.Segment{ElementNr: edge.ElementNr, Geometry: reverseLine(p), RI: 1})
	}
	return out
}

func reverseLine(l orb.LineString) orb.LineString {
	out := make(orb.LineString, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}
	return out
}
