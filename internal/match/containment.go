package match

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/paulmach/orb"
)

// FractionInPolygons samples line at regular intervals and returns the
// fraction of samples that fall inside any of polys. Used as a proxy for
// "intersection length / way length" (spec §4.5 step 1), since orb has no
// polygon-clip primitive and the pipeline's ways are short and roughly
// straight enough that point sampling tracks true linear coverage closely.
func FractionInPolygons(line orb.LineString, polys []orb.Polygon, spacing float64) float64 {
	if len(polys) == 0 {
		return 0
	}
	if spacing <= 0 {
		spacing = 5
	}
	samples := geo.SplitLine(line, spacing)
	if len(samples) == 0 {
		return 0
	}

	inside := 0
	total := 0
	for _, seg := range samples {
		for _, pt := range seg {
			total++
			for _, poly := range polys {
				if geo.PolygonContainsPoint(poly, pt) {
					inside++
					break
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(inside) / float64(total)
}

// BufferedContainment keeps only those ways whose fraction of length
// falling inside a buffer around priorityLines meets cfg.MinFraction
// (spec §4.5 step 1).
func BufferedContainment(ways []CandidateWay, priorityLines []orb.LineString, cfg Config) []CandidateWay {
	buffers := make([]orb.Polygon, len(priorityLines))
	for i, l := range priorityLines {
		buffers[i] = geo.Buffer(l, cfg.BufferMeters, geo.CapRound)
	}

	out := make([]CandidateWay, 0, len(ways))
	for _, w := range ways {
		frac := FractionInPolygons(w.Geometry, buffers, cfg.ProbeSpacing)
		if frac >= cfg.MinFraction {
			out = append(out, w)
		}
	}
	return out
}
