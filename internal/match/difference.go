package match

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/paulmach/orb"
)

// Difference removes from base every way that's already >= cfg.DiffFraction
// covered by a buffer around other's geometry, leaving only the
// genuinely-uncovered remainder (spec §4.5 step 4: streets_without_bikelanes
// and paths_without_streets_and_bikelanes).
func Difference(base, other []CandidateWay, cfg Config) []CandidateWay {
	if cfg.DiffBufferM <= 0 {
		cfg.DiffBufferM = 10
	}
	if cfg.DiffFraction <= 0 {
		cfg.DiffFraction = 0.8
	}

	buffers := make([]orb.Polygon, len(other))
	for i, w := range other {
		buffers[i] = geo.Buffer(w.Geometry, cfg.DiffBufferM, geo.CapRound)
	}

	out := make([]CandidateWay, 0, len(base))
	for _, w := range base {
		if FractionInPolygons(w.Geometry, buffers, cfg.ProbeSpacing) >= cfg.DiffFraction {
			continue
		}
		out = append(out, w)
	}
	return out
}

// StreetsWithoutBikelanes returns streets not already covered by matched
// bikelane ways.
func StreetsWithoutBikelanes(streets, bikelanes []CandidateWay, cfg Config) []CandidateWay {
	return Difference(streets, bikelanes, cfg)
}

// PathsWithoutStreetsAndBikelanes returns paths not already covered by
// either matched streets or matched bikelane ways.
func PathsWithoutStreetsAndBikelanes(paths, streets, bikelanes []CandidateWay, cfg Config) []CandidateWay {
	combined := make([]CandidateWay, 0, len(streets)+len(bikelanes))
	combined = append(combined, streets...)
	combined = append(combined, bikelanes...)
	return Difference(paths, combined, cfg)
}
