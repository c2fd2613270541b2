package aggregate

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/paulmach/orb"
)

// assignDistrict picks the district whose polygon contains the greatest
// sampled fraction of line, using the same point-sampling proxy for
// "intersection length" that the matcher uses for containment (spec
// §4.8 step 4). Returns "" if line doesn't fall inside any district.
func assignDistrict(lines orb.MultiLineString, districts []District) string {
	best := ""
	bestFraction := 0.0
	for _, d := range districts {
		frac := fractionInPolygon(lines, d.Polygon)
		if frac > bestFraction {
			bestFraction = frac
			best = d.Name
		}
	}
	return best
}

func fractionInPolygon(lines orb.MultiLineString, poly orb.Polygon) float64 {
	total, inside := 0, 0
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		samples := geo.SplitLine(line, 10)
		for _, seg := range samples {
			for _, p := range seg {
				total++
				if geo.PolygonContainsPoint(poly, p) {
					inside++
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(inside) / float64(total)
}
