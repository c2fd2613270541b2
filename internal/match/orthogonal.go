package match

import (
	"math"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/paulmach/orb"
)

// probe is one short stretch of the merged priority network, carrying its
// own bearing so it can be compared against a candidate short way.
type probe struct {
	line    orb.LineString
	bearing float64
}

// OrthogonalFilter drops short candidate ways that run perpendicular to
// the priority network they border rather than parallel to it — typically
// crossing paths or driveways wrongly caught by the containment buffer
// (spec §4.5 step 2). Ways at or above cfg.ShortWayMeters are never
// filtered; ways in a "complex" junction/curve (probes spanning a wide
// bearing range, with at least one roughly aligned to the way) are kept
// regardless of angle, since the orthogonality test isn't meaningful there.
func OrthogonalFilter(ways []CandidateWay, priorityLines []orb.LineString, cfg Config) map[int64]bool {
	flagged := make(map[int64]bool)
	if !cfg.EnableOrtho {
		return flagged
	}

	merged := geo.LineMerge(priorityLines)
	probes := buildProbes(merged, cfg.ProbeSpacing)

	for _, w := range ways {
		length := geo.Length(w.Geometry)
		if length >= cfg.ShortWayMeters || length == 0 {
			continue
		}

		wayBuffer := geo.Buffer(w.Geometry, cfg.OrthoBuffer, geo.CapFlat)
		nearby := nearbyProbes(probes, wayBuffer)
		if len(nearby) == 0 {
			continue
		}

		wayBearing := geo.Angle(w.Geometry)

		if isComplexJunction(nearby, wayBearing, cfg.ComplexGuardDeg) {
			continue
		}

		repBearing := representativeBearing(nearby)
		if geo.AngleDiff(wayBearing, repBearing) > cfg.OrthoDeltaDeg {
			flagged[w.OSMID] = true
		}
	}
	return flagged
}

func buildProbes(merged []orb.LineString, spacing float64) []probe {
	var out []probe
	for _, line := range merged {
		for _, seg := range geo.SplitLine(line, spacing) {
			if len(seg) < 2 {
				continue
			}
			out = append(out, probe{line: seg, bearing: geo.Angle(seg)})
		}
	}
	return out
}

func nearbyProbes(probes []probe, buf orb.Polygon) []probe {
	var out []probe
	for _, p := range probes {
		mid := geo.Midpoint(p.line)
		if geo.PolygonContainsPoint(buf, mid) {
			out = append(out, p)
		}
	}
	return out
}

// isComplexJunction reports whether nearby probes span a wide bearing
// range (suggesting a junction or tight curve) while at least one of them
// still roughly aligns with the way — in which case the orthogonality
// check would be a false positive and the way is kept unconditionally.
func isComplexJunction(nearby []probe, wayBearing, guardDeg float64) bool {
	if len(nearby) < 2 {
		return false
	}
	maxSpread := 0.0
	anyAligned := false
	for i := range nearby {
		for j := i + 1; j < len(nearby); j++ {
			d := geo.AngleDiff(nearby[i].bearing, nearby[j].bearing)
			if d > maxSpread {
				maxSpread = d
			}
		}
		if geo.AngleDiff(nearby[i].bearing, wayBearing) <= 20 {
			anyAligned = true
		}
	}
	return maxSpread > guardDeg && anyAligned
}

// representativeBearing merges the nearby probe lines and returns the
// bearing of the resulting (possibly longest) chain, falling back to a
// simple circular mean when merging doesn't reduce them to one piece.
func representativeBearing(nearby []probe) float64 {
	lines := make([]orb.LineString, len(nearby))
	for i, p := range nearby {
		lines[i] = p.line
	}
	merged := geo.LineMerge(lines)
	if len(merged) == 1 {
		return geo.Angle(merged[0])
	}
	return circularMean(nearby)
}

func circularMean(nearby []probe) float64 {
	var sx, sy float64
	for _, p := range nearby {
		rad := p.bearing * math.Pi / 180
		sx += math.Cos(rad)
		sy += math.Sin(rad)
	}
	return math.Atan2(sy, sx) * 180 / math.Pi
}
