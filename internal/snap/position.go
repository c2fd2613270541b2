package snap

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
	"github.com/paulmach/orb"
)

// candidatePool builds the oriented candidate set for one segment
// position, per spec §4.6 "Candidate search": query the spatial index,
// filter by true distance to the segment midpoint, then filter by angle
// difference against the forward bearing, falling back to the
// distance-filtered set when the angle filter empties it out.
func candidatePool(mid orb.Point, forwardBearing float64, candidates *CandidateSet, cfg Config) []scoredCandidate {
	nearby := candidates.Nearby(mid, cfg.SearchRadius)

	distFiltered := make([]scoredCandidate, 0, len(nearby))
	for _, cand := range nearby {
		d := geo.DistancePointToLine(mid, cand.Geometry)
		if d > cfg.SearchRadius {
			continue
		}
		distFiltered = append(distFiltered, scoredCandidate{
			cand:     cand,
			bearing:  geo.Angle(cand.Geometry),
			distance: d,
			priority: tilda.Priority(cand.Tilda["tilda_category"], cand.Tilda["tilda_traffic_sign"]),
		})
	}

	oriented := make([]scoredCandidate, 0, len(distFiltered))
	for _, sc := range distFiltered {
		if collinearDiff(sc.bearing, forwardBearing) <= cfg.DirectionToleranceDeg {
			oriented = append(oriented, sc)
		}
	}
	if len(oriented) == 0 {
		return distFiltered
	}
	return oriented
}

// collinearDiff is the angle between two bearings treating opposite
// directions as aligned (a dual-carriageway candidate running the
// opposite way is still "the same corridor"). Direction compatibility
// itself is decided separately, in directionCompat.
func collinearDiff(a, b float64) float64 {
	d := geo.AngleDiff(a, b)
	if d > 90 {
		d = 180 - d
	}
	return d
}

// onlyOneWayMixedTraffic reports spec §4.6 special case 1's guard: every
// candidate in pool is a one-way mixed-traffic way, and none of them is
// flagged as a dual carriageway (special case 2 overrides this one).
func onlyOneWayMixedTraffic(pool []scoredCandidate) bool {
	if len(pool) == 0 {
		return false
	}
	for _, sc := range pool {
		if sc.cand.Attrs.Verkehrsri != tilda.VerkehrsriEinrichtung || sc.cand.Attrs.Fuehr != tilda.FuehrMischverkehr {
			return false
		}
		if sc.cand.Tilda["tilda_oneway"] == "yes_dual_carriageway" {
			return false
		}
	}
	return true
}

// pickBest selects the highest-ranked direction-compatible candidate for
// ri from pool, per the total order in score.go. Returns ok=false when no
// candidate in pool is direction-compatible with ri.
func pickBest(pool []scoredCandidate, forwardBearing float64, ri int) (best scoredCandidate, score candidateScore, ok bool) {
	for _, sc := range pool {
		cs := scoreFor(sc, forwardBearing, ri)
		if cs.DirectionCompat <= 0 {
			continue
		}
		if !ok || cs.better(score) {
			best, score, ok = sc, cs, true
		}
	}
	return best, score, ok
}

// noInfrastructure is the placeholder attrs for a direction with no
// qualifying candidate (spec §4.6 special case 3): fuehr is set, every
// other attribute stays at its zero value (null).
func noInfrastructure() model.Attrs {
	return model.Attrs{Fuehr: tilda.FuehrKeineRadinfrastruktur}
}

// snapPosition attributes both directions of one segment position,
// implementing spec §4.6's variant creation and special cases. The
// one-way-mixed-traffic special case (1) collapses the position down to a
// single segment; otherwise each direction is resolved independently,
// falling back to noInfrastructure() when nothing qualifies (special case
// 3). Dual-carriageway ways (special case 2) need no dedicated branch:
// each direction already finds its own matching one-way candidate through
// the normal per-ri selection.
func snapPosition(t toSnap, candidates *CandidateSet, cfg Config) attributed {
	mid := geo.Midpoint(t.forward.Geometry)
	forwardBearing := geo.Angle(t.forward.Geometry)
	pool := candidatePool(mid, forwardBearing, candidates, cfg)

	var trail []candidateScore
	if cfg.LogCandidates {
		for _, sc := range pool {
			trail = append(trail, scoreFor(sc, forwardBearing, 0), scoreFor(sc, forwardBearing, 1))
		}
	}

	if onlyOneWayMixedTraffic(pool) {
		best := pool[0]
		for _, sc := range pool[1:] {
			switch {
			case sc.priority != best.priority:
				if sc.priority > best.priority {
					best = sc
				}
			case sc.distance != best.distance:
				if sc.distance < best.distance {
					best = sc
				}
			case sc.cand.OSMID < best.cand.OSMID:
				best = sc
			}
		}
		d := 0
		if geo.AngleDiff(forwardBearing, best.bearing) >= 90 {
			d = 1
		}

		chosen := t.forward
		if d == 1 {
			chosen = t.reverse
		}
		chosen.Attrs = best.cand.Attrs.Clone()
		chosen.Tilda = best.cand.Tilda
		return attributed{segments: []model.Segment{chosen}, trail: trail}
	}

	forward := t.forward
	if best, _, ok := pickBest(pool, forwardBearing, 0); ok {
		forward.Attrs = best.cand.Attrs.Clone()
		forward.Tilda = best.cand.Tilda
	} else {
		forward.Attrs = noInfrastructure()
	}

	reverse := t.reverse
	if best, _, ok := pickBest(pool, forwardBearing, 1); ok {
		reverse.Attrs = best.cand.Attrs.Clone()
		reverse.Tilda = best.cand.Tilda
	} else {
		reverse.Attrs = noInfrastructure()
	}

	return attributed{segments: []model.Segment{forward, reverse}, trail: trail}
}
