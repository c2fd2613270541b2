package snap

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
)

// candidateScore records one candidate's position in the total order spec
// §4.6 step 3 and §9 (determinism notes) both specify: direction
// compatibility first, then priority, then distance, with OSM ID as a
// final stable tie-breaker — never a blended weighted sum.
type candidateScore struct {
	OSMID           int64
	DirectionCompat int
	Priority        int
	Distance        float64
}

// scoredCandidate is a candidate way with its bearing, distance to the
// segment midpoint, and match priority precomputed once per position,
// shared across both directions' selection.
type scoredCandidate struct {
	cand     model.TranslatedOSM
	bearing  float64
	distance float64
	priority int
}

// directionCompat implements spec §4.6 step 3's direction_compatibility
// rule: a one-way candidate only compatible with the ri whose
// candidate-relative orientation it matches; a two-way (or otherwise
// unconstrained) candidate compatible with either direction.
func directionCompat(sc scoredCandidate, forwardBearing float64, ri int) int {
	if sc.cand.Attrs.Verkehrsri == tilda.VerkehrsriEinrichtung {
		d := 0
		if geo.AngleDiff(forwardBearing, sc.bearing) >= 90 {
			d = 1
		}
		if d == ri {
			return 10
		}
		return 0
	}
	return 1
}

// scoreFor builds the candidateScore of sc against ri, for selection and
// for the optional diagnostic trail.
func scoreFor(sc scoredCandidate, forwardBearing float64, ri int) candidateScore {
	return candidateScore{
		OSMID:           sc.cand.OSMID,
		DirectionCompat: directionCompat(sc, forwardBearing, ri),
		Priority:        sc.priority,
		Distance:        sc.distance,
	}
}

// better reports whether a ranks ahead of b in the (direction_compat desc,
// priority desc, distance asc, OSM ID asc) total order.
func (a candidateScore) better(b candidateScore) bool {
	if a.DirectionCompat != b.DirectionCompat {
		return a.DirectionCompat > b.DirectionCompat
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.OSMID < b.OSMID
}
