package match

import "github.com/paulmach/orb"

// Combine concatenates matched way groups, deduplicating by OSM ID (a way
// that was matched from more than one pass, e.g. both containment and a
// manual include, is kept once) and preserving first-seen order.
func Combine(groups ...[]CandidateWay) []CandidateWay {
	seen := make(map[int64]bool)
	var out []CandidateWay
	for _, g := range groups {
		for _, w := range g {
			if seen[w.OSMID] {
				continue
			}
			seen[w.OSMID] = true
			out = append(out, w)
		}
	}
	return out
}

// Match runs the full C5 pipeline for one data source: buffered
// containment, the orthogonal short-way filter, and manual overrides.
// Callers run Difference/StreetsWithoutBikelanes/PathsWithoutStreetsAndBikelanes
// afterwards where the source requires it.
func Match(candidates []CandidateWay, priorityLines []orb.LineString, excludeIDs, includeIDs map[int64]bool, cfg Config) ([]CandidateWay, []AuditEntry) {
	contained := BufferedContainment(candidates, priorityLines, cfg)
	flagged := OrthogonalFilter(contained, priorityLines, cfg)

	matched := make(map[int64]bool)
	byID := make(map[int64]CandidateWay, len(contained))
	for _, w := range contained {
		byID[w.OSMID] = w
		if !flagged[w.OSMID] {
			matched[w.OSMID] = true
		}
	}

	// Manual includes may reference ways outside the containment result;
	// they're looked up from the full candidate set.
	allByID := make(map[int64]CandidateWay, len(candidates))
	for _, w := range candidates {
		allByID[w.OSMID] = w
	}

	final, audit := ApplyOverrides(matched, excludeIDs, includeIDs)

	out := make([]CandidateWay, 0, len(final))
	for id := range final {
		if w, ok := byID[id]; ok {
			out = append(out, w)
		} else if w, ok := allByID[id]; ok {
			out = append(out, w)
		}
	}
	return out, audit
}
