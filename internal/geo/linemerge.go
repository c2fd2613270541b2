package geo

import "github.com/paulmach/orb"

// coordKey quantizes a point to defeat floating-point inequality when
// used as a map key, per the design note in spec §9.
type coordKey struct {
	x, y int64
}

const quantize = 1e4 // 0.1mm precision at meter-scale CRS

func keyOf(p orb.Point) coordKey {
	return coordKey{int64(p[0] * quantize), int64(p[1] * quantize)}
}

// LineMerge performs a standard topological line-merge: lines whose
// endpoints coincide are concatenated into longer lines. Returns one
// LineString per resulting connected chain; chains that don't close
// into a single line are still returned as separate LineStrings (a
// true MultiLineString result), since spec's "line or multiline"
// contract allows either shape depending on connectivity.
func LineMerge(lines []orb.LineString) []orb.LineString {
	// Build adjacency: each endpoint maps to the list of line indices
	// touching it, plus which end.
	type end struct {
		lineIdx int
		atStart bool
	}
	adj := make(map[coordKey][]end)

	remaining := make([]orb.LineString, 0, len(lines))
	for _, l := range lines {
		if len(l) >= 2 {
			remaining = append(remaining, l)
		}
	}

	for i, l := range remaining {
		s, e := Endpoints(l)
		adj[keyOf(s)] = append(adj[keyOf(s)], end{i, true})
		adj[keyOf(e)] = append(adj[keyOf(e)], end{i, false})
	}

	used := make([]bool, len(remaining))
	var merged []orb.LineString

	for i := range remaining {
		if used[i] {
			continue
		}
		chain := append(orb.LineString{}, remaining[i]...)
		used[i] = true

		// Extend forward from the chain's current end, then flip and
		// extend again to cover extension at the original start.
		for pass := 0; pass < 2; pass++ {
			for {
				_, tail := Endpoints(chain)
				candidates := adj[keyOf(tail)]
				next := -1
				nextReversed := false
				for _, c := range candidates {
					if used[c.lineIdx] {
						continue
					}
					next = c.lineIdx
					nextReversed = !c.atStart
					break
				}
				if next == -1 {
					break
				}
				used[next] = true
				piece := remaining[next]
				if nextReversed {
					piece = reverse(piece)
				}
				// Avoid duplicating the shared vertex.
				chain = append(chain, piece[1:]...)
			}
			chain = reverse(chain)
		}

		merged = append(merged, chain)
	}

	return merged
}

func reverse(l orb.LineString) orb.LineString {
	out := make(orb.LineString, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}
	return out
}
