// Package topology implements C3: stitching the priority network onto
// resolved endpoint node IDs via graph traversal, per spec §4.3 and the
// design notes in §9 (quantized-coordinate adjacency, bounded BFS, no
// recursion).
package topology

import (
	"fmt"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Config controls enrichment tolerances.
type Config struct {
	NodeTolerance float64 // default 1.0m: max distance to snap an endpoint to a named node
	MaxBFSDepth   int     // default 50
}

// DefaultConfig returns spec-mandated defaults.
func DefaultConfig() Config {
	return Config{NodeTolerance: 1.0, MaxBFSDepth: 50}
}

type coordKey struct{ x, y int64 }

const quantize = 1e4

func keyOf(p orb.Point) coordKey {
	return coordKey{int64(p[0] * quantize), int64(p[1] * quantize)}
}

type graphEdge struct {
	lineIdx int
	atStart bool // true if this endpoint is the line's start
}

// Enrich assigns (FromNode, ToNode, ElementNr) to each raw priority line
// using the named-node layer, per spec §4.3.
func Enrich(lines []orb.LineString, nodes []model.Node, cfg Config) []model.PriorityEdge {
	if cfg.NodeTolerance <= 0 {
		cfg.NodeTolerance = 1.0
	}
	if cfg.MaxBFSDepth <= 0 {
		cfg.MaxBFSDepth = 50
	}

	// Build undirected adjacency over quantized endpoint coordinates.
	adj := make(map[coordKey][]graphEdge)
	for i, l := range lines {
		s, e := geo.Endpoints(l)
		adj[keyOf(s)] = append(adj[keyOf(s)], graphEdge{i, true})
		adj[keyOf(e)] = append(adj[keyOf(e)], graphEdge{i, false})
	}

	resolved := make([]string, len(lines)*2) // [i*2]=from, [i*2+1]=to
	unknownCounter := 0

	nearestNode := func(p orb.Point) (string, bool) {
		best := cfg.NodeTolerance
		var bestID string
		found := false
		for _, n := range nodes {
			d := planar.Distance(p, n.Point)
			if d <= best {
				best = d
				bestID = n.VPID
				found = true
			}
		}
		return bestID, found
	}

	for i, l := range lines {
		s, e := geo.Endpoints(l)
		if id, ok := nearestNode(s); ok {
			resolved[i*2] = id
		}
		if id, ok := nearestNode(e); ok {
			resolved[i*2+1] = id
		}
	}

	// BFS fallback for unresolved endpoints.
	for i := range lines {
		if resolved[i*2] == "" {
			resolved[i*2] = bfsResolve(i, true, lines, adj, resolved, cfg.MaxBFSDepth)
		}
		if resolved[i*2+1] == "" {
			resolved[i*2+1] = bfsResolve(i, false, lines, adj, resolved, cfg.MaxBFSDepth)
		}
	}

	out := make([]model.PriorityEdge, len(lines))
	for i, l := range lines {
		from, to := resolved[i*2], resolved[i*2+1]
		elementNr := elementNrFor(from, to, &unknownCounter)
		out[i] = model.PriorityEdge{
			ElementNr: elementNr,
			FromNode:  orElse(from, "UNKNOWN"),
			ToNode:    orElse(to, "UNKNOWN"),
			Geometry:  l,
		}
	}
	return out
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func elementNrFor(from, to string, counter *int) string {
	switch {
	case from != "" && to != "":
		return fmt.Sprintf("%s_%s.01", from, to)
	case from != "":
		return fmt.Sprintf("%s_UNKNOWN.01", from)
	case to != "":
		return fmt.Sprintf("UNKNOWN_%s.01", to)
	default:
		*counter++
		return fmt.Sprintf("UNKNOWN_UNKNOWN_%03d.01", *counter)
	}
}

// bfsResolve performs a bounded breadth-first search over the endpoint
// graph from line lineIdx's given end, skipping lineIdx itself, until a
// resolved node ID is found at the far endpoint of some other line
// reached along the way.
// Explicit visited-set, no recursion (spec §9).
func bfsResolve(lineIdx int, atStart bool, lines []orb.LineString, adj map[coordKey][]graphEdge, resolved []string, maxDepth int) string {
	startPoint, endPoint := geo.Endpoints(lines[lineIdx])
	origin := startPoint
	if !atStart {
		origin = endPoint
	}

	type frontierNode struct {
		coord coordKey
		depth int
	}

	visited := map[coordKey]bool{keyOf(origin): true}
	queue := []frontierNode{{keyOf(origin), 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= maxDepth {
			continue
		}

		for _, ge := range adj[cur.coord] {
			if ge.lineIdx == lineIdx {
				continue
			}
			// Check the far endpoint of this edge, not the one at cur.
			idx := ge.lineIdx*2 + 1
			if !ge.atStart {
				idx--
			}
			if resolved[idx] != "" {
				return resolved[idx]
			}

			// Move to the other endpoint of this edge to keep traversing.
			s, e := geo.Endpoints(lines[ge.lineIdx])
			other := e
			if !ge.atStart {
				other = s
			}
			k := keyOf(other)
			if !visited[k] {
				visited[k] = true
				queue = append(queue, frontierNode{k, cur.depth + 1})
			}
		}
	}
	return ""
}
