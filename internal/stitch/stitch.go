// Package stitch implements C4: replacing coarse priority-network
// geometry with detail-network geometry wherever the detail network
// covers it, and retaining gap edges where it doesn't (spec §4.4).
package stitch

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/paulmach/orb"
)

// Config controls the stitching buffer radius and exclusions.
type Config struct {
	BufferMeters float64 // default 5.0
	ExcludeIDs   map[string]bool
}

// DefaultConfig returns spec-mandated defaults.
func DefaultConfig() Config {
	return Config{BufferMeters: 5.0}
}

// Stitch replaces priority-network geometry with detail-network
// geometry inside a buffer around the priority network, retaining
// uncovered stretches as gap edges.
func Stitch(priority []model.PriorityEdge, detail []model.DetailEdge, cfg Config) []model.EnrichedEdge {
	if cfg.BufferMeters <= 0 {
		cfg.BufferMeters = 5.0
	}

	priorityBuffers := make([]orb.Polygon, len(priority))
	for i, p := range priority {
		priorityBuffers[i] = geo.Buffer(p.Geometry, cfg.BufferMeters, geo.CapRound)
	}

	var covered []model.DetailEdge
	for _, d := range detail {
		if lineEntirelyInAny(d.Geometry, priorityBuffers) {
			covered = append(covered, d)
		}
	}

	coveredBuffers := make([]orb.Polygon, len(covered))
	for i, d := range covered {
		coveredBuffers[i] = geo.Buffer(d.Geometry, cfg.BufferMeters, geo.CapRound)
	}

	var gaps []model.PriorityEdge
	for _, p := range priority {
		if !lineEntirelyInAny(p.Geometry, coveredBuffers) {
			gaps = append(gaps, p)
		}
	}

	out := make([]model.EnrichedEdge, 0, len(covered)+len(gaps))
	seen := make(map[model.UniqueID]bool)

	for i, d := range covered {
		id := model.UniqueID{RowIndex: i, ElementNr: d.ElementNr}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, model.EnrichedEdge{
			ElementNr:   d.ElementNr,
			FromNode:    d.FromNode,
			ToNode:      d.ToNode,
			Geometry:    d.Geometry,
			EdgeSource:  model.EdgeSourceDetailnetz,
			StreetName:  d.StreetName,
			StreetClass: d.StreetClass,
		})
	}

	for i, p := range gaps {
		id := model.UniqueID{RowIndex: len(covered) + i, ElementNr: p.ElementNr}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, model.EnrichedEdge{
			ElementNr:  p.ElementNr,
			FromNode:   p.FromNode,
			ToNode:     p.ToNode,
			Geometry:   p.Geometry,
			EdgeSource: model.EdgeSourceRVN,
		})
	}

	if len(cfg.ExcludeIDs) > 0 {
		filtered := out[:0]
		for _, e := range out {
			if !cfg.ExcludeIDs[e.ElementNr] {
				filtered = append(filtered, e)
			}
		}
		out = filtered
	}

	return out
}

// lineEntirelyInAny reports whether every vertex of line falls inside
// at least one of polys (checked per-vertex, which is a correct proxy
// for "entirely contained" on the short, roughly-straight segments this
// pipeline works with).
func lineEntirelyInAny(line orb.LineString, polys []orb.Polygon) bool {
	if len(polys) == 0 {
		return false
	}
	for _, v := range line {
		inAny := false
		for _, poly := range polys {
			if geo.PolygonContainsPoint(poly, v) {
				inAny = true
				break
			}
		}
		if !inAny {
			return false
		}
	}
	return true
}
