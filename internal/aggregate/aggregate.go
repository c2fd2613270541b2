// Package aggregate implements C8: collapsing C7's per-run segments into
// one FinalEdge per (ElementNr, RI), resolving attribute conflicts with
// longest-wins and worst-wins rules, joining provenance, and assigning
// district and per-layer feature IDs (spec §4.8).
package aggregate

import (
	"fmt"
	"log/slog"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/paulmach/orb"
)

// District is a named administrative area used to tag each final edge
// with the Berlin district it mostly runs through.
type District struct {
	Name    string
	Polygon orb.Polygon
}

// SignificantWidthChangeM flags groups whose merged runs disagree on
// width by more than this many meters, per spec §9's "log significant
// changes, don't silently average" design note.
const SignificantWidthChangeM = 1.0

// Aggregate groups merged segments by (ElementNr, RI), resolves their
// attributes, and returns one FinalEdge per group. AFID is assigned
// sequentially within each RI value, since the GeoPackage writer (C8/§6)
// splits RI=0 and RI=1 into separate layers and restarts numbering there.
func Aggregate(segments []model.Segment, districts []District, logger *slog.Logger) []model.FinalEdge {
	if logger == nil {
		logger = slog.Default()
	}

	type group struct {
		elnr string
		ri   int
		rows []model.Segment
	}

	order := make([]string, 0)
	groups := make(map[string]*group)
	for _, s := range segments {
		id := fmt.Sprintf("%s|%d", s.ElementNr, s.RI)
		g, ok := groups[id]
		if !ok {
			g = &group{elnr: s.ElementNr, ri: s.RI}
			groups[id] = g
			order = append(order, id)
		}
		g.rows = append(g.rows, s)
	}

	out := make([]model.FinalEdge, 0, len(order))
	afidByRI := map[int]int{0: 0, 1: 0}

	for _, id := range order {
		g := groups[id]

		lines := make([]orb.LineString, len(g.rows))
		lengths := make([]float64, len(g.rows))
		for i, r := range g.rows {
			lines[i] = r.Geometry
			lengths[i] = geo.Length(r.Geometry)
		}

		merged := geo.LineMerge(lines)
		totalLen := 0.0
		for _, l := range merged {
			totalLen += geo.Length(l)
		}
		finalGeom := orb.MultiLineString(merged)

		attrs := resolveAttrs(g.rows, lengths, logger, g.elnr, g.ri)
		tildaJoined := joinTilda(g.rows)

		afidByRI[g.ri]++

		out = append(out, model.FinalEdge{
			ElementNr:     g.elnr,
			RI:            g.ri,
			Geometry:      finalGeom,
			Attrs:         attrs,
			Tilda:         tildaJoined,
			LaengeM:       int(totalLen + 0.5),
			Bezirksnummer: assignDistrict(finalGeom, districts),
			AFID:          afidByRI[g.ri],
		})
	}

	return out
}
