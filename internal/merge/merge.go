// Package merge implements C7: collapsing attributed segments back into
// per-direction runs wherever consecutive segments share the same
// normalized attributes, and assigning the final segment-feature ID
// (spec §4.7).
package merge

import (
	"fmt"
	"sort"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/geo"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
	"github.com/paulmach/orb"
)

// normalizedKey is the attribute tuple consecutive segments must share to
// be merged into one run. Breite is intentionally excluded: width is
// handled by the post-merge mixed-traffic clearing rule below, not by
// the grouping key itself (spec §4.7 step 2).
type normalizedKey struct {
	Fuehr         string
	OFM           string
	Protek        string
	Pflicht       bool
	Farbe         bool
	Verkehrsri    string
	Trennstreifen string
	NutzBeschr    string
}

func keyOf(a model.Attrs) normalizedKey {
	return normalizedKey{
		Fuehr: a.Fuehr, OFM: a.OFM, Protek: a.Protek, Pflicht: a.Pflicht,
		Farbe: a.Farbe, Verkehrsri: a.Verkehrsri, Trennstreifen: a.Trennstreifen,
		NutzBeschr: a.NutzBeschr,
	}
}

// Merge groups segments by (ElementNr, RI, normalized attrs), line-merges
// each group's geometry, keeps the first segment's row values, clears
// width on merged mixed-traffic runs (since width isn't meaningful once
// multiple physically-distinct pieces are treated as one logical run),
// computes length, and assigns a sequential SFID per call.
func Merge(segments []model.Segment) []model.Segment {
	type group struct {
		key   normalizedKey
		elnr  string
		ri    int
		first model.Segment
		lines []orb.LineString
	}

	order := make([]string, 0)
	groups := make(map[string]*group)

	groupID := func(elementNr string, ri int, k normalizedKey) string {
		return fmt.Sprintf("%s|%d|%s|%s|%s|%t|%t|%s|%s|%s",
			elementNr, ri, k.Fuehr, k.OFM, k.Protek, k.Pflicht, k.Farbe, k.Verkehrsri, k.Trennstreifen, k.NutzBeschr)
	}

	for _, s := range segments {
		k := keyOf(s.Attrs)
		id := groupID(s.ElementNr, s.RI, k)
		g, ok := groups[id]
		if !ok {
			g = &group{key: k, elnr: s.ElementNr, ri: s.RI, first: s}
			groups[id] = g
			order = append(order, id)
		}
		g.lines = append(g.lines, s.Geometry)
	}

	out := make([]model.Segment, 0, len(order))
	sfid := 0
	for _, id := range order {
		g := groups[id]
		merged := geo.LineMerge(g.lines)

		attrs := g.first.Attrs.Clone()
		if len(g.lines) > 1 && attrs.Fuehr == tilda.FuehrMischverkehr {
			attrs.Breite = nil
		}

		for _, line := range merged {
			sfid++
			out = append(out, model.Segment{
				ElementNr: g.elnr,
				Geometry:  line,
				RI:        g.ri,
				Attrs:     attrs.Clone(),
				Tilda:     g.first.Tilda,
				SFID:      sfid,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].SFID < out[j].SFID })
	return out
}

// Length returns the planar length of a merged segment's geometry, in
// meters, for callers that need it before C8 rounds it to whole meters.
func Length(s model.Segment) float64 {
	return geo.Length(s.Geometry)
}
