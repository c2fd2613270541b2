package aggregate

import (
	"log/slog"
	"math"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
)

// resolveAttrs combines a group's rows into one Attrs value. Fuehr, OFM,
// Protek, Pflicht, Farbe and Verkehrsri are "longest-wins": whichever
// value covers the most total length across the group's rows is kept.
// Breite, Trennstreifen and NutzBeschr are "worst-wins": the value
// representing the least favorable condition anywhere in the group wins,
// since understating a hazard is worse than overstating one (spec §4.8
// step 2).
func resolveAttrs(rows []model.Segment, lengths []float64, logger *slog.Logger, elementNr string, ri int) model.Attrs {
	fuehr := longestWinsString(rows, lengths, func(a model.Attrs) string { return a.Fuehr })
	ofm := longestWinsString(rows, lengths, func(a model.Attrs) string { return a.OFM })
	protek := longestWinsString(rows, lengths, func(a model.Attrs) string { return a.Protek })
	verkehrsri := longestWinsString(rows, lengths, func(a model.Attrs) string { return a.Verkehrsri })
	pflicht := longestWinsBool(rows, lengths, func(a model.Attrs) bool { return a.Pflicht })
	farbe := longestWinsBool(rows, lengths, func(a model.Attrs) bool { return a.Farbe })

	trennstreifen := worstTrennstreifen(rows)
	nutzBeschr := worstNutzBeschr(rows)
	breite := worstBreite(rows, logger, elementNr, ri)

	return model.Attrs{
		Fuehr: fuehr, OFM: ofm, Protek: protek, Pflicht: pflicht, Farbe: farbe,
		Verkehrsri: verkehrsri, Trennstreifen: trennstreifen, NutzBeschr: nutzBeschr,
		Breite: breite,
	}
}

func longestWinsString(rows []model.Segment, lengths []float64, pick func(model.Attrs) string) string {
	totals := make(map[string]float64)
	var order []string
	for i, r := range rows {
		v := pick(r.Attrs)
		if _, ok := totals[v]; !ok {
			order = append(order, v)
		}
		totals[v] += lengths[i]
	}
	return bestByTotal(order, totals)
}

func longestWinsBool(rows []model.Segment, lengths []float64, pick func(model.Attrs) bool) bool {
	var trueLen, falseLen float64
	for i, r := range rows {
		if pick(r.Attrs) {
			trueLen += lengths[i]
		} else {
			falseLen += lengths[i]
		}
	}
	return trueLen >= falseLen
}

func bestByTotal(order []string, totals map[string]float64) string {
	best := ""
	bestTotal := -1.0
	for _, v := range order {
		if totals[v] > bestTotal {
			best = v
			bestTotal = totals[v]
		}
	}
	return best
}

// trennstreifenRank orders separation-strip quality from worst to best;
// "nein" (no strip) is the least safe condition.
var trennstreifenRank = map[string]int{
	tilda.TrennstreifenNein:      0,
	tilda.TrennstreifenEntfaellt: 1,
	tilda.TrennstreifenJa:        2,
}

func worstTrennstreifen(rows []model.Segment) string {
	worst := ""
	worstRank := math.MaxInt32
	for _, r := range rows {
		v := r.Attrs.Trennstreifen
		rank, ok := trennstreifenRank[v]
		if !ok {
			rank = 1 // unknown values sort as neutral, not worst
		}
		if rank < worstRank {
			worstRank = rank
			worst = v
		}
	}
	return worst
}

// worstNutzBeschr keeps any restriction over "keine" (no restriction):
// a usage restriction anywhere in the group is the worse condition.
func worstNutzBeschr(rows []model.Segment) string {
	worst := tilda.NutzBeschrKeine
	for _, r := range rows {
		v := r.Attrs.NutzBeschr
		if v != "" && v != tilda.NutzBeschrKeine {
			return v
		}
	}
	return worst
}

// worstBreite keeps the narrowest width across the group's rows (a
// narrower width is the more constraining, worse condition), and logs
// when the spread between rows exceeds SignificantWidthChangeM rather
// than silently discarding the disagreement.
func worstBreite(rows []model.Segment, logger *slog.Logger, elementNr string, ri int) *float64 {
	var min, max *float64
	for _, r := range rows {
		if r.Attrs.Breite == nil {
			continue
		}
		v := *r.Attrs.Breite
		if min == nil || v < *min {
			min = &v
		}
		if max == nil || v > *max {
			max = &v
		}
	}
	if min == nil {
		return nil
	}
	if max != nil && *max-*min > SignificantWidthChangeM {
		logger.Warn("significant width change within merged run",
			"element_nr", elementNr, "ri", ri, "min_breite", *min, "max_breite", *max)
	}
	return min
}
