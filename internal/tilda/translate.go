// Package tilda implements C2, the attribute translator: it maps the
// heterogeneous OSM tag vocabulary (TILDA-derived) into the closed
// normalized attribute set A described in spec §4.2, and re-prefixes
// the original raw attributes as tilda_* provenance.
package tilda

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
)

// Verkehrsri determines the direction of cycling traffic, per spec
// §4.2. Rules differ between bikelanes and streets/paths.
func Verkehrsri(w model.OSMWay) string {
	if w.DataSource == model.SourceBikelanes {
		switch w.Oneway {
		case "yes":
			return VerkehrsriEinrichtung
		case "no", "car_not_bike":
			return VerkehrsriZweirichtung
		case "assumed_no":
			return VerkehrsriTODOAssumed
		case "implicit_yes":
			return VerkehrsriTODOImplicit
		case "":
			return VerkehrsriTODOMissing
		default:
			return VerkehrsriTODOMissing
		}
	}

	// streets / paths
	if w.Oneway == "" {
		return VerkehrsriZweirichtung
	}
	if w.OnewayBike == "no" {
		return VerkehrsriZweirichtung
	}
	if w.Oneway == "yes" || w.Oneway == "yes_dual_carriageway" {
		return VerkehrsriEinrichtung
	}
	return VerkehrsriZweirichtung
}

// Fuehr determines the type of cycling guidance, per spec §4.2.
func Fuehr(w model.OSMWay) string {
	switch w.DataSource {
	case model.SourceStreets:
		return FuehrMischverkehr
	case model.SourcePaths:
		return FuehrSonstigeWegeLang
	}

	category := w.Category
	sign := w.TrafficSign

	switch {
	case category == "cyclewayOnHighway_exclusive" || category == "cyclewayOnHighwayBetweenLanes":
		return FuehrRadfahrstreifen
	case category == "sharedBusLaneBikeWithBus":
		return FuehrLinienverkehrFrei
	case category == "cyclewayOnHighwayProtected":
		return FuehrGeschuetzterRFS
	case category == "cyclewayOnHighway_advisory":
		return FuehrSchutzstreifen
	case strings.HasPrefix(category, "bicycleRoad"):
		return FuehrFahrradstrasse
	case strings.HasPrefix(category, "footAndCyclewayShared"):
		if hasSignPrefix(sign, "DE:240") {
			return FuehrGehUndRadwegZ240
		}
		return FuehrRadweg
	case strings.HasPrefix(category, "footAndCyclewaySegregated"),
		strings.HasPrefix(category, "cyclewaySeparated"),
		strings.HasPrefix(category, "cycleway_adjoining"):
		return FuehrRadweg
	case strings.HasPrefix(category, "footwayBicycleYes"):
		has239 := hasSignPrefix(sign, "DE:239")
		has102210 := hasSignPrefix(sign, "DE:1022-10")
		switch {
		case has239 && has102210:
			return FuehrGehwegRadverkehrFrei
		case sign == "":
			return FuehrSonstigeWege
		default:
			return FuehrTODOGehwegOhneZeichen
		}
	case category == "pedestrianAreaBicycleYes":
		if (hasSignPrefix(sign, "DE:242") || hasSignPrefix(sign, "DE:242.1")) && hasSignPrefix(sign, "DE:1022-10") {
			return FuehrFussgaengerzone
		}
		return FuehrTODOFuehrungFehlt
	case category == "crossing":
		return FuehrTODOKreuzungsQuerung
	case category == "needsClarification":
		return FuehrTODOKlaerungNotwendig
	default:
		return FuehrTODOFuehrungFehlt
	}
}

// Pflicht reports the obligation to use a bikelane, per spec §4.2.
func Pflicht(w model.OSMWay) bool {
	if w.DataSource != model.SourceBikelanes {
		return false
	}
	return hasSign(w.TrafficSign, "DE:237", "DE:240", "DE:241")
}

// Protek determines physical protection, per spec §4.2. Only
// meaningful for cyclewayOnHighwayProtected; all other categories
// report "Ohne".
func Protek(w model.OSMWay) string {
	if w.Category != "cyclewayOnHighwayProtected" {
		return ProtekOhne
	}

	for _, side := range []string{"left", "right"} {
		mode := w.TrafficMode[side]
		marking := w.Marking[side]
		sep := w.Separation[side]

		if mode == "parking" && strings.Contains(marking, "barred_area") {
			return ProtekRuhenderV
		}
		switch sep {
		case "bollard":
			return ProtekPoller
		case "bump":
			return ProtekSchwellen
		case "vertical_panel":
			return ProtekLeitboys
		case "planter", "guard_rail":
			return ProtekSonstige
		case "no":
			if strings.Contains(marking, "barred_area") {
				return ProtekNurSperrflaeche
			}
			return ProtekOhne
		}
	}
	return ProtekTODOFehlt
}

// Trennstreifen determines the safety separation strip value, per spec
// §4.2. Bicycle roads check both sides; everything else checks the
// right side only.
func Trennstreifen(w model.OSMWay) string {
	if strings.HasPrefix(w.Category, "bicycleRoad") {
		anyParking := false
		for _, side := range []string{"left", "right"} {
			if w.TrafficMode[side] == "parking" {
				anyParking = true
				marking := w.Marking[side]
				if strings.Contains(marking, "dashed_line") || strings.Contains(marking, "solid_line") {
					return TrennstreifenJa
				}
			}
		}
		if !anyParking {
			return TrennstreifenEntfaellt
		}
		return TrennstreifenNein
	}

	if w.TrafficMode["right"] != "parking" {
		return TrennstreifenEntfaellt
	}
	if w.Buffer["right"] >= 0.6 {
		return TrennstreifenJa
	}
	return TrennstreifenNein
}

// NutzBeschr determines the usage-restriction value, per spec §4.2.
func NutzBeschr(w model.OSMWay) string {
	if hasDamageSign(w.TrafficSign) {
		return "Schadensschild " + strings.Join(matchedDamageSigns(w.TrafficSign), ", ")
	}
	return NutzBeschrKeine
}

func matchedDamageSigns(raw string) []string {
	var out []string
	for _, s := range NormalizeTrafficSigns(raw) {
		for _, kw := range damageSignKeywords {
			if strings.Contains(s, kw) {
				out = append(out, kw)
			}
		}
	}
	return out
}

// Translate maps a single OSMWay into its TranslatedOSM form: the
// normalized attribute set A, plus five original attributes re-prefixed
// tilda_* (tilda_id, tilda_category, tilda_traffic_sign, tilda_oneway,
// tilda_name). Other raw fields are not carried into Tilda.
func Translate(w model.OSMWay, logger *slog.Logger) model.TranslatedOSM {
	attrs := model.Attrs{
		Fuehr:         Fuehr(w),
		OFM:           OFM(w.Surface, logger),
		Protek:        Protek(w),
		Pflicht:       Pflicht(w),
		Breite:        ParseWidth(w.Width),
		Farbe:         Farbe(w.SurfaceColor),
		Verkehrsri:    Verkehrsri(w),
		Trennstreifen: Trennstreifen(w),
		NutzBeschr:    NutzBeschr(w),
	}

	tilda := map[string]string{
		"tilda_id":           fmt.Sprintf("%d", w.OSMID),
		"tilda_category":     w.Category,
		"tilda_traffic_sign": w.TrafficSign,
		"tilda_oneway":       w.Oneway,
		"tilda_name":         w.Name,
	}

	return model.TranslatedOSM{
		OSMID:      w.OSMID,
		DataSource: w.DataSource,
		Geometry:   w.Geometry,
		Attrs:      attrs,
		Tilda:      tilda,
	}
}
