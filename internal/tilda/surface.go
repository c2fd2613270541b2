package tilda

import "log/slog"

var surfaceMapping = map[string]string{
	"asphalt":       OFMAsphalt,
	"concrete":        OFMBeton,
	"concrete:plates": OFMBeton,
	"concrete:lanes":  OFMBeton,
	"paving_stones": OFMGepflastert,
	"mosaic_sett":   OFMGepflastert,
	"small_sett":    OFMGepflastert,
	"large_sett":    OFMGepflastert,
	"sett":        OFMKopfsteinpflaster,
	"cobblestone": OFMKopfsteinpflaster,
	"bricks":      OFMKopfsteinpflaster,
	"stone":       OFMKopfsteinpflaster,
	"unpaved":      OFMUngebunden,
	"ground":       OFMUngebunden,
	"grass":        OFMUngebunden,
	"sand":         OFMUngebunden,
	"compacted":    OFMUngebunden,
	"fine_gravel":  OFMUngebunden,
	"pebblestone":  OFMUngebunden,
	"gravel":       OFMUngebunden,
	"grass_paver": OFMTODONichtZuordenbar,
	"wood":        OFMTODONichtZuordenbar,
	"metal":       OFMTODONichtZuordenbar,
	"paved":       OFMTODONichtZuordenbar,
}

// OFM maps a raw OSM surface value to the closed OFM vocabulary,
// per spec §4.2. Unknown values are logged and mapped to
// "NICHT-GEFUNDEN" rather than failing the translation.
func OFM(surface string, logger *slog.Logger) string {
	if surface == "" || surface == "missing" || surface == "none" {
		return OFMTODOFehlt
	}
	if v, ok := surfaceMapping[surface]; ok {
		return v
	}
	if logger != nil {
		logger.Warn("unknown surface value, falling back to NICHT-GEFUNDEN", "surface", surface)
	}
	return OFMNichtGefunden
}

// Farbe reports whether surfaceColor indicates a colour coating.
func Farbe(surfaceColor string) bool {
	return surfaceColor == "red" || surfaceColor == "green"
}
