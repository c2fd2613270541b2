package tilda

// Closed enumerations for the normalized attribute set A (spec §3, §8
// invariant 4). "[TODO] ..." diagnostic values are allowed anywhere a
// closed value is, since the original data has gaps the translator
// can't resolve on its own.

const (
	VerkehrsriEinrichtung   = "Einrichtungsverkehr"
	VerkehrsriZweirichtung  = "Zweirichtungsverkehr"
	VerkehrsriTODOAssumed   = "[TODO] vermutlich nein"
	VerkehrsriTODOImplicit  = "[TODO] vermutlich Einrichtungsverkehr"
	VerkehrsriTODOMissing   = "[TODO] fehlender Wert"
)

const (
	FuehrRadfahrstreifen        = "Radfahrstreifen"
	FuehrLinienverkehrFrei      = "Radfahrstreifen mit Linienverkehr frei (Z237 + Z1026-32)"
	FuehrGeschuetzterRFS        = "Geschützter Radfahrstreifen"
	FuehrSchutzstreifen         = "Schutzstreifen"
	FuehrFahrradstrasse         = "Fahrradstraße /-zone (Z244)"
	FuehrGehUndRadwegZ240       = "Gemeinsamer Geh- und Radweg mit Z240"
	FuehrRadweg                 = "Radweg"
	FuehrGehwegRadverkehrFrei   = "Gehweg mit Zusatzzeichen Radverkehr frei"
	FuehrSonstigeWege           = "Sonstige Wege"
	FuehrTODOGehwegOhneZeichen  = "[TODO] Gehweg ohne Verkehrszeichen"
	FuehrFussgaengerzone        = "Fußgängerzone Radverkehr frei"
	FuehrTODOKreuzungsQuerung   = "[TODO] Kreuzungs-Querung"
	FuehrTODOKlaerungNotwendig  = "[TODO] Klärung notwendig"
	FuehrTODOFuehrungFehlt      = "[TODO] Führung fehlt"
	FuehrMischverkehr           = "Mischverkehr mit motorisiertem Verkehr"
	FuehrSonstigeWegeLang       = "Sonstige Wege (Gehwege, Wege durch Grünflächen, Plätze)"
	FuehrKeineRadinfrastruktur  = "Keine Radinfrastruktur vorhanden"
)

const (
	OFMAsphalt          = "Asphalt"
	OFMBeton            = "Beton"
	OFMGepflastert      = "Gepflastert"
	OFMKopfsteinpflaster = "Kopfsteinpflaster"
	OFMUngebunden       = "Ungebunden"
	OFMTODONichtZuordenbar = "[TODO] nicht zuordenbar"
	OFMTODOFehlt        = "[TODO] fehlt"
	OFMNichtGefunden    = "NICHT-GEFUNDEN"
)

const (
	ProtekOhne           = "Ohne"
	ProtekRuhenderV      = "Ruhender Verkehr (mit Sperrfläche)"
	ProtekPoller         = "Poller"
	ProtekSchwellen      = "Schwellen"
	ProtekLeitboys       = "Leitboys"
	ProtekSonstige       = "Sonstige"
	ProtekNurSperrflaeche = "nur Sperrfläche"
	ProtekTODOFehlt      = "[TODO] Protektionstyp fehlt"
)

const (
	TrennstreifenJa        = "ja"
	TrennstreifenNein      = "nein"
	TrennstreifenEntfaellt = "entfällt"
)

const (
	NutzBeschrKeine = "keine"
)
