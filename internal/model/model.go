// Package model defines the data shapes that flow through the pipeline:
// nodes, the coarse and detail street networks, OSM ways, translated OSM
// rows, segments, and final aggregated edges.
package model

import "github.com/paulmach/orb"

// DataSource identifies which OSM-derived collection a way came from.
type DataSource string

const (
	SourceBikelanes DataSource = "bikelanes"
	SourceStreets   DataSource = "streets"
	SourcePaths     DataSource = "paths"
)

// EdgeSource identifies where an EnrichedEdge's geometry came from.
type EdgeSource string

const (
	EdgeSourceDetailnetz EdgeSource = "detailnetz"
	EdgeSourceRVN        EdgeSource = "rvn"
)

// Node is a named point in the priority network, identified by a stable
// "Verbindungspunkt" ID. District is a two-digit Berlin district code,
// empty if unknown.
type Node struct {
	VPID     string
	Point    orb.Point
	District string
}

// PriorityEdge is a coarse street centerline before topology enrichment.
type PriorityEdge struct {
	ElementNr string
	FromNode  string
	ToNode    string
	Geometry  orb.LineString
}

// DetailEdge is a fine-grained topological street edge with exact
// geometry and a name, used to replace PriorityEdge geometry inside a
// buffer (C4).
type DetailEdge struct {
	ElementNr    string
	StreetName   string
	StreetClass  string
	FromNode     string
	ToNode       string
	Geometry     orb.LineString
}

// EnrichedEdge is the output of C3 (topology enrichment) plus C4 (detail
// network stitching): it carries resolved endpoint node IDs and, where
// available, detail-network geometry and naming.
type EnrichedEdge struct {
	ElementNr   string
	FromNode    string
	ToNode      string
	Geometry    orb.LineString
	EdgeSource  EdgeSource
	StreetName  string
	StreetClass string
}

// UniqueID identifies a row for deduplication during stitching: the
// source row index paired with the logical element number.
type UniqueID struct {
	RowIndex  int
	ElementNr string
}

// Attrs is the closed normalized attribute vocabulary "A" from spec §4.2.
// Pointer fields are nil when the value is unknown/not applicable, as
// opposed to the zero value of the underlying type.
type Attrs struct {
	Fuehr         string   // type of cycling guidance
	OFM           string   // surface material
	Protek        string   // physical protection
	Pflicht       bool     // obligation to use
	Breite        *float64 // width in meters, 0.1 precision
	Farbe         bool     // colour coating
	Verkehrsri    string   // direction of cycling traffic
	Trennstreifen string   // separation strip
	NutzBeschr    string   // usage restriction
}

// Clone returns a deep copy of Attrs (Breite is a pointer and must not be
// shared across rows that may independently reassign it).
func (a Attrs) Clone() Attrs {
	out := a
	if a.Breite != nil {
		b := *a.Breite
		out.Breite = &b
	}
	return out
}

// OSMWay is a raw linear OSM feature before translation, tagged with the
// data source it came from.
type OSMWay struct {
	OSMID        int64
	DataSource   DataSource
	Geometry     orb.LineString
	Category     string
	TrafficSign  string
	Surface      string
	SurfaceColor string
	Width        string
	Oneway       string
	OnewayBike   string
	Name         string

	// Side-suffixed fields: "left"/"right" -> value.
	Separation  map[string]string
	Marking     map[string]string
	TrafficMode map[string]string
	Buffer      map[string]float64
}

// TranslatedOSM is an OSMWay after C2 translation: the normalized
// attribute set A plus a subset of the original attributes re-prefixed
// tilda_*. Those raw fields are kept in a sparse map rather than
// mirrored as struct fields, per the "don't mirror the dataframe" design
// note.
type TranslatedOSM struct {
	OSMID      int64
	DataSource DataSource
	Geometry   orb.LineString
	Attrs      Attrs

	// Tilda holds re-prefixed provenance fields: "tilda_id",
	// "tilda_category", "tilda_oneway", "tilda_traffic_sign" and
	// "tilda_name" as set by tilda.Translate.
	Tilda map[string]string

	ManualAction string // "", "added", or "removed" (C5 step 3 audit)
}

// Segment is a ~S-meter piece of an EnrichedEdge, attributed per
// direction by C6.
type Segment struct {
	ElementNr string
	Geometry  orb.LineString
	RI        int // 0 = along source geometry, 1 = reverse
	Attrs     Attrs
	Tilda     map[string]string
	SFID      int
}

// FinalEdge is one row per (ElementNr, RI) after C8 aggregation. Geometry
// is a MultiLineString because linemerge does not guarantee a single
// contiguous chain: gaps in OSM coverage can leave an element split into
// several disjoint runs, and all of them are kept (spec §4.7).
type FinalEdge struct {
	ElementNr     string
	RI            int
	Geometry      orb.MultiLineString
	Attrs         Attrs
	Tilda         map[string]string
	LaengeM       int
	Bezirksnummer string
	AFID          int
}
