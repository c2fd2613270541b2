// Package ingest reads the pipeline's GeoJSON input layers (priority
// network, named nodes, detail network, OSM way extracts, district
// boundaries) into the model types the rest of the pipeline works with,
// using paulmach/orb's geojson codec the way the teacher's internal/geojson
// package converts to GeoJSON in the opposite direction (spec §6).
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/aggregate"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/match"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func readFeatureCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse geojson %s: %w", path, err)
	}
	return &fc, nil
}

func propString(props geojson.Properties, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func propFloat(props geojson.Properties, key string) float64 {
	v, ok := props[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}

func propInt64(props geojson.Properties, key string) int64 {
	return int64(propFloat(props, key))
}

// LoadPriorityNetwork reads the coarse priority network layer: one
// LineString per feature (spec §2/§4.1's "coarse street centerline"
// input to C3).
func LoadPriorityNetwork(path string) ([]orb.LineString, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}
	var out []orb.LineString
	for _, f := range fc.Features {
		if line, ok := f.Geometry.(orb.LineString); ok {
			out = append(out, line)
		}
	}
	return out, nil
}

// LoadNodes reads the named "Verbindungspunkt" node layer.
func LoadNodes(path string) ([]model.Node, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}
	var out []model.Node
	for _, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		out = append(out, model.Node{
			VPID:     propString(f.Properties, "vp_id"),
			Point:    p,
			District: propString(f.Properties, "bezirk"),
		})
	}
	return out, nil
}

// LoadDetailEdges reads the fine-grained detail street network layer.
func LoadDetailEdges(path string) ([]model.DetailEdge, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}
	var out []model.DetailEdge
	for _, f := range fc.Features {
		line, ok := f.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		out = append(out, model.DetailEdge{
			ElementNr:   propString(f.Properties, "element_nr"),
			StreetName:  propString(f.Properties, "strassenname"),
			StreetClass: propString(f.Properties, "strassenklasse"),
			FromNode:    propString(f.Properties, "von"),
			ToNode:      propString(f.Properties, "nach"),
			Geometry:    line,
		})
	}
	return out, nil
}

// LoadOSMWays reads one of the three OSM way extracts (bikelanes,
// streets, paths), tagging every way with source.
func LoadOSMWays(path string, source model.DataSource) ([]model.OSMWay, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}
	var out []model.OSMWay
	for _, f := range fc.Features {
		line, ok := f.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		p := f.Properties
		out = append(out, model.OSMWay{
			OSMID:        propInt64(p, "osm_id"),
			DataSource:   source,
			Geometry:     line,
			Category:     propString(p, "category"),
			TrafficSign:  propString(p, "traffic_sign"),
			Surface:      propString(p, "surface"),
			SurfaceColor: propString(p, "surface_color"),
			Width:        propString(p, "width"),
			Oneway:       propString(p, "oneway"),
			OnewayBike:   propString(p, "oneway_bicycle"),
			Name:         propString(p, "name"),
			Separation: map[string]string{
				"left": propString(p, "separation_left"), "right": propString(p, "separation_right"),
			},
			Marking: map[string]string{
				"left": propString(p, "marking_left"), "right": propString(p, "marking_right"),
			},
			TrafficMode: map[string]string{
				"left": propString(p, "traffic_mode_left"), "right": propString(p, "traffic_mode_right"),
			},
			Buffer: map[string]float64{
				"left": propFloat(p, "buffer_left"), "right": propFloat(p, "buffer_right"),
			},
		})
	}
	return out, nil
}

// LoadDistricts reads the Berlin district boundary layer used for
// Bezirksnummer assignment.
func LoadDistricts(path string) ([]aggregate.District, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}
	var out []aggregate.District
	for _, f := range fc.Features {
		poly, ok := f.Geometry.(orb.Polygon)
		if !ok {
			continue
		}
		out = append(out, aggregate.District{
			Name:    propString(f.Properties, "bezirk"),
			Polygon: poly,
		})
	}
	return out, nil
}

// LoadIDFile reads a plain-text OSM ID override list (exclude_ways.txt /
// include_ways.txt format).
func LoadIDFile(path string) (map[int64]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[int64]bool{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return match.ReadIDList(f)
}
