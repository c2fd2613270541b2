package tilda

import (
	"math"
	"strconv"
	"strings"
)

// ParseWidth converts an OSM width tag into a standardized meter value
// rounded to 0.1m, or nil if the value can't be parsed. It strips the
// unit tokens the original width_parser.py strips ("m", "meter",
// "metres" and their fragments) and, for semicolon-separated lists,
// keeps only the first value — per spec §4.2 "breite".
func ParseWidth(raw string) *float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}
	if idx := strings.Index(s, ";"); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	s = strings.ReplaceAll(s, "eter", "")
	s = strings.ReplaceAll(s, "etres", "")
	s = strings.ReplaceAll(s, "m", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	rounded := math.Round(v*10) / 10
	return &rounded
}
