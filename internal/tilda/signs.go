package tilda

import "strings"

// NormalizeTrafficSigns splits a raw OSM traffic_sign tag on ';',
// trims whitespace, uppercases the "DE:" prefix, and drops empties and
// duplicates. This mirrors consolidated_osm_traffic_signals.py from the
// original Python implementation: the raw tag is free text and varies
// in spacing/casing across ways, which breaks naive substring matching
// against sign codes.
func NormalizeTrafficSigns(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(s), "de:") {
			s = "DE:" + strings.TrimSpace(s[3:])
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// hasSign reports whether any of codes appears among the normalized
// signs in raw.
func hasSign(raw string, codes ...string) bool {
	signs := NormalizeTrafficSigns(raw)
	for _, s := range signs {
		for _, c := range codes {
			if s == c {
				return true
			}
		}
	}
	return false
}

// hasSignPrefix reports whether any normalized sign starts with prefix,
// used for e.g. "DE:242" matching both "DE:242" and "DE:242.1".
func hasSignPrefix(raw string, prefix string) bool {
	for _, s := range NormalizeTrafficSigns(raw) {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

var damageSignKeywords = []string{"Gehwegschäden", "Radwegschäden", "Geh- und Radwegschäden"}

func hasDamageSign(raw string) bool {
	for _, s := range NormalizeTrafficSigns(raw) {
		for _, kw := range damageSignKeywords {
			if strings.Contains(s, kw) {
				return true
			}
		}
	}
	return false
}
