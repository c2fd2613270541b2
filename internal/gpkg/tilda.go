package gpkg

import (
	"sort"
	"strings"
)

// encodeTilda serializes a FinalEdge's tilda_* provenance map into one
// deterministic string column: "key=value" pairs, sorted by key and
// joined with ";". The provenance keys vary per row (tilda_id,
// tilda_name, tilda_category, tilda_traffic_sign, tilda_oneway, ...), so
// they can't be fixed GeoPackage columns; this keeps them alongside the
// normalized attributes instead of silently dropping them (spec §4.7).
func encodeTilda(tilda map[string]string) string {
	if len(tilda) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tilda))
	for k := range tilda {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := tilda[k]; v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, ";")
}
