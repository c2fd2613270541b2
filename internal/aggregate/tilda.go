package aggregate

import (
	"sort"
	"strings"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
)

// joinTilda merges a group's provenance maps, semicolon-joining distinct
// values seen under the same key across rows (spec §4.8 step 3) so a
// merged run still records every OSM way that contributed to it.
func joinTilda(rows []model.Segment) map[string]string {
	values := make(map[string]map[string]bool)
	var keyOrder []string

	for _, r := range rows {
		for k, v := range r.Tilda {
			if v == "" {
				continue
			}
			if _, ok := values[k]; !ok {
				values[k] = make(map[string]bool)
				keyOrder = append(keyOrder, k)
			}
			values[k][v] = true
		}
	}

	out := make(map[string]string, len(keyOrder))
	for _, k := range keyOrder {
		seen := values[k]
		parts := make([]string, 0, len(seen))
		for v := range seen {
			parts = append(parts, v)
		}
		sort.Strings(parts)
		out[k] = strings.Join(parts, ";")
	}
	return out
}
