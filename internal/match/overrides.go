package match

// ApplyOverrides adjusts a matched set of OSM IDs with manual
// include/exclude lists, producing an audit trail of what changed (spec
// §4.5 step 3, supplemented from
// original_source/processing/manual_interventions.py: every override is
// logged, not silently applied).
//
// matched is the set of OSM IDs selected by containment/orthogonal
// filtering. Every ID in includeIDs is added to the result whether or not
// such a way exists; Match resolves the IDs back to ways afterwards and
// skips those it cannot find.
func ApplyOverrides(matched map[int64]bool, excludeIDs, includeIDs map[int64]bool) (map[int64]bool, []AuditEntry) {
	out := make(map[int64]bool, len(matched))
	for id := range matched {
		out[id] = true
	}

	var audit []AuditEntry

	for id := range excludeIDs {
		if out[id] {
			delete(out, id)
			audit = append(audit, AuditEntry{OSMID: id, Action: "removed", Reason: "manual exclude list"})
		}
	}

	for id := range includeIDs {
		if !out[id] {
			out[id] = true
			audit = append(audit, AuditEntry{OSMID: id, Action: "added", Reason: "manual include list"})
		}
	}

	return out, audit
}
