package match

import "github.com/FixMyBerlin/infravelo-radnetz/internal/model"

// CandidateWay is an OSM way under consideration for inclusion in the
// matched network, carrying its source way alongside the matcher's
// working state.
type CandidateWay struct {
	model.OSMWay
}

// AuditEntry records a single manual include/exclude override, so the
// pipeline can report what was manually changed and why (spec §4.5 step
// 3; supplemented from original_source/processing/manual_interventions.py).
type AuditEntry struct {
	OSMID  int64
	Action string // "added" or "removed"
	Reason string
}
