package snap

import (
	"context"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
)

// toSnap is one segment position awaiting attribution: the forward (ri=0)
// and reverse (ri=1) segment cut from the same piece of the enriched
// edge, scored together since spec §4.6's special cases depend on both
// directions at once.
type toSnap struct {
	forward model.Segment
	reverse model.Segment
}

// attributed is the outcome of snapping one position: one segment in the
// one-way-mixed-traffic special case (spec §4.6 special case 1), two
// otherwise.
type attributed struct {
	segments []model.Segment
	trail    []candidateScore // only populated when Config.LogCandidates
}

// Snap attributes every segment position of every edge by finding its
// best direction-compatible candidate OSM way per direction (spec §4.6).
// Runs sequentially when cfg.Workers <= 1, across a worker pool
// otherwise; the CLI's sequential fallback (spec §6) is just
// DefaultConfig with Workers: 1.
func Snap(ctx context.Context, edges []model.EnrichedEdge, candidates *CandidateSet, cfg Config, onProgress ProgressFunc) []model.Segment {
	if cfg.SegmentMeters <= 0 {
		cfg = DefaultConfig()
	}

	var pairs []toSnap
	for _, e := range edges {
		segs := Segments(e, cfg)
		for i := 0; i+1 < len(segs); i += 2 {
			pairs = append(pairs, toSnap{forward: segs[i], reverse: segs[i+1]})
		}
	}

	snapOne := func(t toSnap) attributed { return snapPosition(t, candidates, cfg) }

	var results []attributed
	if cfg.Workers <= 1 {
		results = make([]attributed, len(pairs))
		for i, p := range pairs {
			results[i] = snapOne(p)
		}
	} else {
		results = runPool(ctx, pairs, snapOne, cfg, onProgress)
	}

	out := make([]model.Segment, 0, len(results)*2)
	for _, r := range results {
		out = append(out, r.segments...)
	}
	return out
}
