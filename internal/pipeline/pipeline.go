// Package pipeline wires the network builder's stages (C2 through C8)
// into a single sequential run, in the teacher's Generator style:
// dependencies injected at construction, one Run method and an optional
// progress hook. Run recomputes every stage on each call and reads or
// writes no on-disk cache; CacheKeyFor only derives per-stage cache keys.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/aggregate"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/cache"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/config"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/gpkg"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/match"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/merge"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/snap"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/stitch"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/tilda"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/topology"
	"github.com/paulmach/orb"
)

// Input is every raw dataset the pipeline needs: the priority and
// detail street networks, named nodes, the three OSM way collections,
// and the district layer used for Bezirksnummer assignment (spec §2).
type Input struct {
	PriorityLines []orb.LineString
	Nodes         []model.Node
	DetailEdges   []model.DetailEdge

	Bikelanes []model.OSMWay
	Streets   []model.OSMWay
	Paths     []model.OSMWay

	Districts []aggregate.District

	ExcludeIDs map[int64]bool
	IncludeIDs map[int64]bool
}

// ProgressFunc is called after each named stage completes.
type ProgressFunc func(stage string)

// Pipeline runs the full builder end to end.
type Pipeline struct {
	cfg        config.Config
	logger     *slog.Logger
	onProgress ProgressFunc
}

// New constructs a Pipeline from a resolved config and logger.
func New(cfg config.Config, logger *slog.Logger, onProgress ProgressFunc) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger, onProgress: onProgress}
}

func (p *Pipeline) report(stage string) {
	p.logger.Info("stage complete", "stage", stage)
	if p.onProgress != nil {
		p.onProgress(stage)
	}
}

// Run executes C3 through C8 in sequence and writes the result to a
// GeoPackage at outputPath. It stops and returns the first error
// encountered — per spec §7, the pipeline is not resilient to partial
// per-stage failure; a bad input aborts the whole run rather than
// silently skipping the affected rows.
func (p *Pipeline) Run(ctx context.Context, in Input, outputPath string) error {
	priority := topology.Enrich(in.PriorityLines, in.Nodes, p.cfg.Topology)
	p.report("topology")

	enriched := stitch.Stitch(priority, in.DetailEdges, p.cfg.Stitcher)
	p.report("stitch")

	enrichedLines := make([]orb.LineString, len(enriched))
	for i, e := range enriched {
		enrichedLines[i] = e.Geometry
	}

	bikelanes := p.matchSource(in.Bikelanes, enrichedLines, p.cfg.Bikelanes, in.ExcludeIDs, in.IncludeIDs)
	streets := p.matchSource(in.Streets, enrichedLines, p.cfg.Streets, in.ExcludeIDs, in.IncludeIDs)
	paths := p.matchSource(in.Paths, enrichedLines, p.cfg.Paths, in.ExcludeIDs, in.IncludeIDs)

	streetsOnly := match.StreetsWithoutBikelanes(streets, bikelanes, p.cfg.Streets)
	pathsOnly := match.PathsWithoutStreetsAndBikelanes(paths, streets, bikelanes, p.cfg.Paths)
	matched := match.Combine(bikelanes, streetsOnly, pathsOnly)
	p.report("match")

	translated := make([]model.TranslatedOSM, len(matched))
	for i, w := range matched {
		translated[i] = tilda.Translate(w.OSMWay, p.logger)
	}
	p.report("translate")

	candidates := snap.NewCandidateSet(translated)
	segments := snap.Snap(ctx, enriched, candidates, p.cfg.Snapper, func(done, total int) {
		p.logger.Debug("snap progress", "done", done, "total", total)
	})
	p.report("snap")

	merged := merge.Merge(segments)
	p.report("merge")

	final := aggregate.Aggregate(merged, in.Districts, p.logger)
	p.report("aggregate")

	writer, err := gpkg.New(outputPath)
	if err != nil {
		return fmt.Errorf("open output geopackage: %w", err)
	}
	defer writer.Close()

	for _, edge := range final {
		if err := writer.WriteEdge(edge); err != nil {
			return fmt.Errorf("write edge %s: %w", edge.ElementNr, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output geopackage: %w", err)
	}
	p.report("write")

	return nil
}

func (p *Pipeline) matchSource(ways []model.OSMWay, priorityLines []orb.LineString, cfg match.Config, excludeIDs, includeIDs map[int64]bool) []match.CandidateWay {
	candidates := make([]match.CandidateWay, len(ways))
	for i, w := range ways {
		candidates[i] = match.CandidateWay{OSMWay: w}
	}
	out, audit := match.Match(candidates, priorityLines, excludeIDs, includeIDs, cfg)
	for _, a := range audit {
		p.logger.Info("manual override applied", "osm_id", a.OSMID, "action", a.Action, "reason", a.Reason)
	}
	return out
}

// CacheKeyFor derives a cache.Key for a named stage from the pipeline's
// config, so Run's caller can short-circuit stages whose inputs and
// config haven't changed since the last run (spec §5).
func (p *Pipeline) CacheKeyFor(stage string) (string, error) {
	switch stage {
	case "stitch":
		return cache.Key(stage, p.cfg.Stitcher)
	case "match-bikelanes":
		return cache.Key(stage, p.cfg.Bikelanes)
	case "match-streets":
		return cache.Key(stage, p.cfg.Streets)
	case "match-paths":
		return cache.Key(stage, p.cfg.Paths)
	case "snap":
		return cache.Key(stage, p.cfg.Snapper)
	default:
		return cache.Key(stage, p.cfg)
	}
}
