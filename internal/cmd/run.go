package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/config"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/ingest"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline end to end and write the output GeoPackage",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64("segment-meters", 2.5, "Directional segment length in meters")
	runCmd.Flags().Float64("buffer-meters-bikelanes", 25, "Containment buffer radius for the bikelanes layer")
	runCmd.Flags().Float64("buffer-meters-streets", 15, "Containment buffer radius for the streets layer")
	runCmd.Flags().Float64("buffer-meters-paths", 15, "Containment buffer radius for the paths layer")
	runCmd.Flags().Int("snap-workers", runtime.NumCPU()-1, "Worker count for the directional snapper (0 or 1 runs sequentially)")
	runCmd.Flags().Bool("diagnose-candidates", false, "Score every considered snap candidate per segment position (the scores are not written to the output or the log)")

	for _, flag := range []string{"segment-meters", "buffer-meters-bikelanes", "buffer-meters-streets", "buffer-meters-paths", "snap-workers", "diagnose-candidates"} {
		if err := viper.BindPFlag(flag, runCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, err := loadInput(cfg)
	if err != nil {
		return fmt.Errorf("load input data: %w", err)
	}

	total := 0
	p := pipeline.New(cfg, logger, func(stage string) {
		total++
		logger.Info("progress", "stage", stage, "stages_complete", total)
	})

	outPath := filepath.Join(cfg.OutputDir, "radnetz.gpkg")
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := p.Run(ctx, in, outPath); err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	logger.Info("done", "output", outPath)
	return nil
}

func loadInput(cfg config.Config) (pipeline.Input, error) {
	var in pipeline.Input
	var err error

	path := func(name string) string { return filepath.Join(cfg.DataDir, name) }

	if in.PriorityLines, err = ingest.LoadPriorityNetwork(path("priority_network.geojson")); err != nil {
		return in, err
	}
	if in.Nodes, err = ingest.LoadNodes(path("nodes.geojson")); err != nil {
		return in, err
	}
	if in.DetailEdges, err = ingest.LoadDetailEdges(path("detail_network.geojson")); err != nil {
		return in, err
	}
	if in.Bikelanes, err = ingest.LoadOSMWays(path("bikelanes.geojson"), model.SourceBikelanes); err != nil {
		return in, err
	}
	if in.Streets, err = ingest.LoadOSMWays(path("streets.geojson"), model.SourceStreets); err != nil {
		return in, err
	}
	if in.Paths, err = ingest.LoadOSMWays(path("paths.geojson"), model.SourcePaths); err != nil {
		return in, err
	}
	if in.Districts, err = ingest.LoadDistricts(path("districts.geojson")); err != nil {
		return in, err
	}

	if cfg.ExcludeWaysFile != "" {
		if in.ExcludeIDs, err = ingest.LoadIDFile(cfg.ExcludeWaysFile); err != nil {
			return in, err
		}
	}
	if cfg.IncludeWaysFile != "" {
		if in.IncludeIDs, err = ingest.LoadIDFile(cfg.IncludeWaysFile); err != nil {
			return in, err
		}
	}

	return in, nil
}
