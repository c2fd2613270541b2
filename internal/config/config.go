// Package config defines the pipeline's viper-backed configuration tree,
// following the teacher's internal/cmd/root.go pattern: flags bind into
// viper keys, viper reads an optional YAML file and environment
// variables, and this package maps the merged result onto typed structs
// with spec-mandated defaults (spec §4, §6).
package config

import (
	"github.com/FixMyBerlin/infravelo-radnetz/internal/match"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/snap"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/stitch"
	"github.com/FixMyBerlin/infravelo-radnetz/internal/topology"
	"github.com/spf13/viper"
)

// Config is the fully-resolved pipeline configuration.
type Config struct {
	DataDir   string `mapstructure:"data-dir"`
	OutputDir string `mapstructure:"output-dir"`
	CacheDir  string `mapstructure:"cache-dir"`
	LogLevel  string `mapstructure:"log-level"`

	ExcludeWaysFile string `mapstructure:"exclude-ways-file"`
	IncludeWaysFile string `mapstructure:"include-ways-file"`

	Topology topology.Config
	Stitcher stitch.Config

	Bikelanes match.Config
	Streets   match.Config
	Paths     match.Config

	Snapper snap.Config
}

// Defaults returns the spec-mandated defaults for every tunable, the way
// the teacher's "data-source"/"output-dir" flags default in root.go.
func Defaults() Config {
	return Config{
		DataDir:   "./data",
		OutputDir: "./output",
		CacheDir:  "./.cache",
		LogLevel:  "info",

		Topology: topology.DefaultConfig(),
		Stitcher: stitch.DefaultConfig(),

		Bikelanes: match.DefaultBikelanesConfig(),
		Streets:   match.DefaultStreetsConfig(),
		Paths:     match.DefaultPathsConfig(),

		Snapper: snap.DefaultConfig(),
	}
}

// Load merges viper's resolved configuration (flags, env, config file)
// onto the spec defaults.
func Load(v *viper.Viper) (Config, error) {
	cfg := Defaults()

	if dir := v.GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if dir := v.GetString("output-dir"); dir != "" {
		cfg.OutputDir = dir
	}
	if dir := v.GetString("cache-dir"); dir != "" {
		cfg.CacheDir = dir
	}
	if lvl := v.GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	cfg.ExcludeWaysFile = v.GetString("exclude-ways-file")
	cfg.IncludeWaysFile = v.GetString("include-ways-file")

	if f := v.GetFloat64("buffer-meters-bikelanes"); f > 0 {
		cfg.Bikelanes.BufferMeters = f
	}
	if f := v.GetFloat64("buffer-meters-streets"); f > 0 {
		cfg.Streets.BufferMeters = f
	}
	if f := v.GetFloat64("buffer-meters-paths"); f > 0 {
		cfg.Paths.BufferMeters = f
	}
	if f := v.GetFloat64("segment-meters"); f > 0 {
		cfg.Snapper.SegmentMeters = f
	}
	if n := v.GetInt("snap-workers"); n > 0 {
		cfg.Snapper.Workers = n
	}
	if v.GetBool("diagnose-candidates") {
		cfg.Snapper.LogCandidates = true
	}

	return cfg, nil
}
