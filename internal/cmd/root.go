// Package cmd wires the CLI surface, following the teacher's
// internal/cmd/root.go pattern: persistent flags bound into viper,
// cobra.OnInitialize loading an optional config file and setting up
// slog. The only subcommand is `run`, which executes every pipeline
// stage; the stages have no subcommands of their own.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "radnetz",
	Short: "Builds Berlin's attributed directional bicycle-priority network",
	Long: `radnetz turns the Berlin priority street network, its detail-level
topology, and the matched OpenStreetMap cycling infrastructure into one
attributed, per-direction network, written out as a GeoPackage.`,
}

// Execute runs the root command.
func Execute() {
	if logger == nil {
		initLogging()
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "./data", "Directory containing the input GeoJSON layers")
	rootCmd.PersistentFlags().String("output-dir", "./output", "Output directory for the generated GeoPackage")
	rootCmd.PersistentFlags().String("cache-dir", "./.cache", "Directory for cached intermediate pipeline stages")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("exclude-ways-file", "", "Plain-text file of OSM way IDs to exclude from matching")
	rootCmd.PersistentFlags().String("include-ways-file", "", "Plain-text file of OSM way IDs to force-include in matching")

	for _, key := range []string{"data-dir", "output-dir", "cache-dir", "log-level", "exclude-ways-file", "include-ways-file"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("RADNETZ")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func initLogging() {
	levelStr := strings.ToLower(viper.GetString("log-level"))
	level := slog.LevelInfo
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error", "err":
		level = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Unknown log level %q, defaulting to info\n", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
